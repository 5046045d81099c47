package paytable

import "slot_backend/internal/model"

// Evaluate считает теоретическую статистику кандидата модели полным перебором
// пространства исходов: 5 символов на каждый из 3 барабанов, каждый исход
// взвешен произведением вероятностей своих лент. Ленты могут иметь разную
// длину и разное распределение — вероятности берутся per-reel.
//
// Разбиение именованных корзин согласовано с порядком правил PayoutMultiplier:
// SingleCherry — остаточная масса (cherry >= 1 без тройных комбинаций и без
// ровно двух вишен), чтобы исходы не считались дважды.
func Evaluate(pt *model.Paytable) model.RTPReport {
	probs := make([]map[model.Symbol]float64, len(pt.Reels))
	for i, reel := range pt.Reels {
		probs[i] = Probabilities(reel)
	}

	var report model.RTPReport
	for _, a := range model.Symbols {
		for _, b := range model.Symbols {
			for _, c := range model.Symbols {
				p := probs[0][a] * probs[1][b] * probs[2][c]
				mult, _ := PayoutMultiplier(a, b, c, pt)

				report.RTP += p * mult
				if mult > 0 {
					report.HitRate += p
				}

				triple := a == b && b == c
				if triple && a == model.SymbolSeven {
					report.TripleSeven += p
				}
				if triple && a == model.SymbolCherry {
					report.TripleCherry += p
				}

				sevens := count(a, b, c, model.SymbolSeven)
				cherries := count(a, b, c, model.SymbolCherry)
				if sevens == 2 {
					report.AnyTwoSevens += p
				}
				if cherries == 2 {
					report.AnyTwoCherries += p
				}
				if cherries >= 1 && cherries != 2 && !triple {
					report.SingleCherry += p
				}
			}
		}
	}

	report.RTP *= 100
	report.HitRate *= 100
	report.TripleSeven *= 100
	report.TripleCherry *= 100
	report.AnyTwoSevens *= 100
	report.AnyTwoCherries *= 100
	report.SingleCherry *= 100
	return report
}

func count(a, b, c, target model.Symbol) int {
	n := 0
	for _, sym := range []model.Symbol{a, b, c} {
		if sym == target {
			n++
		}
	}
	return n
}
