package paytable

import "slot_backend/internal/model"

// Метки сработавших правил (уходят клиенту как есть)
const (
	ReasonAnyTwoSevens   = "Any 2 Sevens"
	ReasonAnyTwoCherries = "Any 2 Cherries"
	ReasonSingleCherry   = "Single Cherry"
	ReasonNoWin          = "No win"
)

// PayoutMultiplier вычисляет множитель выплаты по трём выпавшим символам.
// Порядок правил фиксирован и исключающ: выигрывает первое совпавшее.
//  1. Три одинаковых -> pay3 по символу (тройная вишня платит именно здесь)
//  2. Ровно две семёрки -> anyTwoSevensMult
//  3. Ровно две вишни -> anyTwoCherriesMult
//  4. Хотя бы одна вишня -> singleCherryMult
//  5. Иначе 0
func PayoutMultiplier(a, b, c model.Symbol, pt *model.Paytable) (float64, string) {
	if a == b && b == c {
		return pt.Pay3[a], string(a) + " x3"
	}

	sevens := 0
	cherries := 0
	for _, sym := range []model.Symbol{a, b, c} {
		if sym == model.SymbolSeven {
			sevens++
		}
		if sym == model.SymbolCherry {
			cherries++
		}
	}

	if sevens == 2 {
		return pt.AnyTwoSevensMult, ReasonAnyTwoSevens
	}
	if cherries == 2 {
		return pt.AnyTwoCherriesMult, ReasonAnyTwoCherries
	}
	if cherries >= 1 {
		return pt.SingleCherryMult, ReasonSingleCherry
	}
	return 0, ReasonNoWin
}
