package paytable

import (
	"fmt"
	"math"

	"slot_backend/internal/apperr"
	"slot_backend/internal/model"
)

const reelCount = 3

// ValidateAll прогоняет все проверки и возвращает полный список нарушений.
// Админский предпросмотр показывает оператору сразу весь список,
// а не только первую проблему.
func ValidateAll(pt *model.Paytable) []string {
	var problems []string

	if !finite(float64(pt.StartBalanceMinor)) || pt.StartBalanceMinor < 0 {
		problems = append(problems, "startBalanceMinor must be a non-negative number")
	}

	if len(pt.Reels) != reelCount {
		problems = append(problems, fmt.Sprintf("reels must contain exactly %d reels", reelCount))
	}
	for i, reel := range pt.Reels {
		if len(reel) == 0 {
			problems = append(problems, fmt.Sprintf("reel %d must be a non-empty array", i))
			continue
		}
		for _, sym := range reel {
			if !sym.IsValid() {
				problems = append(problems, fmt.Sprintf("invalid symbol %q in reel %d", sym, i))
				break
			}
		}
	}

	if pt.Pay3 == nil {
		problems = append(problems, "pay3 missing")
	} else {
		for _, sym := range model.Symbols {
			v, ok := pt.Pay3[sym]
			if !ok || !finite(v) || v < 0 {
				problems = append(problems, fmt.Sprintf("pay3.%s must be >= 0", sym))
			}
		}
		for sym := range pt.Pay3 {
			if !sym.IsValid() {
				problems = append(problems, fmt.Sprintf("pay3 has unknown symbol %q", sym))
			}
		}
	}

	for name, v := range map[string]float64{
		"anyTwoSevensMult":   pt.AnyTwoSevensMult,
		"anyTwoCherriesMult": pt.AnyTwoCherriesMult,
		"singleCherryMult":   pt.SingleCherryMult,
	} {
		if !finite(v) || v < 0 {
			problems = append(problems, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	if pt.MinBetMinor <= 0 {
		problems = append(problems, "minBetMinor must be > 0")
	}

	return problems
}

// Validate возвращает первую найденную проблему как ошибку валидации конфигурации.
// Админ итерирует правки, поэтому стору достаточно короткого ответа;
// полный список даёт ValidateAll.
func Validate(pt *model.Paytable) error {
	problems := ValidateAll(pt)
	if len(problems) == 0 {
		return nil
	}
	return apperr.New(apperr.KindConfigValidation, problems[0])
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
