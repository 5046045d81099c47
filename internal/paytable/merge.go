package paytable

import "slot_backend/internal/model"

// Merge накладывает патч на базовую модель и возвращает новый экземпляр.
// База не изменяется. Объектные поля (pay3) сливаются по ключам,
// массивы (reels) заменяются целиком, скаляры перезаписываются.
// Результат ещё не провалидирован — это забота вызывающего.
func Merge(base model.Paytable, patch model.PaytablePatch) model.Paytable {
	out := base.Clone()

	if patch.StartBalanceMinor != nil {
		out.StartBalanceMinor = *patch.StartBalanceMinor
	}
	if patch.Reels != nil {
		out.Reels = make([]model.Reel, len(*patch.Reels))
		for i, r := range *patch.Reels {
			out.Reels[i] = append(model.Reel(nil), r...)
		}
	}
	for sym, mult := range patch.Pay3 {
		out.Pay3[sym] = mult
	}
	if patch.AnyTwoSevensMult != nil {
		out.AnyTwoSevensMult = *patch.AnyTwoSevensMult
	}
	if patch.AnyTwoCherriesMult != nil {
		out.AnyTwoCherriesMult = *patch.AnyTwoCherriesMult
	}
	if patch.SingleCherryMult != nil {
		out.SingleCherryMult = *patch.SingleCherryMult
	}
	if patch.MinBetMinor != nil {
		out.MinBetMinor = *patch.MinBetMinor
	}
	if patch.AllowOverBalance != nil {
		out.AllowOverBalance = *patch.AllowOverBalance
	}

	return out
}
