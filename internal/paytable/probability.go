// Package paytable — чистая математика модели: вероятности, правила выплат,
// валидация, слияние патча и аналитическая оценка RTP.
// Пакет не имеет состояния и побочных эффектов.
package paytable

import "slot_backend/internal/model"

// Probabilities возвращает для каждого символа долю позиций ленты, занятых им.
// Пустая (невалидная) лента трактуется как лента длины 1, чтобы не делить на ноль —
// валидация отсекает такие ленты раньше.
func Probabilities(reel model.Reel) map[model.Symbol]float64 {
	total := len(reel)
	if total == 0 {
		total = 1
	}

	probs := make(map[model.Symbol]float64, len(model.Symbols))
	for _, sym := range model.Symbols {
		probs[sym] = 0
	}
	for _, sym := range reel {
		probs[sym] += 1
	}
	for sym := range probs {
		probs[sym] /= float64(total)
	}
	return probs
}
