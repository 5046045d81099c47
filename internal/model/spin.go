package model

// SlotSpin — запрос на спин
type SlotSpin struct {
	SessionID string
	BetMinor  int64
}

// SpinOutcome — результат одного спина. Создаётся заново на каждый запрос
// и после конструирования не изменяется; нигде не сохраняется.
type SpinOutcome struct {
	SpinID   string
	Stops    [3]int    // выпавшие индексы в лентах барабанов
	Symbols  [3]Symbol // символы на выпавших индексах
	Mult     float64
	WinMinor int64
	Reason   string // человекочитаемая метка сработавшего правила
	Sig      string // HMAC-подпись поверх spinId/stops/winMinor
}
