package slot

type SpinRequest struct {
	BetMinor int64 `json:"betMinor"` // Ставка в минорных единицах (целое, > 0)
}

type SpinResponse struct {
	SpinID    string    `json:"spinId"`    // Уникальный идентификатор спина
	ReelStops [3]int    `json:"reelStops"` // Выпавшие индексы в лентах
	WinMinor  int64     `json:"winMinor"`  // Выигрыш в минорных единицах
	Breakdown Breakdown `json:"breakdown"` // Расшифровка выплаты
	Sig       string    `json:"sig"`       // HMAC-подпись результата (дублирует заголовок)
}

type Breakdown struct {
	Symbols [3]string `json:"symbols"` // Символы на выпавших индексах
	Mult    float64   `json:"mult"`    // Множитель ставки
	Reason  string    `json:"reason"`  // Метка сработавшего правила
}
