package model

// RTPReport — аналитическая оценка кандидата модели.
// Все величины в процентах (0..100), считаются по полному пространству исходов.
type RTPReport struct {
	RTP            float64 // ожидаемый возврат игроку
	HitRate        float64 // вероятность любого выигрыша (mult > 0)
	TripleSeven    float64
	TripleCherry   float64
	AnyTwoSevens   float64
	AnyTwoCherries float64
	// Остаточная вишнёвая масса: хотя бы одна вишня, исключая тройные
	// комбинации и ровно две вишни
	SingleCherry float64
}

// SlotStats — фактическая статистика спинов с момента старта процесса
type SlotStats struct {
	TotalSpins       int64
	TotalBetMinor    int64
	TotalPayoutMinor int64

	RTPPercent float64 // фактический RTP = (TotalPayout/TotalBet)*100

	WindowRTPPercent float64 // RTP в окне последних спинов
	WindowSize       int
}
