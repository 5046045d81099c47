package model

// Session — гостевая сессия. Идентификатор является capability-токеном:
// владение им — единственная проверка доступа к балансу и спинам.
type Session struct {
	ID           string
	BalanceMinor int64
	// Флаг спина в полёте: пока true, повторные спины по этой сессии отклоняются
	Spinning bool
}
