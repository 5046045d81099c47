package session

type GuestResponse struct {
	SessionID string `json:"sessionId"` // Capability-токен новой сессии
}

type BalanceResponse struct {
	BalanceMinor int64 `json:"balanceMinor"` // Текущий баланс в минорных единицах
}
