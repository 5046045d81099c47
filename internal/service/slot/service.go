package slot

import (
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
	"slot_backend/pkg/rng"
	"slot_backend/pkg/sign"
)

type serv struct {
	sessions repository.SessionRepository
	store    service.ConfigService
	stats    service.StatsService
	picker   rng.Picker
	signer   *sign.Signer
}

// NewSlotService собирает движок спина.
// Источник случайности передаётся снаружи, чтобы тесты могли
// зафиксировать выпадающие стопы.
func NewSlotService(
	sessions repository.SessionRepository,
	store service.ConfigService,
	stats service.StatsService,
	picker rng.Picker,
	signer *sign.Signer,
) service.SlotService {
	return &serv{
		sessions: sessions,
		store:    store,
		stats:    stats,
		picker:   picker,
		signer:   signer,
	}
}
