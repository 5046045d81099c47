package paytable_store

import (
	"context"

	"slot_backend/internal/model"
	"slot_backend/internal/monitoring"
	"slot_backend/internal/paytable"
)

// Set накладывает частичное обновление на активную модель.
// Слитый результат сначала валидируется целиком; при любом нарушении
// активная модель остаётся нетронутой и наружу уходит описательная ошибка —
// частичное или несогласованное состояние не наблюдаемо никогда.
func (s *serv) Set(ctx context.Context, patch model.PaytablePatch) (*model.Paytable, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next := paytable.Merge(*s.active.Load(), patch)
	if err := paytable.Validate(&next); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	monitoring.ConfigUpdatesTotal.Inc()
	return s.active.Load(), nil
}
