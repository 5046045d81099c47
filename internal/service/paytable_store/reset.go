package paytable_store

import (
	"context"

	"slot_backend/internal/model"
	"slot_backend/internal/monitoring"
	"slot_backend/internal/paytable"
)

// Reset возвращает встроенную модель по умолчанию.
// Валидация здесь защитная: дефолты обязаны проходить её всегда.
func (s *serv) Reset(ctx context.Context) (*model.Paytable, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	next := s.defaults.Clone()
	if err := paytable.Validate(&next); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}

	monitoring.ConfigUpdatesTotal.Inc()
	return s.active.Load(), nil
}
