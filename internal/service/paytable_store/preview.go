package paytable_store

import (
	"slot_backend/internal/model"
	"slot_backend/internal/paytable"
)

// Preview собирает кандидата из патча поверх активной модели и оценивает его,
// не трогая ни активный снимок, ни хранилище.
func (s *serv) Preview(patch model.PaytablePatch) (*model.RTPReport, []string) {
	candidate := paytable.Merge(*s.Get(), patch)

	if problems := paytable.ValidateAll(&candidate); len(problems) > 0 {
		return nil, problems
	}

	report := paytable.Evaluate(&candidate)
	return &report, nil
}
