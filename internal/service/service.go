package service

import (
	"context"

	"slot_backend/internal/model"
)

type ConfigService interface {
	// Get возвращает активный снимок модели. Снимок только для чтения:
	// он разделяется всеми спинами и заменяется целиком, не правится.
	Get() *model.Paytable
	Set(ctx context.Context, patch model.PaytablePatch) (*model.Paytable, error)
	Reset(ctx context.Context) (*model.Paytable, error)

	// Preview оценивает кандидата: патч поверх активной модели, без коммита.
	// Для невалидного кандидата отчёт nil и возвращается полный список нарушений.
	Preview(patch model.PaytablePatch) (*model.RTPReport, []string)
}

type SessionService interface {
	CreateGuest() *model.Session
	GetBalance(sessionID string) (int64, error)
}

type SlotService interface {
	Spin(ctx context.Context, req model.SlotSpin) (*model.SpinOutcome, error)
}

type StatsService interface {
	Record(betMinor, payoutMinor int64)
	Snapshot() model.SlotStats
}
