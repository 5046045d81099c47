package repository

import (
	"context"
	"errors"

	"slot_backend/internal/model"
)

// ErrConfigNotFound — в долговременном хранилище ещё нет сохранённой конфигурации
var ErrConfigNotFound = errors.New("runtime config not found")

// SessionRepository — реестр гостевых сессий. Живёт в памяти процесса,
// между рестартами не переживает, поэтому контекст методам не нужен.
type SessionRepository interface {
	Put(session *model.Session)
	// Get возвращает копию записи сессии
	Get(id string) (model.Session, bool)

	// BeginSpin атомарно проверяет и взводит флаг спина.
	// Возвращает Unauthorized для неизвестной сессии и SpinInProgress,
	// если флаг уже взведён.
	BeginSpin(id string) error
	// EndSpin безусловно снимает флаг спина
	EndSpin(id string)

	// ApplySpin применяет дельту баланса внутри критической секции спина
	// и возвращает новый баланс
	ApplySpin(id string, deltaMinor int64) (int64, error)
}

// ConfigRepository — долговременное хранилище активной конфигурации.
// Хранит её как непрозрачный сериализованный документ.
type ConfigRepository interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, doc []byte) error
}
