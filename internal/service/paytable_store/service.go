package paytable_store

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/avito-tech/go-transaction-manager/trm/v2"

	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
)

// Стор активной модели. Держит единственный на процесс снимок Paytable
// за атомарным указателем: читатели (спины) всегда видят целиком
// сформированную модель, запись — это подмена указателя на новый
// провалидированный экземпляр.
type serv struct {
	defaults  model.Paytable
	repo      repository.ConfigRepository
	txManager trm.Manager

	// mtx сериализует писателей (Set/Reset/Load); читатели идут мимо него
	mtx    sync.Mutex
	active atomic.Pointer[model.Paytable]
}

// NewPaytableStore создаёт стор и сразу поднимает сохранённую конфигурацию;
// при любой проблеме с хранилищем стартует на встроенных дефолтах.
// txManager может быть nil — файловое хранилище живёт без транзакций.
func NewPaytableStore(
	ctx context.Context,
	defaults model.Paytable,
	repo repository.ConfigRepository,
	txManager trm.Manager,
) service.ConfigService {
	s := &serv{
		defaults:  defaults,
		repo:      repo,
		txManager: txManager,
	}
	def := defaults.Clone()
	s.active.Store(&def)
	s.load(ctx)
	return s
}

func (s *serv) Get() *model.Paytable {
	return s.active.Load()
}

// commit публикует новый снимок и сохраняет его в долговременном хранилище.
// Ошибка персистенции не откатывает публикацию: активной модели падение
// хранилища мешать не должно, но и молчать о нём нельзя.
func (s *serv) commit(ctx context.Context, next model.Paytable) error {
	s.active.Store(&next)

	doc, err := json.MarshalIndent(next, "", "  ")
	if err != nil {
		return err
	}

	if s.txManager != nil {
		return s.txManager.Do(ctx, func(txCtx context.Context) error {
			return s.repo.Save(txCtx, doc)
		})
	}
	return s.repo.Save(ctx, doc)
}

