package paytable_store

import (
	"context"
	"encoding/json"
	"errors"

	log "github.com/sirupsen/logrus"

	"slot_backend/internal/model"
	"slot_backend/internal/paytable"
	"slot_backend/internal/repository"
)

// load поднимает сохранённую конфигурацию при старте процесса.
// Битый или отсутствующий документ никогда не мешает запуску:
// любая проблема — откат на дефолты с перезаписью хранилища.
func (s *serv) load(ctx context.Context) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	doc, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrConfigNotFound) {
			log.Info("no persisted runtime config, writing defaults")
		} else {
			log.WithError(err).Warn("failed to load runtime config, falling back to defaults")
		}
		s.commitDefaults(ctx)
		return
	}

	// Сохранённый документ сливается поверх дефолтов: частично записанная
	// в прошлом версия дополняется недостающими полями
	var patch model.PaytablePatch
	if err := json.Unmarshal(doc, &patch); err != nil {
		log.WithError(err).Warn("corrupt runtime config, falling back to defaults")
		s.commitDefaults(ctx)
		return
	}

	next := paytable.Merge(s.defaults, patch)
	if err := paytable.Validate(&next); err != nil {
		log.WithError(err).Warn("persisted runtime config is invalid, falling back to defaults")
		s.commitDefaults(ctx)
		return
	}

	s.active.Store(&next)
}

func (s *serv) commitDefaults(ctx context.Context) {
	if err := s.commit(ctx, s.defaults.Clone()); err != nil {
		log.WithError(err).Error("failed to persist default runtime config")
	}
}
