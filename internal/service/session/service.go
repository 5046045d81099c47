package session

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"slot_backend/internal/apperr"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service"
)

type serv struct {
	sessions repository.SessionRepository
	store    service.ConfigService
}

// NewSessionService создаёт сервис гостевых сессий
func NewSessionService(
	sessions repository.SessionRepository,
	store service.ConfigService,
) service.SessionService {
	return &serv{
		sessions: sessions,
		store:    store,
	}
}

// CreateGuest открывает новую гостевую сессию со стартовым балансом
// из активной модели. Идентификатор — capability-токен: других проверок
// доступа к сессии нет, верхней границы на число сессий тоже.
func (s *serv) CreateGuest() *model.Session {
	sess := &model.Session{
		ID:           uuid.NewString(),
		BalanceMinor: s.store.Get().StartBalanceMinor,
		Spinning:     false,
	}
	s.sessions.Put(sess)

	log.WithField("session_id", sess.ID).Debug("guest session created")
	return sess
}

func (s *serv) GetBalance(sessionID string) (int64, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return 0, apperr.New(apperr.KindUnauthorized, "unknown session")
	}
	return sess.BalanceMinor, nil
}
