package session_repo

import (
	"sync"

	"slot_backend/internal/apperr"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
)

// Реализация реестра сессий в памяти процесса.
// Один мьютекс на таблицу: проверка и взведение флага спина,
// как и мутация баланса, происходят внутри одной критической секции.
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*model.Session
}

// NewSessionRepository создаёт пустой реестр сессий
func NewSessionRepository() repository.SessionRepository {
	return &repo{
		sessions: make(map[string]*model.Session),
	}
}

func (r *repo) Put(session *model.Session) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	cp := *session
	r.sessions[session.ID] = &cp
}

// Get возвращает копию записи: владеет записью только репозиторий
func (r *repo) Get(id string) (model.Session, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return model.Session{}, false
	}
	return *s, true
}

// BeginSpin — переход Idle -> Spinning. Второй конкурентный спин по той же
// сессии видит взведённый флаг и отклоняется, а не встаёт в очередь.
func (r *repo) BeginSpin(id string) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return apperr.New(apperr.KindUnauthorized, "unknown session")
	}
	if s.Spinning {
		return apperr.New(apperr.KindSpinInProgress, "spin in progress")
	}
	s.Spinning = true
	return nil
}

// EndSpin — безусловный переход Spinning -> Idle
func (r *repo) EndSpin(id string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if s, ok := r.sessions[id]; ok {
		s.Spinning = false
	}
}

func (r *repo) ApplySpin(id string, deltaMinor int64) (int64, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return 0, apperr.New(apperr.KindUnauthorized, "unknown session")
	}
	s.BalanceMinor += deltaMinor
	return s.BalanceMinor, nil
}
