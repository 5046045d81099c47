package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	dto "slot_backend/internal/api/dto/session"
	"slot_backend/internal/middleware"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/session_repo"
	"slot_backend/internal/service/paytable_store"
	sessionServ "slot_backend/internal/service/session"
)

type memRepo struct {
	doc []byte
}

func (m *memRepo) Load(_ context.Context) ([]byte, error) {
	if m.doc == nil {
		return nil, repository.ErrConfigNotFound
	}
	return m.doc, nil
}

func (m *memRepo) Save(_ context.Context, doc []byte) error {
	m.doc = append([]byte(nil), doc...)
	return nil
}

func newHandler(t *testing.T) *Handler {
	t.Helper()
	store := paytable_store.NewPaytableStore(context.Background(), model.DefaultPaytable(), &memRepo{}, nil)
	serv := sessionServ.NewSessionService(session_repo.NewSessionRepository(), store)
	return NewHandler(HandlerDeps{Serv: serv})
}

func TestGuestThenBalance(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Guest(rec, httptest.NewRequest(http.MethodPost, "/auth/guest", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var guest dto.GuestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &guest); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if guest.SessionID == "" {
		t.Fatal("empty session id")
	}

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
	req.Header.Set(middleware.SessionIDHeader, guest.SessionID)
	rec = httptest.NewRecorder()
	middleware.WithSessionID(http.HandlerFunc(h.Balance)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var balance dto.BalanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &balance); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if balance.BalanceMinor != 100000 {
		t.Errorf("balance = %d, want start balance 100000", balance.BalanceMinor)
	}
}

func TestBalance_UnknownSession(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
	req.Header.Set(middleware.SessionIDHeader, "ghost")
	rec := httptest.NewRecorder()
	middleware.WithSessionID(http.HandlerFunc(h.Balance)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestBalance_MissingHeader(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	middleware.WithSessionID(http.HandlerFunc(h.Balance)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wallet/balance", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}
