package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type staticAdminCfg string

func (c staticAdminCfg) Token() string { return string(c) }

func adminProtected(cfg staticAdminCfg) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return AdminGuard(cfg)(next)
}

func TestAdminGuard_ValidToken(t *testing.T) {
	h := adminProtected("secret-token")

	req := httptest.NewRequest(http.MethodGet, "/admin/config", nil)
	req.Header.Set(AdminTokenHeader, "secret-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestAdminGuard_WrongToken(t *testing.T) {
	h := adminProtected("secret-token")

	req := httptest.NewRequest(http.MethodGet, "/admin/config", nil)
	req.Header.Set(AdminTokenHeader, "guess")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAdminGuard_MissingToken(t *testing.T) {
	h := adminProtected("secret-token")

	req := httptest.NewRequest(http.MethodGet, "/admin/config", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

// Ненастроенный токен закрывает доступ даже для пустого заголовка
func TestAdminGuard_EmptyConfiguredTokenFailsClosed(t *testing.T) {
	h := adminProtected("")

	req := httptest.NewRequest(http.MethodGet, "/admin/config", nil)
	req.Header.Set(AdminTokenHeader, "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestWithSessionID_PassesHeaderThroughContext(t *testing.T) {
	var got string
	var ok bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok = SessionIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
	req.Header.Set(SessionIDHeader, "sess-42")
	WithSessionID(next).ServeHTTP(httptest.NewRecorder(), req)

	if !ok || got != "sess-42" {
		t.Errorf("session id = %q ok=%v, want sess-42", got, ok)
	}
}

func TestWithSessionID_MissingHeader(t *testing.T) {
	var ok bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok = SessionIDFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
	WithSessionID(next).ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Error("empty header must not resolve to a session id")
	}
}
