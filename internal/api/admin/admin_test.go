package admin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dto "slot_backend/internal/api/dto/admin"
	"slot_backend/internal/model"
	"slot_backend/internal/repository"
	"slot_backend/internal/service/paytable_store"
	"slot_backend/internal/service/stats"
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
	configs := paytable_store.NewPaytableStore(context.Background(), model.DefaultPaytable(), &memRepo{}, nil)
	return NewHandler(HandlerDeps{
		Configs: configs,
		Stats:   stats.NewStatsService(),
	})
}

func TestGetConfig(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.GetConfig(rec, httptest.NewRequest(http.MethodGet, "/admin/config", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var cfg dto.Config
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if cfg.MinBetMinor != 100 || len(cfg.Reels) != 3 {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestUpdateConfig_AppliesPatch(t *testing.T) {
	h := newHandler(t)

	body := strings.NewReader(`{"minBetMinor": 500, "pay3": {"Seven": 80}}`)
	rec := httptest.NewRecorder()
	h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/admin/config", body))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out dto.UpdateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !out.OK || out.Config.MinBetMinor != 500 || out.Config.Pay3["Seven"] != 80 {
		t.Errorf("response = %+v", out)
	}
	// Нетронутые поля остались дефолтными
	if out.Config.Pay3["Bar"] != 40 {
		t.Errorf("pay3.Bar = %v, want default 40", out.Config.Pay3["Bar"])
	}
}

func TestUpdateConfig_InvalidPatchRejected(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/admin/config",
		strings.NewReader(`{"minBetMinor": -1}`)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	// Активная модель не тронута
	rec = httptest.NewRecorder()
	h.GetConfig(rec, httptest.NewRequest(http.MethodGet, "/admin/config", nil))
	var cfg dto.Config
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if cfg.MinBetMinor != 100 {
		t.Errorf("minBet = %d, want untouched 100", cfg.MinBetMinor)
	}
}

func TestUpdateConfig_UnknownFieldRejected(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/admin/config",
		strings.NewReader(`{"minBetMiner": 200}`)))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown field", rec.Code)
	}
}

func TestResetConfig(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.UpdateConfig(rec, httptest.NewRequest(http.MethodPut, "/admin/config",
		strings.NewReader(`{"minBetMinor": 500}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("setup update failed: %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ResetConfig(rec, httptest.NewRequest(http.MethodPost, "/admin/config/reset", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var out dto.UpdateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !out.OK || out.Config.MinBetMinor != 100 {
		t.Errorf("response = %+v, want defaults back", out)
	}
}

func TestEvaluate_ValidCandidate(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Evaluate(rec, httptest.NewRequest(http.MethodPost, "/admin/config/evaluate",
		strings.NewReader(`{"pay3": {"Seven": 200}}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out dto.EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !out.Valid || out.Report == nil {
		t.Fatalf("response = %+v, want valid with report", out)
	}
	if out.Report.RTP <= 0 {
		t.Errorf("rtp = %v, want positive", out.Report.RTP)
	}

	// Предпросмотр не трогает активную модель
	rec = httptest.NewRecorder()
	h.GetConfig(rec, httptest.NewRequest(http.MethodGet, "/admin/config", nil))
	var cfg dto.Config
	if err := json.Unmarshal(rec.Body.Bytes(), &cfg); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if cfg.Pay3["Seven"] != 100 {
		t.Errorf("pay3.Seven = %v, want untouched 100", cfg.Pay3["Seven"])
	}
}

func TestEvaluate_InvalidCandidateListsProblems(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Evaluate(rec, httptest.NewRequest(http.MethodPost, "/admin/config/evaluate",
		strings.NewReader(`{"minBetMinor": 0, "reels": [["Seven"]]}`)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with validity report", rec.Code)
	}
	var out dto.EvaluateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if out.Valid || out.Report != nil {
		t.Fatalf("response = %+v, want invalid without report", out)
	}
	if len(out.Errors) < 2 {
		t.Errorf("errors = %v, want both reel and minBet complaints", out.Errors)
	}
}

func TestStats_EmptySnapshot(t *testing.T) {
	h := newHandler(t)

	rec := httptest.NewRecorder()
	h.Stats(rec, httptest.NewRequest(http.MethodGet, "/admin/stats", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var out dto.StatsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if out.TotalSpins != 0 || out.WindowSize != 500 {
		t.Errorf("stats = %+v, want empty with window 500", out)
	}
}
