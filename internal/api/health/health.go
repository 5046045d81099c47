package health

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"slot_backend/internal/service"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Configs service.ConfigService
	Started time.Time
}

type Handler struct {
	configs service.ConfigService
	started time.Time
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		configs: deps.Configs,
		started: deps.Started,
	}
}

type response struct {
	OK         bool   `json:"ok"`
	Now        string `json:"now"`
	UptimeSec  int64  `json:"uptimeSec"`
	ConfigHash string `json:"configHash"`
}

// Check отвечает статусом процесса. configHash — короткий отпечаток активной
// модели игры: по нему легко сверить, что все инстансы крутят одну конфигурацию.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, response{
		OK:         true,
		Now:        time.Now().UTC().Format(time.RFC3339),
		UptimeSec:  int64(time.Since(h.started).Seconds()),
		ConfigHash: configHash(h.configs),
	})
}

func configHash(configs service.ConfigService) string {
	raw, err := json.Marshal(configs.Get())
	if err != nil {
		return ""
	}
	sum := sha1.Sum(raw)
	return hex.EncodeToString(sum[:])[:12]
}
