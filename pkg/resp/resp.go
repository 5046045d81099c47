package resp

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"slot_backend/internal/apperr"
)

// WriteJSONResponse пишет успешный JSON-ответ с заданным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
	}
}

type errorBody struct {
	Error errorInfo `json:"error"`
}

type errorInfo struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// WriteError отдаёт ошибку в стабильном конверте {"error":{"kind","message"}}.
// Статус берётся из таксономии apperr; внутренние причины наружу не уходят.
func WriteError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	msg := err.Error()
	var e *apperr.Error
	if errors.As(err, &e) {
		msg = e.Message
	}
	if kind == apperr.KindInternal {
		log.WithError(err).Error("internal error")
		msg = "internal error"
	}
	WriteJSONResponse(w, apperr.HTTPStatus(err), errorBody{Error: errorInfo{
		Kind:    string(kind),
		Message: msg,
	}})
}
