package session

import (
	"net/http"

	dto "slot_backend/internal/api/dto/session"
	"slot_backend/internal/apperr"
	"slot_backend/internal/middleware"
	"slot_backend/internal/service"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SessionService
}

type Handler struct {
	serv service.SessionService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Guest открывает новую гостевую сессию и возвращает её токен
func (h *Handler) Guest(w http.ResponseWriter, _ *http.Request) {
	sess := h.serv.CreateGuest()
	resp.WriteJSONResponse(w, http.StatusOK, dto.GuestResponse{SessionID: sess.ID})
}

// Balance возвращает баланс сессии из заголовка x-session-id
func (h *Handler) Balance(w http.ResponseWriter, r *http.Request) {
	sid, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, apperr.New(apperr.KindUnauthorized, "session id required"))
		return
	}

	balance, err := h.serv.GetBalance(sid)
	if err != nil {
		resp.WriteError(w, err)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, dto.BalanceResponse{BalanceMinor: balance})
}
