package slot

import (
	"net/http"

	dto "slot_backend/internal/api/dto/slot"
	"slot_backend/internal/apperr"
	"slot_backend/internal/converter"
	"slot_backend/internal/middleware"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

// Заголовок с подписью результата; дублирует поле sig в теле ответа
const SpinSigHeader = "x-spin-sig"

type HandlerDeps struct {
	Serv service.SlotService
}

type Handler struct {
	serv service.SlotService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	sid, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, apperr.New(apperr.KindUnauthorized, "session id required"))
		return
	}

	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, apperr.Wrap(apperr.KindBadBet, "invalid request body", err))
		return
	}

	outcome, err := h.serv.Spin(r.Context(), converter.ToSlotSpin(sid, payload))
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	// Подпись уходит и заголовком, и полем тела — клиенту хватает любого
	w.Header().Set(SpinSigHeader, outcome.Sig)
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*outcome))
}
