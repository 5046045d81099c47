package admin

import (
	"net/http"

	dto "slot_backend/internal/api/dto/admin"
	"slot_backend/internal/apperr"
	"slot_backend/internal/converter"
	"slot_backend/internal/service"
	"slot_backend/pkg/req"
	"slot_backend/pkg/resp"
)

type HandlerDeps struct {
	Configs service.ConfigService
	Stats   service.StatsService
}

type Handler struct {
	configs service.ConfigService
	stats   service.StatsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		configs: deps.Configs,
		stats:   deps.Stats,
	}
}

// GetConfig отдаёт активную модель целиком
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(*h.configs.Get()))
}

// UpdateConfig накладывает частичное обновление на активную модель.
// Невалидный кандидат не меняет ничего — наружу уходит ошибка валидации.
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PatchRequest](r.Body)
	if err != nil {
		resp.WriteError(w, apperr.Wrap(apperr.KindConfigValidation, "invalid request body", err))
		return
	}

	pt, err := h.configs.Set(r.Context(), converter.ToPaytablePatch(payload))
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.UpdateResponse{
		OK:     true,
		Config: converter.ToConfigResponse(*pt),
	})
}

func (h *Handler) ResetConfig(w http.ResponseWriter, r *http.Request) {
	pt, err := h.configs.Reset(r.Context())
	if err != nil {
		resp.WriteError(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.UpdateResponse{
		OK:     true,
		Config: converter.ToConfigResponse(*pt),
	})
}

// Evaluate считает теоретическую статистику кандидата (патч поверх активной
// модели) без применения. Для невалидного кандидата возвращается полный
// список нарушений, а не первая ошибка.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PatchRequest](r.Body)
	if err != nil {
		resp.WriteError(w, apperr.Wrap(apperr.KindConfigValidation, "invalid request body", err))
		return
	}

	report, problems := h.configs.Preview(converter.ToPaytablePatch(payload))
	if report == nil {
		resp.WriteJSONResponse(w, http.StatusOK, dto.EvaluateResponse{
			Valid:  false,
			Errors: problems,
		})
		return
	}

	wire := converter.ToReport(*report)
	resp.WriteJSONResponse(w, http.StatusOK, dto.EvaluateResponse{
		Valid:  true,
		Report: &wire,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.stats.Snapshot()))
}
