package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/handler/http/response"
	indicatorsService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/indicators"
)

type IndicatorsHandler interface {
	GetByPeriod(w http.ResponseWriter, r *http.Request)
	Upsert(w http.ResponseWriter, r *http.Request)
}

type indicatorsHandlerImpl struct {
	provider *indicatorsService.CachedProvider
	repo     indicators.Repository
}

func NewIndicatorsHandler(provider *indicatorsService.CachedProvider, repo indicators.Repository) IndicatorsHandler {
	return &indicatorsHandlerImpl{provider: provider, repo: repo}
}

func (h *indicatorsHandlerImpl) GetByPeriod(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "Year must be numeric", nil)
		return
	}
	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil {
		response.BadRequest(w, "Month must be numeric", nil)
		return
	}

	period, err := h.provider.Get(r.Context(), year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, period)
}

// Upsert loads or corrects one period and drops it from the provider cache
// so the next computation sees the fresh values.
func (h *indicatorsHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	var req indicators.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.repo.Upsert(r.Context(), req.Indicators()); err != nil {
		response.HandleError(w, err)
		return
	}
	h.provider.Invalidate(req.Year, req.Month)

	response.SuccessWithMessage(w, "Period indicators stored", nil)
}
