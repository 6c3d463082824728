package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/handler/http/response"
	settlementService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/settlement"
)

type SettlementHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Recalculate(w http.ResponseWriter, r *http.Request)
	ListVersions(w http.ResponseWriter, r *http.Request)
	ListCauses(w http.ResponseWriter, r *http.Request)
}

type settlementHandlerImpl struct {
	service *settlementService.Service
}

func NewSettlementHandler(service *settlementService.Service) SettlementHandler {
	return &settlementHandlerImpl{service: service}
}

func (h *settlementHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req settlement.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.service.Preview(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *settlementHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req settlement.ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	stored, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Settlement created", versionView(stored))
}

// Recalculate appends a new version with fresh facts; the prior versions
// stay untouched.
func (h *settlementHandlerImpl) Recalculate(w http.ResponseWriter, r *http.Request) {
	settlementID := chi.URLParam(r, "id")
	if settlementID == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	var req settlement.RecalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	stored, err := h.service.Recalculate(r.Context(), settlementID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settlement recalculated", versionView(stored))
}

func (h *settlementHandlerImpl) ListVersions(w http.ResponseWriter, r *http.Request) {
	settlementID := chi.URLParam(r, "id")
	if settlementID == "" {
		response.BadRequest(w, "Settlement ID is required", nil)
		return
	}

	versions, err := h.service.ListVersions(r.Context(), settlementID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	views := make([]settlement.VersionView, 0, len(versions))
	for i := range versions {
		views = append(views, *versionView(&versions[i]))
	}
	response.Success(w, views)
}

func (h *settlementHandlerImpl) ListCauses(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.service.Causes())
}

func versionView(s *settlement.Settlement) *settlement.VersionView {
	return &settlement.VersionView{
		ID:         s.ID,
		EmployeeID: s.EmployeeID,
		Version:    s.Version,
		Result:     s.Result,
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
	}
}
