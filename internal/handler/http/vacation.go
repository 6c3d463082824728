package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/vacation"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/handler/http/response"
	vacationService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/vacation"
)

type VacationHandler interface {
	Synchronize(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	Allocate(w http.ResponseWriter, r *http.Request)
}

type vacationHandlerImpl struct {
	engine    *vacationService.AccrualEngine
	allocator *vacationService.Allocator
	employees employee.FactsProvider
}

func NewVacationHandler(engine *vacationService.AccrualEngine, allocator *vacationService.Allocator, employees employee.FactsProvider) VacationHandler {
	return &vacationHandlerImpl{
		engine:    engine,
		allocator: allocator,
		employees: employees,
	}
}

// Synchronize materializes the employee's vacation periods from the hire
// date and returns the refreshed summary.
func (h *vacationHandlerImpl) Synchronize(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	facts, err := h.employees.GetFacts(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.engine.Synchronize(r.Context(), employeeID, facts.HireDate); err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.engine.GetSummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Vacation periods synchronized", summary)
}

func (h *vacationHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	summary, err := h.engine.GetSummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Allocate applies a signed day delta in FIFO or manual mode and returns the
// resulting summary.
func (h *vacationHandlerImpl) Allocate(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var req vacation.AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	summary, err := h.allocator.Allocate(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
