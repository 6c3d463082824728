package http

import (
	"encoding/json"
	"net/http"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/payroll"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/handler/http/response"
	payrollService "github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/payroll"
)

type PayrollHandler interface {
	Preview(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	calculator *payrollService.Calculator
}

func NewPayrollHandler(calculator *payrollService.Calculator) PayrollHandler {
	return &payrollHandlerImpl{calculator: calculator}
}

// Preview computes a full monthly slip from the posted facts without
// persisting anything.
func (h *payrollHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	var req payroll.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.calculator.Compute(r.Context(), req.Facts(), req.Year, req.Month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
