package response

import (
	"errors"
	"net/http"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/employee"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/payroll"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/settlement"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/vacation"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/validator"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/service/tax"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var insufficient *vacation.InsufficientBalanceError
	if errors.As(err, &insufficient) {
		Conflict(w, "Insufficient vacation balance", map[string]string{
			"requested": insufficient.Requested.String(),
			"available": insufficient.Available.String(),
			"shortfall": insufficient.Shortfall().String(),
		})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrInvalidRegime):
		UnprocessableEntity(w, "Employee pension regime is misconfigured")

	// Indicator errors
	case errors.Is(err, payroll.ErrMissingIndicators):
		UnprocessableEntity(w, "Legal indicators for the requested period are not loaded")
	case errors.Is(err, indicators.ErrIndicatorsNotFound):
		NotFound(w, "Period indicators not found")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, tax.ErrAmbiguousBracket):
		InternalServerError(w, "Tax bracket table is misconfigured")

	// Vacation domain errors
	case errors.Is(err, vacation.ErrPeriodNotFound):
		NotFound(w, "Vacation period not found")
	case errors.Is(err, vacation.ErrArchivedPeriodExhausted):
		Conflict(w, "Archived vacation period has no remaining balance", nil)
	case errors.Is(err, vacation.ErrNothingToReverse):
		BadRequest(w, "Reversal exceeds allocated days", nil)

	// Settlement domain errors
	case errors.Is(err, settlement.ErrCauseNotFound):
		NotFound(w, "Termination cause not found")
	case errors.Is(err, settlement.ErrSettlementNotFound):
		NotFound(w, "Settlement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
