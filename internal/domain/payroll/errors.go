package payroll

import "errors"

var (
	ErrMissingIndicators = errors.New("period indicators unavailable for payroll computation")
	ErrInvalidPeriod     = errors.New("invalid payroll period")
)
