package vacation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrPeriodNotFound          = errors.New("vacation period not found")
	ErrArchivedPeriodExhausted = errors.New("archived period has no remaining balance")
	ErrNothingToReverse        = errors.New("reversal exceeds used days")
)

// InsufficientBalanceError blocks an allocation that exceeds the available
// days across the ledger, reporting the shortfall.
type InsufficientBalanceError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient vacation balance: requested %s, available %s (short %s)",
		e.Requested, e.Available, e.Shortfall())
}

func (e *InsufficientBalanceError) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}
