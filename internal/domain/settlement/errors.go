package settlement

import "errors"

var (
	ErrCauseNotFound      = errors.New("settlement cause not found")
	ErrSettlementNotFound = errors.New("settlement not found")
)
