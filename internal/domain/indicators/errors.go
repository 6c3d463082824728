package indicators

import "errors"

var (
	ErrIndicatorsNotFound = errors.New("period indicators not found")
	ErrBracketsMissing    = errors.New("tax brackets missing for period")
)
