package tax

import (
	"errors"
	"fmt"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/pkg/clp"
	"github.com/shopspring/decimal"
)

// ErrAmbiguousBracket reports a misconfigured table where more than one
// bracket matches the same amount. The resolver refuses to pick one.
var ErrAmbiguousBracket = errors.New("ambiguous tax bracket match")

// NoBracketError reports a gap in the bracket table: no tier matched the
// amount. Callers may apply a documented fallback, but the condition itself
// must stay visible.
type NoBracketError struct {
	Amount decimal.Decimal
}

func (e *NoBracketError) Error() string {
	return fmt.Sprintf("no tax bracket found for amount %s", e.Amount)
}

// Result is the outcome of a progressive-tax lookup.
type Result struct {
	Tax    decimal.Decimal
	Exempt bool
	Factor decimal.Decimal
	Rebate decimal.Decimal
}

// Resolver maps a taxable-for-tax amount to the monthly second-category tax
// using the period's bracket table.
type Resolver struct {
}

func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve walks the brackets in ascending lower-bound order. A bracket with
// a nil lower bound is the exempt tier; nil upper marks the open top tier.
// On match, tax = ceil(amount*factor - rebate), floored at zero. Tables are
// assumed validated upstream: a multi-match returns ErrAmbiguousBracket and
// a gap returns *NoBracketError, neither is repaired here.
func (r *Resolver) Resolve(amount decimal.Decimal, brackets []indicators.TaxBracket) (Result, error) {
	if amount.Sign() <= 0 {
		return Result{Tax: decimal.Zero, Exempt: true}, nil
	}
	if len(brackets) == 0 {
		return Result{}, &NoBracketError{Amount: amount}
	}

	matched := -1
	for i, b := range brackets {
		if !bracketMatches(amount, b) {
			continue
		}
		if matched >= 0 {
			return Result{}, fmt.Errorf("%w: brackets %d and %d both cover %s", ErrAmbiguousBracket, matched, i, amount)
		}
		matched = i
	}
	if matched < 0 {
		return Result{}, &NoBracketError{Amount: amount}
	}

	b := brackets[matched]
	if b.Lower == nil {
		return Result{Tax: decimal.Zero, Exempt: true}, nil
	}
	return Result{
		Tax:    clp.CeilNonNegative(amount.Mul(b.Factor).Sub(b.Rebate)),
		Factor: b.Factor,
		Rebate: b.Rebate,
	}, nil
}

func bracketMatches(amount decimal.Decimal, b indicators.TaxBracket) bool {
	if b.Lower == nil {
		// Exempt tier: amount <= upper. A nil upper here would swallow the
		// whole table; treat it as matching everything so the ambiguity
		// check reports the misconfiguration.
		return b.Upper == nil || amount.LessThanOrEqual(*b.Upper)
	}
	if amount.LessThanOrEqual(*b.Lower) {
		return false
	}
	return b.Upper == nil || amount.LessThanOrEqual(*b.Upper)
}
