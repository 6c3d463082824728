package tax

import (
	"errors"
	"testing"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// testBrackets is a continuous synthetic table: tax is 0 at each boundary
// crossing, as in the real monthly second-category table.
func testBrackets() []indicators.TaxBracket {
	return []indicators.TaxBracket{
		{Lower: nil, Upper: decPtr("800000")},
		{Lower: decPtr("800000"), Upper: decPtr("2000000"), Factor: dec("0.04"), Rebate: dec("32000")},
		{Lower: decPtr("2000000"), Upper: decPtr("4000000"), Factor: dec("0.08"), Rebate: dec("112000")},
		{Lower: decPtr("4000000"), Upper: nil, Factor: dec("0.135"), Rebate: dec("332000")},
	}
}

func TestResolve_ExemptTierBoundary(t *testing.T) {
	t.Parallel()
	r := NewResolver()

	// Exactly the exempt upper bound is still exempt.
	res, err := r.Resolve(dec("800000"), testBrackets())
	require.NoError(t, err)
	assert.True(t, res.Exempt)
	assert.True(t, res.Tax.IsZero())

	// One peso above falls into the next bracket.
	res, err = r.Resolve(dec("800001"), testBrackets())
	require.NoError(t, err)
	assert.False(t, res.Exempt)
	// 800001*0.04 - 32000 = 0.04, ceiling-rounded to 1.
	assert.Equal(t, "1", res.Tax.String())
}

func TestResolve_BracketMatch(t *testing.T) {
	t.Parallel()
	r := NewResolver()

	cases := []struct {
		name   string
		amount string
		want   string
	}{
		{"second bracket", "1500000", "28000"},
		{"third bracket", "3000000", "128000"},
		{"open top tier", "5000000", "343000"},
		{"upper bound stays in lower bracket", "2000000", "48000"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, err := r.Resolve(dec(c.amount), testBrackets())
			require.NoError(t, err)
			assert.Equal(t, c.want, res.Tax.String())
		})
	}
}

func TestResolve_NonPositiveAmount(t *testing.T) {
	t.Parallel()
	r := NewResolver()

	for _, amount := range []string{"0", "-150000"} {
		res, err := r.Resolve(dec(amount), testBrackets())
		require.NoError(t, err)
		assert.True(t, res.Tax.IsZero())
		assert.True(t, res.Exempt)
	}
}

func TestResolve_CeilingNeverNegative(t *testing.T) {
	t.Parallel()
	r := NewResolver()

	// Rebate larger than amount*factor would go negative; floored at zero.
	brackets := []indicators.TaxBracket{
		{Lower: decPtr("0"), Upper: nil, Factor: dec("0.04"), Rebate: dec("999999")},
	}
	res, err := r.Resolve(dec("100000"), brackets)
	require.NoError(t, err)
	assert.True(t, res.Tax.IsZero())
}

func TestResolve_GapReportsNoBracket(t *testing.T) {
	t.Parallel()
	r := NewResolver()

	// Table with a hole between 1,000,000 and 2,000,000.
	brackets := []indicators.TaxBracket{
		{Lower: nil, Upper: decPtr("1000000")},
		{Lower: decPtr("2000000"), Upper: nil, Factor: dec("0.08"), Rebate: dec("112000")},
	}
	_, err := r.Resolve(dec("1500000"), brackets)

	var nbErr *NoBracketError
	require.ErrorAs(t, err, &nbErr)
	assert.Equal(t, "1500000", nbErr.Amount.String())
}

func TestResolve_EmptyTableReportsNoBracket(t *testing.T) {
	t.Parallel()
	r := NewResolver()

	_, err := r.Resolve(dec("1500000"), nil)
	var nbErr *NoBracketError
	require.ErrorAs(t, err, &nbErr)
}

func TestResolve_OverlapFailsLoud(t *testing.T) {
	t.Parallel()
	r := NewResolver()

	brackets := []indicators.TaxBracket{
		{Lower: decPtr("0"), Upper: decPtr("2000000"), Factor: dec("0.04"), Rebate: dec("0")},
		{Lower: decPtr("1000000"), Upper: decPtr("3000000"), Factor: dec("0.08"), Rebate: dec("0")},
	}
	_, err := r.Resolve(dec("1500000"), brackets)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAmbiguousBracket))
}
