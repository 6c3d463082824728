package indicators

import (
	"context"
	"testing"
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	periods map[[2]int]*indicators.PeriodIndicators
	calls   int
}

func (f *fakeRepo) GetByPeriod(ctx context.Context, year, month int) (*indicators.PeriodIndicators, error) {
	f.calls++
	p, ok := f.periods[[2]int{year, month}]
	if !ok {
		return nil, indicators.ErrIndicatorsNotFound
	}
	return p, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, p *indicators.PeriodIndicators) error {
	if f.periods == nil {
		f.periods = make(map[[2]int]*indicators.PeriodIndicators)
	}
	f.periods[[2]int{p.Year, p.Month}] = p
	return nil
}

func junePeriod() *indicators.PeriodIndicators {
	return &indicators.PeriodIndicators{
		Year:  2024,
		Month: 6,
		UF:    decimal.RequireFromString("37500.50"),
	}
}

func TestCachedProvider_SecondGetServedFromCache(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{periods: map[[2]int]*indicators.PeriodIndicators{{2024, 6}: junePeriod()}}
	p := NewCachedProvider(repo, nil)

	first, err := p.Get(context.Background(), 2024, 6)
	require.NoError(t, err)
	second, err := p.Get(context.Background(), 2024, 6)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, repo.calls)
}

func TestCachedProvider_ExpiredEntryReloads(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{periods: map[[2]int]*indicators.PeriodIndicators{{2024, 6}: junePeriod()}}
	p := NewCachedProvider(repo, nil)

	clock := time.Date(2024, time.June, 15, 8, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return clock }

	_, err := p.Get(context.Background(), 2024, 6)
	require.NoError(t, err)

	clock = clock.Add(25 * time.Hour)
	_, err = p.Get(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestCachedProvider_AbsenceIsNotCached(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	p := NewCachedProvider(repo, nil)

	_, err := p.Get(context.Background(), 2024, 5)
	require.ErrorIs(t, err, indicators.ErrIndicatorsNotFound)

	// The period shows up later; the provider must see it immediately.
	require.NoError(t, repo.Upsert(context.Background(), &indicators.PeriodIndicators{Year: 2024, Month: 5}))
	got, err := p.Get(context.Background(), 2024, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Month)
}

func TestCachedProvider_InvalidateForcesReload(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{periods: map[[2]int]*indicators.PeriodIndicators{{2024, 6}: junePeriod()}}
	p := NewCachedProvider(repo, nil)

	_, err := p.Get(context.Background(), 2024, 6)
	require.NoError(t, err)

	updated := junePeriod()
	updated.UF = decimal.RequireFromString("37600")
	require.NoError(t, repo.Upsert(context.Background(), updated))

	p.Invalidate(2024, 6)
	got, err := p.Get(context.Background(), 2024, 6)
	require.NoError(t, err)
	assert.True(t, got.UF.Equal(decimal.RequireFromString("37600")))
	assert.Equal(t, 2, repo.calls)
}
