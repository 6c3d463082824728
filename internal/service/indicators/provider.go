package indicators

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/selffene-cyber/rrhh.piwisuite-sub001/internal/domain/indicators"
)

// cacheTTL bounds how long a loaded indicator set is served without going
// back to storage. Indicator rows change rarely, but a mid-month correction
// must become visible without a restart.
const cacheTTL = 24 * time.Hour

type periodKey struct {
	year  int
	month int
}

type cacheEntry struct {
	indicators *indicators.PeriodIndicators
	loadedAt   time.Time
}

// CachedProvider serves period indicators from storage through an in-memory
// TTL cache. Absence is never cached: a period that is missing today may be
// loaded by an operator a minute later.
type CachedProvider struct {
	repo   indicators.Repository
	logger *slog.Logger
	now    func() time.Time

	mu    sync.RWMutex
	cache map[periodKey]cacheEntry
}

func NewCachedProvider(repo indicators.Repository, logger *slog.Logger) *CachedProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedProvider{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		cache:  make(map[periodKey]cacheEntry),
	}
}

func (p *CachedProvider) Get(ctx context.Context, year, month int) (*indicators.PeriodIndicators, error) {
	key := periodKey{year: year, month: month}

	p.mu.RLock()
	entry, ok := p.cache[key]
	p.mu.RUnlock()
	if ok && p.now().Sub(entry.loadedAt) < cacheTTL {
		return entry.indicators, nil
	}

	loaded, err := p.repo.GetByPeriod(ctx, year, month)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.cache[key] = cacheEntry{indicators: loaded, loadedAt: p.now()}
	p.mu.Unlock()

	p.logger.Debug("period indicators loaded",
		slog.Int("year", year),
		slog.Int("month", month))
	return loaded, nil
}

// Invalidate drops one period from the cache, forcing the next Get to hit
// storage. Called after an indicator upsert.
func (p *CachedProvider) Invalidate(year, month int) {
	p.mu.Lock()
	delete(p.cache, periodKey{year: year, month: month})
	p.mu.Unlock()
}
