package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"readme-generator/internal/domain"
)

const defaultFetchTimeout = 10 * time.Second

// StatsSource is the upstream the fetcher enriches profiles from.
type StatsSource interface {
	PublicRepos(ctx context.Context, username string) (int, error)
	RepoLanguages(ctx context.Context, username string) ([]string, error)
}

// Fetcher runs best-effort enrichment cycles. Each Trigger starts an
// independent cycle in its own goroutine; cycles are never cancelled. Every
// cycle carries a generation number and its writes only land while it is
// still the most recently issued cycle, so a slow superseded cycle cannot
// overwrite newer results.
type Fetcher struct {
	source  StatsSource
	logger  *zap.Logger
	timeout time.Duration

	mu    sync.Mutex
	stats domain.Stats
	seq   uint64

	wg sync.WaitGroup
}

func NewFetcher(source StatsSource, logger *zap.Logger, timeout time.Duration) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Fetcher{
		source:  source,
		logger:  logger,
		timeout: timeout,
		stats:   domain.Stats{Languages: []string{}},
	}
}

// Stats returns the last applied snapshot.
func (f *Fetcher) Stats() domain.Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Trigger starts a cycle for username and returns its generation number.
// Empty usernames are ignored and return 0.
func (f *Fetcher) Trigger(username string) uint64 {
	if username == "" {
		return 0
	}

	f.mu.Lock()
	f.seq++
	gen := f.seq
	f.mu.Unlock()

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		f.run(gen, username)
	}()
	return gen
}

// Wait blocks until every started cycle has finished.
func (f *Fetcher) Wait() {
	f.wg.Wait()
}

func (f *Fetcher) run(gen uint64, username string) {
	ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
	defer cancel()

	log := f.logger.With(zap.String("username", username), zap.Uint64("cycle", gen))

	count, err := f.source.PublicRepos(ctx, username)
	if err != nil {
		log.Warn("Fetching repository count failed", zap.Error(err))
		return
	}
	if !f.apply(gen, func(s *domain.Stats) { s.RepoCount = count }) {
		log.Debug("Cycle superseded, dropping repository count")
		return
	}

	langs, err := f.source.RepoLanguages(ctx, username)
	if err != nil {
		log.Warn("Fetching repositories failed", zap.Error(err))
		return
	}
	ranked := RankLanguages(langs)
	if !f.apply(gen, func(s *domain.Stats) { s.Languages = ranked }) {
		log.Debug("Cycle superseded, dropping language ranking")
		return
	}

	log.Debug("Stats updated", zap.Int("repo_count", count), zap.Strings("languages", ranked))
}

func (f *Fetcher) apply(gen uint64, update func(*domain.Stats)) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.seq {
		return false
	}
	next := f.stats
	update(&next)
	f.stats = next
	return true
}
