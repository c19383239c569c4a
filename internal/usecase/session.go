package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"readme-generator/internal/domain"
)

// Session owns the state of one README draft: the profile store, the
// enrichment fetcher and the draft ID. The ID rotates on every reset.
type Session struct {
	store   *ProfileStore
	fetcher *Fetcher
	repo    GenerationsRepo
	logger  *zap.Logger

	mu sync.Mutex
	id uuid.UUID
}

// NewSession wires a session. repo may be nil.
func NewSession(fetcher *Fetcher, repo GenerationsRepo, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		store:   NewProfileStore(),
		fetcher: fetcher,
		repo:    repo,
		logger:  logger,
		id:      uuid.New(),
	}
}

// ID returns the current draft ID.
func (s *Session) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

// SetField stores value under name. A change of the username to a
// non-empty value starts an enrichment cycle; it never blocks on it.
func (s *Session) SetField(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.store.SetField(name, value)
	if name == domain.FieldUsername && value != "" && value != prev {
		gen := s.fetcher.Trigger(value)
		s.logger.Debug("Enrichment triggered",
			zap.String("session", s.id.String()),
			zap.String("username", value),
			zap.Uint64("cycle", gen))
	}
}

// Reset clears fields and touched names. Stats are kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.store.Reset()
	s.id = uuid.New()
}

// Ready reports whether generation is unlocked.
func (s *Session) Ready() bool {
	return s.store.Ready()
}

// Stats returns the last applied enrichment snapshot.
func (s *Session) Stats() domain.Stats {
	return s.fetcher.Stats()
}

// Snapshot returns the current state of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:      s.id,
		Fields:  s.store.Fields(),
		Touched: s.store.Touched(),
		Ready:   s.store.Ready(),
		Stats:   s.fetcher.Stats(),
	}
}

// Generate renders the README and hands it to sink. While the readiness
// gate is locked it does nothing and returns false. After a successful
// delivery the fields and touched names are reset, which locks the gate
// again. A delivery error leaves the session untouched.
func (s *Session) Generate(ctx context.Context, sink Sink) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.store.Ready() {
		return false, nil
	}

	fields := s.store.Fields()
	stats := s.fetcher.Stats()

	doc, err := NewReadme(fields, stats)
	if err != nil {
		return false, err
	}
	if err := sink.Deliver(ctx, doc); err != nil {
		return false, fmt.Errorf("deliver %s: %w", doc.Filename, err)
	}

	gen := &domain.Generation{
		ID:        uuid.New(),
		SessionID: s.id,
		Username:  fields.Get(domain.FieldUsername),
		RepoCount: stats.RepoCount,
		Languages: stats.Languages,
		Bytes:     len(doc.Body),
		CreatedAt: time.Now(),
	}
	s.logger.Info("README generated",
		zap.String("session", s.id.String()),
		zap.String("username", gen.Username),
		zap.Int("bytes", gen.Bytes))

	s.resetLocked()

	// best-effort audit record
	if s.repo != nil {
		if err := s.repo.Save(ctx, gen); err != nil {
			s.logger.Warn("Failed to record generation", zap.Error(err))
		}
	}
	return true, nil
}

// Close waits for in-flight enrichment cycles.
func (s *Session) Close() {
	s.fetcher.Wait()
}
