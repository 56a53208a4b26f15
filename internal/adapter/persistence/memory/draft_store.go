package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"business_manager/internal/domain/entities"
	"business_manager/internal/usecase/interfaces"
)

var ErrDraftExists = errors.New("draft already exists")

type draftEntry struct {
	mu    sync.Mutex
	draft *entities.Draft
}

// DraftStore keeps drafts in process memory. Each draft has its own lock, so
// edits to one draft never wait on another.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*draftEntry
	now    func() time.Time
}

var _ interfaces.IDraftStore = (*DraftStore)(nil)

func NewDraftStore() *DraftStore {
	return &DraftStore{
		drafts: make(map[string]*draftEntry),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *DraftStore) Save(_ context.Context, d *entities.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[d.ID]; ok {
		return ErrDraftExists
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = s.now()
	}
	s.drafts[d.ID] = &draftEntry{draft: d}
	return nil
}

func (s *DraftStore) Get(_ context.Context, id string) (entities.DraftView, bool, error) {
	e, ok := s.entry(id)
	if !ok {
		return entities.DraftView{}, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.View(true), true, nil
}

func (s *DraftStore) Mutate(ctx context.Context, id string, fn func(d *entities.Draft) bool) (entities.DraftView, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.DraftView{}, false, err
	}
	e, ok := s.entry(id)
	if !ok {
		return entities.DraftView{}, false, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	applied := fn(e.draft)
	if applied {
		e.draft.UpdatedAt = s.now()
	}
	return e.draft.View(applied), true, nil
}

func (s *DraftStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return false, nil
	}
	delete(s.drafts, id)
	return true, nil
}

// Len reports the number of open drafts.
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}

// Sweep drops drafts whose last applied edit is older than maxIdle and
// returns how many were dropped. A draft locked by an in-flight edit is kept.
func (s *DraftStore) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.drafts {
		if !e.mu.TryLock() {
			continue
		}
		idle := e.draft.UpdatedAt.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.drafts, id)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps drafts idle for longer than maxIdle every interval
// until ctx is done. It returns immediately when either duration is not
// positive.
func (s *DraftStore) StartJanitor(ctx context.Context, interval, maxIdle time.Duration, logger zerolog.Logger) {
	if interval <= 0 || maxIdle <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(maxIdle); n > 0 {
					logger.Info().Int("removed", n).Int("open", s.Len()).Msg("idle drafts removed")
				}
			}
		}
	}()
}

func (s *DraftStore) entry(id string) (*draftEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.drafts[id]
	return e, ok
}
