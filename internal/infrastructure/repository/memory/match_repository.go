package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/armando-couceiro/team-balance/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
	pending []match.PendingMatch
}

func NewMatchRepository() *MatchRepository {
	return &MatchRepository{}
}

func (r *MatchRepository) ListMatches(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	out = append(out, r.matches...)

	return out, nil
}

func (r *MatchRepository) GetMatch(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.matches {
		if m.ID == id {
			return m, true, nil
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) AddMatch(_ context.Context, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.matches = append(r.matches, m)
	return nil
}

func (r *MatchRepository) DeleteMatch(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.matches[:0]
	for _, m := range r.matches {
		if m.ID != id {
			out = append(out, m)
		}
	}
	r.matches = out

	return nil
}

func (r *MatchRepository) ListPending(_ context.Context) ([]match.PendingMatch, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.PendingMatch, 0, len(r.pending))
	out = append(out, r.pending...)

	return out, nil
}

func (r *MatchRepository) GetPending(_ context.Context, id int64) (match.PendingMatch, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pending {
		if p.ID == id {
			return p, true, nil
		}
	}

	return match.PendingMatch{}, false, nil
}

func (r *MatchRepository) AddPending(_ context.Context, p match.PendingMatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pending = append(r.pending, p)
	return nil
}

func (r *MatchRepository) DeletePending(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.removePendingLocked(id)
	return nil
}

func (r *MatchRepository) Promote(_ context.Context, pendingID int64, m match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, p := range r.pending {
		if p.ID == pendingID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("pending match %d does not exist", pendingID)
	}

	r.removePendingLocked(pendingID)
	r.matches = append(r.matches, m)

	return nil
}

func (r *MatchRepository) removePendingLocked(id int64) {
	out := r.pending[:0]
	for _, p := range r.pending {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.pending = out
}
