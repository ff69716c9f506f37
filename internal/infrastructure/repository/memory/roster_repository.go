package memory

import (
	"context"
	"sync"

	"github.com/armando-couceiro/team-balance/internal/domain/player"
)

// RosterRepository keeps players in insertion order, the way the roster view
// lists them.
type RosterRepository struct {
	mu      sync.RWMutex
	players []player.Player
}

func NewRosterRepository(players []player.Player) *RosterRepository {
	return &RosterRepository{players: append([]player.Player(nil), players...)}
}

func (r *RosterRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.players))
	out = append(out, r.players...)

	return out, nil
}

func (r *RosterRepository) GetByName(_ context.Context, name player.ID) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.Name == name {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *RosterRepository) Add(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = append(r.players, p)
	return nil
}

func (r *RosterRepository) Update(_ context.Context, previousName player.ID, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.players {
		if r.players[idx].Name == previousName {
			r.players[idx] = p
			break
		}
	}

	return nil
}

func (r *RosterRepository) Delete(_ context.Context, name player.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.players[:0]
	for _, p := range r.players {
		if p.Name != name {
			out = append(out, p)
		}
	}
	r.players = out

	return nil
}

func (r *RosterRepository) Owner(_ context.Context) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if p.IsOwner {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}
