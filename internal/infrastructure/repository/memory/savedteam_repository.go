package memory

import (
	"context"
	"sync"

	"github.com/armando-couceiro/team-balance/internal/domain/savedteam"
)

type SavedTeamRepository struct {
	mu    sync.RWMutex
	teams []savedteam.SavedTeam
}

func NewSavedTeamRepository(teams []savedteam.SavedTeam) *SavedTeamRepository {
	return &SavedTeamRepository{teams: append([]savedteam.SavedTeam(nil), teams...)}
}

func (r *SavedTeamRepository) List(_ context.Context) ([]savedteam.SavedTeam, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]savedteam.SavedTeam, 0, len(r.teams))
	for _, t := range r.teams {
		out = append(out, cloneSavedTeam(t))
	}

	return out, nil
}

func (r *SavedTeamRepository) GetByID(_ context.Context, id int64) (savedteam.SavedTeam, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teams {
		if t.ID == id {
			return cloneSavedTeam(t), true, nil
		}
	}

	return savedteam.SavedTeam{}, false, nil
}

func (r *SavedTeamRepository) Add(_ context.Context, t savedteam.SavedTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teams = append(r.teams, cloneSavedTeam(t))
	return nil
}

func (r *SavedTeamRepository) Update(_ context.Context, t savedteam.SavedTeam) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for idx := range r.teams {
		if r.teams[idx].ID == t.ID {
			r.teams[idx] = cloneSavedTeam(t)
			break
		}
	}

	return nil
}

func (r *SavedTeamRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.teams[:0]
	for _, t := range r.teams {
		if t.ID != id {
			out = append(out, t)
		}
	}
	r.teams = out

	return nil
}

func cloneSavedTeam(t savedteam.SavedTeam) savedteam.SavedTeam {
	copied := t
	copied.PlayerNames = append([]string(nil), t.PlayerNames...)
	return copied
}
