package file

import (
	"context"

	crerr "github.com/cockroachdb/errors"

	"github.com/armando-couceiro/team-balance/internal/domain/folder"
	"github.com/armando-couceiro/team-balance/internal/domain/match"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/domain/savedteam"
	"github.com/armando-couceiro/team-balance/internal/domain/settings"
)

// PlayerRepository adapts the store's player collection to player.Repository.
type PlayerRepository struct {
	store *Store
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return append([]player.Player(nil), r.store.doc.Players...), nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name player.ID) (player.Player, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.doc.Players {
		if p.Name == name {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

func (r *PlayerRepository) Add(_ context.Context, p player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.doc.Players = append(r.store.doc.Players, p)
	return r.store.flushLocked()
}

func (r *PlayerRepository) Update(_ context.Context, previousName player.ID, p player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for idx := range r.store.doc.Players {
		if r.store.doc.Players[idx].Name == previousName {
			r.store.doc.Players[idx] = p
			break
		}
	}

	return r.store.flushLocked()
}

func (r *PlayerRepository) Delete(_ context.Context, name player.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := r.store.doc.Players[:0]
	for _, p := range r.store.doc.Players {
		if p.Name != name {
			out = append(out, p)
		}
	}
	r.store.doc.Players = out

	return r.store.flushLocked()
}

func (r *PlayerRepository) Owner(_ context.Context) (player.Player, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.doc.Players {
		if p.IsOwner {
			return p, true, nil
		}
	}

	return player.Player{}, false, nil
}

// FolderRepository adapts the store's folder collection to folder.Repository.
type FolderRepository struct {
	store *Store
}

func (r *FolderRepository) List(_ context.Context) ([]folder.Folder, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]folder.Folder, 0, len(r.store.doc.Folders))
	out = append(out, r.store.doc.Folders...)

	return out, nil
}

func (r *FolderRepository) GetByName(_ context.Context, name string) (folder.Folder, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, f := range r.store.doc.Folders {
		if f.Name == name {
			return f, true, nil
		}
	}

	return folder.Folder{}, false, nil
}

func (r *FolderRepository) Add(_ context.Context, f folder.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.doc.Folders {
		if existing.Name == f.Name {
			return nil
		}
	}
	r.store.doc.Folders = append(r.store.doc.Folders, f)

	return r.store.flushLocked()
}

func (r *FolderRepository) Update(_ context.Context, f folder.Folder) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for idx := range r.store.doc.Folders {
		if r.store.doc.Folders[idx].Name == f.Name {
			r.store.doc.Folders[idx] = f
			break
		}
	}

	return r.store.flushLocked()
}

func (r *FolderRepository) Delete(_ context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := r.store.doc.Folders[:0]
	for _, f := range r.store.doc.Folders {
		if f.Name != name {
			out = append(out, f)
		}
	}
	r.store.doc.Folders = out

	return r.store.flushLocked()
}

// SavedTeamRepository adapts the store's saved-team collection.
type SavedTeamRepository struct {
	store *Store
}

func (r *SavedTeamRepository) List(_ context.Context) ([]savedteam.SavedTeam, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]savedteam.SavedTeam, 0, len(r.store.doc.SavedTeams))
	out = append(out, r.store.doc.SavedTeams...)

	return out, nil
}

func (r *SavedTeamRepository) GetByID(_ context.Context, id int64) (savedteam.SavedTeam, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, t := range r.store.doc.SavedTeams {
		if t.ID == id {
			return t, true, nil
		}
	}

	return savedteam.SavedTeam{}, false, nil
}

func (r *SavedTeamRepository) Add(_ context.Context, t savedteam.SavedTeam) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.doc.SavedTeams = append(r.store.doc.SavedTeams, t)
	return r.store.flushLocked()
}

func (r *SavedTeamRepository) Update(_ context.Context, t savedteam.SavedTeam) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for idx := range r.store.doc.SavedTeams {
		if r.store.doc.SavedTeams[idx].ID == t.ID {
			r.store.doc.SavedTeams[idx] = t
			break
		}
	}

	return r.store.flushLocked()
}

func (r *SavedTeamRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := r.store.doc.SavedTeams[:0]
	for _, t := range r.store.doc.SavedTeams {
		if t.ID != id {
			out = append(out, t)
		}
	}
	r.store.doc.SavedTeams = out

	return r.store.flushLocked()
}

// MatchRepository adapts the store's history and pending collections.
type MatchRepository struct {
	store *Store
}

func (r *MatchRepository) ListMatches(_ context.Context) ([]match.Match, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]match.Match, 0, len(r.store.doc.Matches))
	out = append(out, r.store.doc.Matches...)

	return out, nil
}

func (r *MatchRepository) GetMatch(_ context.Context, id int64) (match.Match, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, m := range r.store.doc.Matches {
		if m.ID == id {
			return m, true, nil
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) AddMatch(_ context.Context, m match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.doc.Matches = append(r.store.doc.Matches, m)
	return r.store.flushLocked()
}

func (r *MatchRepository) DeleteMatch(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := r.store.doc.Matches[:0]
	for _, m := range r.store.doc.Matches {
		if m.ID != id {
			out = append(out, m)
		}
	}
	r.store.doc.Matches = out

	return r.store.flushLocked()
}

func (r *MatchRepository) ListPending(_ context.Context) ([]match.PendingMatch, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]match.PendingMatch, 0, len(r.store.doc.PendingMatches))
	out = append(out, r.store.doc.PendingMatches...)

	return out, nil
}

func (r *MatchRepository) GetPending(_ context.Context, id int64) (match.PendingMatch, bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.doc.PendingMatches {
		if p.ID == id {
			return p, true, nil
		}
	}

	return match.PendingMatch{}, false, nil
}

func (r *MatchRepository) AddPending(_ context.Context, p match.PendingMatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.doc.PendingMatches = append(r.store.doc.PendingMatches, p)
	return r.store.flushLocked()
}

func (r *MatchRepository) DeletePending(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.removePendingLocked(id)
	return r.store.flushLocked()
}

// Promote appends the finalized match and drops the originating pending entry
// under one lock and one flush, so the two can never diverge on disk.
func (r *MatchRepository) Promote(_ context.Context, pendingID int64, m match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	found := false
	for _, p := range r.store.doc.PendingMatches {
		if p.ID == pendingID {
			found = true
			break
		}
	}
	if !found {
		return crerr.Newf("pending match %d does not exist", pendingID)
	}

	r.removePendingLocked(pendingID)
	r.store.doc.Matches = append(r.store.doc.Matches, m)

	return r.store.flushLocked()
}

func (r *MatchRepository) removePendingLocked(id int64) {
	out := r.store.doc.PendingMatches[:0]
	for _, p := range r.store.doc.PendingMatches {
		if p.ID != id {
			out = append(out, p)
		}
	}
	r.store.doc.PendingMatches = out
}

// SettingsRepository adapts the store's settings entry.
type SettingsRepository struct {
	store *Store
}

func (r *SettingsRepository) Get(_ context.Context) (settings.Settings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.doc.Settings == nil {
		return settings.Default(), nil
	}

	return *r.store.doc.Settings, nil
}

func (r *SettingsRepository) Save(_ context.Context, s settings.Settings) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.doc.Settings = &s
	return r.store.flushLocked()
}
