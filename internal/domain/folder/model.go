package folder

import (
	"fmt"

	"github.com/armando-couceiro/team-balance/internal/domain/player"
)

// Folder is a named grouping of roster players. Membership is a set keyed by
// player name; ordering carries no meaning.
type Folder struct {
	Name    string      `json:"name"`
	Players []player.ID `json:"players"`
}

func (f Folder) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("folder name is required")
	}
	return nil
}

// Contains reports set membership.
func (f Folder) Contains(name player.ID) bool {
	for _, p := range f.Players {
		if p == name {
			return true
		}
	}
	return false
}

// WithPlayer returns the folder with name added; adding an existing member is a no-op.
func (f Folder) WithPlayer(name player.ID) Folder {
	if f.Contains(name) {
		return f
	}
	out := f
	out.Players = append(append([]player.ID(nil), f.Players...), name)
	return out
}

// WithoutPlayer returns the folder with name removed; removing an absent member is a no-op.
func (f Folder) WithoutPlayer(name player.ID) Folder {
	out := f
	out.Players = make([]player.ID, 0, len(f.Players))
	for _, p := range f.Players {
		if p != name {
			out.Players = append(out.Players, p)
		}
	}
	return out
}

// WithRenamedPlayer rewrites a member name in place. Used only by the owner
// rename cascade.
func (f Folder) WithRenamedPlayer(oldName, newName player.ID) Folder {
	out := f
	out.Players = append([]player.ID(nil), f.Players...)
	for i, p := range out.Players {
		if p == oldName {
			out.Players[i] = newName
		}
	}
	return out
}
