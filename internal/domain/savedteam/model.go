package savedteam

import (
	"fmt"

	"github.com/armando-couceiro/team-balance/internal/domain/player"
)

// Palette is the fixed set of selectable team colors.
var Palette = []string{
	"#ffd700", "#ff6b35", "#e63946", "#4caf50",
	"#2196f3", "#9c27b0", "#ff5722", "#00bcd4",
}

func ValidColor(color string) bool {
	for _, c := range Palette {
		if c == color {
			return true
		}
	}
	return false
}

// SavedTeam is a named, colored player grouping usable as a balancing seed.
// PlayerNames is a snapshot taken at creation/edit time; it is not re-synced
// when the roster later removes a player.
type SavedTeam struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Color       string      `json:"color"`
	PlayerNames []player.ID `json:"playerNames"`
}

func (t SavedTeam) Validate() error {
	if t.ID == 0 {
		return fmt.Errorf("saved team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("saved team name is required")
	}
	if !ValidColor(t.Color) {
		return fmt.Errorf("saved team color %q is not in the palette", t.Color)
	}
	if len(t.PlayerNames) == 0 {
		return fmt.Errorf("saved team players are required")
	}
	return nil
}

// Contains reports whether name is part of the snapshot.
func (t SavedTeam) Contains(name player.ID) bool {
	for _, p := range t.PlayerNames {
		if p == name {
			return true
		}
	}
	return false
}
