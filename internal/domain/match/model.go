package match

import (
	"fmt"
	"time"

	"github.com/armando-couceiro/team-balance/internal/domain/player"
)

// TeamTag identifies which side a scorer/assist entry belongs to. Manual
// entries may carry "?" when the side was never recorded.
type TeamTag string

const (
	Team1   TeamTag = "1"
	Team2   TeamTag = "2"
	TeamAny TeamTag = "?"
)

// MediaType tags a media reference; the binary content lives in the external
// media store, keyed by the same id.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// TeamSide is a finalized match side. Players are a name snapshot, immune to
// later roster renames or deletions.
type TeamSide struct {
	Name        string      `json:"name"`
	Players     []player.ID `json:"players"`
	Goals       int         `json:"goals"`
	SavedTeamID int64       `json:"savedTeamId,omitempty"`
}

// IsSavedTeam reports whether this side was a recognized saved team at save
// time; rivalry grouping keys on the team name in that case.
func (s TeamSide) IsSavedTeam() bool {
	return s.SavedTeamID != 0
}

func (s TeamSide) HasPlayer(name player.ID) bool {
	for _, p := range s.Players {
		if p == name {
			return true
		}
	}
	return false
}

// Attribution ties a goal or assist to a side and a player name. The name is
// not validated against the roster; manual entries may list anyone.
type Attribution struct {
	Team   TeamTag   `json:"team"`
	Player player.ID `json:"player"`
}

// MediaRef points at a blob in the external media store.
type MediaRef struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Type MediaType `json:"type"`
}

// Match is a finalized, persisted history entry. Append-only and immutable
// once saved.
type Match struct {
	ID          int64         `json:"id"`
	Date        time.Time     `json:"date"`
	Team1       TeamSide      `json:"team1"`
	Team2       TeamSide      `json:"team2"`
	Scorers     []Attribution `json:"scorers"`
	Assists     []Attribution `json:"assists"`
	Highlights  string        `json:"highlights,omitempty"`
	Media       []MediaRef    `json:"media,omitempty"`
	ManualEntry bool          `json:"manualEntry,omitempty"`
	// PendingID references the pending match this one resolved, if any.
	PendingID int64 `json:"pendingId,omitempty"`
}

func (m Match) Validate() error {
	if m.ID == 0 {
		return fmt.Errorf("match id is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("match date is required")
	}
	if m.Team1.Goals < 0 || m.Team2.Goals < 0 {
		return fmt.Errorf("goals cannot be negative")
	}
	return nil
}

// Winner returns the winning side's tag, or TeamAny on a draw.
func (m Match) Winner() TeamTag {
	switch {
	case m.Team1.Goals > m.Team2.Goals:
		return Team1
	case m.Team2.Goals > m.Team1.Goals:
		return Team2
	default:
		return TeamAny
	}
}

// MediaIDs collects the referenced blob ids for store reconciliation.
func (m Match) MediaIDs() []string {
	out := make([]string, 0, len(m.Media))
	for _, ref := range m.Media {
		out = append(out, ref.ID)
	}
	return out
}

// PendingMatch is a balanced-but-not-yet-played fixture awaiting result entry.
type PendingMatch struct {
	ID        int64           `json:"id"`
	Date      time.Time       `json:"date"`
	Team1Name string          `json:"team1Name"`
	Team2Name string          `json:"team2Name"`
	Team1     []player.Player `json:"team1"`
	Team2     []player.Player `json:"team2"`
}

func (p PendingMatch) Validate() error {
	if p.ID == 0 {
		return fmt.Errorf("pending match id is required")
	}
	if len(p.Team1) == 0 || len(p.Team2) == 0 {
		return fmt.Errorf("pending match sides cannot be empty")
	}
	return nil
}
