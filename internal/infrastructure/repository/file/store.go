package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/armando-couceiro/team-balance/internal/domain/folder"
	"github.com/armando-couceiro/team-balance/internal/domain/match"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/domain/savedteam"
	"github.com/armando-couceiro/team-balance/internal/domain/settings"
)

// document is the whole persisted application state. It is read once at open
// and rewritten in full on every mutation: the store assumes whatever it last
// wrote is exactly what it reads back.
type document struct {
	Players        []player.Player       `json:"players"`
	Folders        []folder.Folder       `json:"folders"`
	SavedTeams     []savedteam.SavedTeam `json:"savedTeams"`
	Matches        []match.Match         `json:"matches"`
	PendingMatches []match.PendingMatch  `json:"pendingMatches"`
	Settings       *settings.Settings    `json:"settings,omitempty"`
}

// Store owns the state file. All repository adapters returned by its accessor
// methods share the same lock and flush path.
type Store struct {
	mu   sync.Mutex
	path string
	doc  document
}

// Open loads the state document from path; a missing file starts empty.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, crerr.New("state file path cannot be empty")
	}

	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, crerr.Wrapf(err, "read state file %s", path)
	}

	if err := sonic.Unmarshal(raw, &s.doc); err != nil {
		return nil, crerr.Wrapf(err, "decode state file %s", path)
	}

	return s, nil
}

// Reset clears every collection and rewrites the file. Settings are kept.
func (s *Store) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.doc.Settings
	s.doc = document{Settings: kept}

	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	raw, err := sonic.Marshal(s.doc)
	if err != nil {
		return crerr.Wrap(err, "encode state document")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return crerr.Wrapf(err, "create state dir %s", dir)
	}

	// Temp-write plus rename so a crash mid-write never truncates the only copy.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return crerr.Wrapf(err, "write state file %s", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return crerr.Wrapf(err, "replace state file %s", s.path)
	}

	return nil
}

func (s *Store) Players() *PlayerRepository       { return &PlayerRepository{store: s} }
func (s *Store) Folders() *FolderRepository       { return &FolderRepository{store: s} }
func (s *Store) SavedTeams() *SavedTeamRepository { return &SavedTeamRepository{store: s} }
func (s *Store) Matches() *MatchRepository        { return &MatchRepository{store: s} }
func (s *Store) Settings() *SettingsRepository    { return &SettingsRepository{store: s} }
