package usecase

import (
	"context"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/armando-couceiro/team-balance/internal/domain/match"
	"github.com/armando-couceiro/team-balance/internal/domain/media"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

// StateResetter wipes every persisted collection. The file-backed store
// implements it; tests substitute their own.
type StateResetter interface {
	Reset(ctx context.Context) error
}

// backupDocument is the opaque export format: players and matches only, media
// blobs stay behind.
type backupDocument struct {
	Players    []player.Player `json:"players"`
	Matches    []match.Match   `json:"matches"`
	ExportDate time.Time       `json:"exportDate"`
}

// BackupService exports the state for safekeeping and resets the app.
type BackupService struct {
	playerRepo player.Repository
	matchRepo  match.Repository
	mediaStore media.Store
	resetter   StateResetter
	logger     *logging.Logger
	now        func() time.Time
}

func NewBackupService(
	playerRepo player.Repository,
	matchRepo match.Repository,
	mediaStore media.Store,
	resetter StateResetter,
	logger *logging.Logger,
) *BackupService {
	if logger == nil {
		logger = logging.Default()
	}

	return &BackupService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		mediaStore: mediaStore,
		resetter:   resetter,
		logger:     logger,
		now:        time.Now,
	}
}

// Export renders the {players, matches, exportDate} backup dump.
func (s *BackupService) Export(ctx context.Context) ([]byte, error) {
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	doc := backupDocument{
		Players:    players,
		Matches:    matches,
		ExportDate: s.now().UTC(),
	}

	raw, err := sonic.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}

	s.logger.Info("backup exported", "players", len(players), "matches", len(matches))
	return raw, nil
}

// Reset deletes every stored media blob, then clears all collections. Media
// cleanup is best-effort; the reset proceeds regardless.
func (s *BackupService) Reset(ctx context.Context) error {
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}

	var ids []string
	for _, m := range matches {
		ids = append(ids, m.MediaIDs()...)
	}
	if len(ids) > 0 {
		if err := s.mediaStore.DeleteMany(ctx, ids); err != nil {
			s.logger.Warn("media cleanup incomplete during reset", "error", err)
		}
	}

	if err := s.resetter.Reset(ctx); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}

	s.logger.Info("app state reset", "media_deleted", len(ids))
	return nil
}
