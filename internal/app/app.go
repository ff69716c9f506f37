package app

import (
	"github.com/armando-couceiro/team-balance/internal/config"
	mediastore "github.com/armando-couceiro/team-balance/internal/infrastructure/media"
	"github.com/armando-couceiro/team-balance/internal/infrastructure/repository/file"
	idgen "github.com/armando-couceiro/team-balance/internal/platform/id"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
	"github.com/armando-couceiro/team-balance/internal/usecase"
)

// App bundles the wired services. UI collaborators call into these and
// nothing else mutates the collections.
type App struct {
	Roster   *usecase.RosterService
	Teams    *usecase.TeamService
	Balance  *usecase.BalanceService
	Matches  *usecase.MatchService
	Stats    *usecase.StatsService
	Settings *usecase.SettingsService
	Backup   *usecase.BackupService
}

// New opens the persistent state at cfg.StatePath and wires every service on
// top of it.
func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	store, err := file.Open(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	blobs, err := mediastore.NewFSStore(cfg.MediaDir, logger)
	if err != nil {
		return nil, err
	}

	playerRepo := store.Players()
	folderRepo := store.Folders()
	teamRepo := store.SavedTeams()
	matchRepo := store.Matches()
	settingsRepo := store.Settings()

	seq := idgen.NewTimestampGenerator()

	return &App{
		Roster:   usecase.NewRosterService(playerRepo, folderRepo, logger),
		Teams:    usecase.NewTeamService(teamRepo, seq, logger),
		Balance:  usecase.NewBalanceService(playerRepo, teamRepo, settingsRepo, logger),
		Matches:  usecase.NewMatchService(matchRepo, blobs, seq, idgen.NewRandomGenerator(), logger),
		Stats:    usecase.NewStatsService(matchRepo, playerRepo, logger),
		Settings: usecase.NewSettingsService(settingsRepo, logger),
		Backup:   usecase.NewBackupService(playerRepo, matchRepo, blobs, store, logger),
	}, nil
}
