package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/domain/savedteam"
	idgen "github.com/armando-couceiro/team-balance/internal/platform/id"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

// TeamService owns the saved-team collection.
type TeamService struct {
	teamRepo savedteam.Repository
	seq      idgen.SequenceGenerator
	logger   *logging.Logger
}

func NewTeamService(teamRepo savedteam.Repository, seq idgen.SequenceGenerator, logger *logging.Logger) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{teamRepo: teamRepo, seq: seq, logger: logger}
}

// CreateTeam snapshots the given player names under a new saved team. The
// snapshot is not re-synced if the roster later removes one of the players.
func (s *TeamService) CreateTeam(ctx context.Context, name, color string, playerNames []player.ID) (savedteam.SavedTeam, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return savedteam.SavedTeam{}, fmt.Errorf("%w: team name", ErrEmptyName)
	}
	if len(playerNames) == 0 {
		return savedteam.SavedTeam{}, fmt.Errorf("%w: team players are required", ErrInvalidInput)
	}
	if !savedteam.ValidColor(color) {
		return savedteam.SavedTeam{}, fmt.Errorf("%w: color %q is not in the palette", ErrInvalidInput, color)
	}

	team := savedteam.SavedTeam{
		ID:          s.seq.NextID(),
		Name:        name,
		Color:       color,
		PlayerNames: append([]player.ID(nil), playerNames...),
	}
	if err := team.Validate(); err != nil {
		return savedteam.SavedTeam{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Add(ctx, team); err != nil {
		return savedteam.SavedTeam{}, fmt.Errorf("add saved team: %w", err)
	}

	s.logger.Info("saved team created", "id", team.ID, "name", team.Name, "players", len(team.PlayerNames))
	return team, nil
}

// UpdateTeam replaces an existing saved team's name, color and snapshot.
func (s *TeamService) UpdateTeam(ctx context.Context, team savedteam.SavedTeam) error {
	team.Name = strings.TrimSpace(team.Name)
	if team.Name == "" {
		return fmt.Errorf("%w: team name", ErrEmptyName)
	}
	if err := team.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.teamRepo.GetByID(ctx, team.ID); err != nil {
		return fmt.Errorf("get saved team: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: saved team %d", ErrNotFound, team.ID)
	}

	return s.teamRepo.Update(ctx, team)
}

func (s *TeamService) DeleteTeam(ctx context.Context, id int64) error {
	if _, exists, err := s.teamRepo.GetByID(ctx, id); err != nil {
		return fmt.Errorf("get saved team: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: saved team %d", ErrNotFound, id)
	}

	return s.teamRepo.Delete(ctx, id)
}

func (s *TeamService) ListTeams(ctx context.Context) ([]savedteam.SavedTeam, error) {
	return s.teamRepo.List(ctx)
}
