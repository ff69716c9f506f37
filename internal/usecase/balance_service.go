package usecase

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/armando-couceiro/team-balance/internal/domain/balance"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/domain/savedteam"
	"github.com/armando-couceiro/team-balance/internal/domain/settings"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

// funnyTeamNames is the pool used when the funny-names setting is on and no
// seed team supplies a name.
var funnyTeamNames = []string{
	"Los Vainillas",
	"Heladeros del Conurbano",
	"Menos Patada que una Pila",
	"Menos Centro que Don Bosco",
	"Los Descosidos",
	"Pelota Dividida FC",
	"Los Troncos United",
	"Sporting de Tobillo",
	"Inter de Patio",
	"Real Descenso",
	"Atlético Cancha de Tierra",
	"Los Sin Técnica",
	"Deportivo Puntapié",
	"Racing de Esquina",
	"Manchester sin City",
	"FC Barreneta",
	"Juventus de Barrio",
	"Los Mismos de Siempre",
	"Gambeta al Banco",
	"Los Palo y a la Bolsa",
}

const defaultTeam1Name = "Equipo 1"
const defaultTeam2Name = "Equipo 2"

// BalanceInput selects the players, keepers and options for one balance run.
type BalanceInput struct {
	// SelectedNames are roster players, looked up by name.
	SelectedNames []player.ID
	// QuickPlayers are ad-hoc participants for this match only; they are
	// never written to the roster.
	QuickPlayers []player.Player
	// GoalkeeperNames is order-sensitive: with two keepers the first goes to
	// team1.
	GoalkeeperNames []player.ID
	// Mode overrides the configured balance mode when non-empty.
	Mode player.WeightMode
	// SeedTeamIDs pins up to two saved teams, first to team1, second to team2.
	SeedTeamIDs []int64
}

// BalanceService validates a selection and runs the balancer over it.
type BalanceService struct {
	playerRepo   player.Repository
	teamRepo     savedteam.Repository
	settingsRepo settings.Repository
	logger       *logging.Logger
	pick         func(n int) int
}

func NewBalanceService(
	playerRepo player.Repository,
	teamRepo savedteam.Repository,
	settingsRepo settings.Repository,
	logger *logging.Logger,
) *BalanceService {
	if logger == nil {
		logger = logging.Default()
	}

	return &BalanceService{
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		settingsRepo: settingsRepo,
		logger:       logger,
		pick:         rand.Intn,
	}
}

// Balance resolves the selection against the roster, applies the selection
// rules and returns two sides plus their display names.
func (s *BalanceService) Balance(ctx context.Context, input BalanceInput) (balance.Result, error) {
	if len(input.SeedTeamIDs) > 2 {
		return balance.Result{}, fmt.Errorf("%w: got %d", balance.ErrSeedLimit, len(input.SeedTeamIDs))
	}

	selected := make([]player.Player, 0, len(input.SelectedNames)+len(input.QuickPlayers))
	for _, name := range input.SelectedNames {
		p, exists, err := s.playerRepo.GetByName(ctx, name)
		if err != nil {
			return balance.Result{}, fmt.Errorf("get player by name: %w", err)
		}
		if !exists {
			return balance.Result{}, fmt.Errorf("%w: player %s", ErrNotFound, name)
		}
		selected = append(selected, p)
	}
	for _, quick := range input.QuickPlayers {
		quick.IsTemp = true
		if err := quick.Validate(); err != nil {
			return balance.Result{}, fmt.Errorf("%w: quick player: %v", ErrInvalidInput, err)
		}
		selected = append(selected, quick)
	}

	if err := balance.Validate(selected, input.GoalkeeperNames); err != nil {
		return balance.Result{}, err
	}

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return balance.Result{}, fmt.Errorf("get settings: %w", err)
	}

	mode := input.Mode
	if mode == "" {
		mode = cfg.BalanceMode
	}

	seeds, err := s.resolveSeeds(ctx, input.SeedTeamIDs)
	if err != nil {
		return balance.Result{}, err
	}

	res := balance.Teams(selected, input.GoalkeeperNames, mode, seeds)
	s.assignNames(&res, cfg)

	s.logger.Info("teams balanced",
		"players", len(selected),
		"goalkeepers", len(input.GoalkeeperNames),
		"mode", string(mode),
		"seeded", !seedsEmpty(seeds),
	)

	return res, nil
}

func (s *BalanceService) resolveSeeds(ctx context.Context, ids []int64) (balance.Seeds, error) {
	var seeds balance.Seeds
	for idx, id := range ids {
		team, exists, err := s.teamRepo.GetByID(ctx, id)
		if err != nil {
			return balance.Seeds{}, fmt.Errorf("get saved team: %w", err)
		}
		if !exists {
			return balance.Seeds{}, fmt.Errorf("%w: saved team %d", ErrNotFound, id)
		}
		t := team
		if idx == 0 {
			seeds.Team1 = &t
		} else {
			seeds.Team2 = &t
		}
	}
	return seeds, nil
}

// assignNames fills display names for sides that no seed team named.
func (s *BalanceService) assignNames(res *balance.Result, cfg settings.Settings) {
	if res.Team1Color == "" {
		res.Team1Color = cfg.Team1Color
	}
	if res.Team2Color == "" {
		res.Team2Color = cfg.Team2Color
	}

	if res.Team1Name != "" && res.Team2Name != "" {
		return
	}
	if !cfg.FunnyNames {
		if res.Team1Name == "" {
			res.Team1Name = defaultTeam1Name
		}
		if res.Team2Name == "" {
			res.Team2Name = defaultTeam2Name
		}
		return
	}

	first := s.pick(len(funnyTeamNames))
	second := s.pick(len(funnyTeamNames) - 1)
	if second >= first {
		second++
	}
	if res.Team1Name == "" {
		res.Team1Name = funnyTeamNames[first]
	}
	if res.Team2Name == "" {
		res.Team2Name = funnyTeamNames[second]
	}
}

func seedsEmpty(seeds balance.Seeds) bool {
	return seeds.Team1 == nil && seeds.Team2 == nil
}
