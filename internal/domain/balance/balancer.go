package balance

import (
	"errors"
	"fmt"
	"sort"

	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/domain/savedteam"
)

var (
	ErrInvalidSelection   = errors.New("selection must be a non-empty even number of players")
	ErrGoalkeeperLimit    = errors.New("at most 2 goalkeepers are allowed")
	ErrUnknownGoalkeeper  = errors.New("goalkeeper is not part of the selection")
	ErrDuplicateSelection = errors.New("duplicate player in selection")
	ErrSeedLimit          = errors.New("at most 2 saved teams can seed a balance")
)

// MaxGoalkeepers is the hard cap on designated keepers per match.
const MaxGoalkeepers = 2

// Seeds optionally pins saved teams to a side before the remaining pool is
// distributed.
type Seeds struct {
	Team1 *savedteam.SavedTeam
	Team2 *savedteam.SavedTeam
}

func (s Seeds) empty() bool {
	return s.Team1 == nil && s.Team2 == nil
}

// Result is the ephemeral output of a balance run, consumed immediately by the
// match lifecycle. Team names/colors are set only when seed teams were used.
type Result struct {
	Team1       []player.Player
	Team2       []player.Player
	Goalkeepers []player.ID
	Team1Name   string
	Team1Color  string
	Team2Name   string
	Team2Color  string
}

// Validate applies the selection rules callers must satisfy before invoking
// Teams. The balancer itself assumes valid input; this lives here so non-UI
// callers get the same guarantees the interactive flow enforces.
func Validate(selected []player.Player, goalkeeperNames []player.ID) error {
	if len(selected) == 0 || len(selected)%2 != 0 {
		return fmt.Errorf("%w: got %d players", ErrInvalidSelection, len(selected))
	}

	seen := make(map[player.ID]struct{}, len(selected))
	for _, p := range selected {
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateSelection, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	if len(goalkeeperNames) > MaxGoalkeepers {
		return fmt.Errorf("%w: got %d", ErrGoalkeeperLimit, len(goalkeeperNames))
	}
	for _, name := range goalkeeperNames {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownGoalkeeper, name)
		}
	}

	return nil
}

// Teams partitions the selection into two sides.
//
// Without seeds: field players are sorted descending by weighted score and
// dealt in strict alternation (even index to team1). Two keepers are split one
// per side in goalkeeperNames order; a single keeper is merged back into the
// ranked pool at its own score and drafted like anyone else.
//
// With seeds: players snapshotted in a seed team are pinned to that side and
// excluded from weighting; the leftover pool (keepers first) is handed out one
// at a time to whichever side currently has fewer players, ties favoring team1.
func Teams(selected []player.Player, goalkeeperNames []player.ID, mode player.WeightMode, seeds Seeds) Result {
	if !seeds.empty() {
		return seededTeams(selected, goalkeeperNames, mode, seeds)
	}
	return draftTeams(selected, goalkeeperNames, mode)
}

func draftTeams(selected []player.Player, goalkeeperNames []player.ID, mode player.WeightMode) Result {
	res := Result{Goalkeepers: append([]player.ID(nil), goalkeeperNames...)}

	var pool []player.Player
	switch len(goalkeeperNames) {
	case 2:
		// One keeper per side, in designation order. The split is
		// order-sensitive on purpose: callers treat keeper order as meaningful.
		gk1, _ := findPlayer(selected, goalkeeperNames[0])
		gk2, _ := findPlayer(selected, goalkeeperNames[1])
		res.Team1 = append(res.Team1, gk1)
		res.Team2 = append(res.Team2, gk2)
		pool = excludePlayers(selected, goalkeeperNames)
	default:
		// A single keeper re-enters the ranked pool at its own weighted score
		// and is drafted by parity like a field player. The keeper role is a
		// display label, not a placement override.
		pool = append([]player.Player(nil), selected...)
	}

	sortByWeightDesc(pool, mode)

	for i, p := range pool {
		if i%2 == 0 {
			res.Team1 = append(res.Team1, p)
		} else {
			res.Team2 = append(res.Team2, p)
		}
	}

	return res
}

func seededTeams(selected []player.Player, goalkeeperNames []player.ID, mode player.WeightMode, seeds Seeds) Result {
	res := Result{Goalkeepers: append([]player.ID(nil), goalkeeperNames...)}
	if seeds.Team1 != nil {
		res.Team1Name = seeds.Team1.Name
		res.Team1Color = seeds.Team1.Color
	}
	if seeds.Team2 != nil {
		res.Team2Name = seeds.Team2.Name
		res.Team2Color = seeds.Team2.Color
	}

	var unassigned []player.Player
	for _, p := range selected {
		switch {
		case seeds.Team1 != nil && seeds.Team1.Contains(p.Name):
			res.Team1 = append(res.Team1, p)
		case seeds.Team2 != nil && seeds.Team2.Contains(p.Name):
			res.Team2 = append(res.Team2, p)
		default:
			unassigned = append(unassigned, p)
		}
	}

	var keepers []player.Player
	for _, name := range goalkeeperNames {
		if gk, ok := findPlayer(unassigned, name); ok {
			keepers = append(keepers, gk)
		}
	}
	unassigned = excludePlayers(unassigned, playerNames(keepers))

	sortByWeightDesc(unassigned, mode)

	switch len(keepers) {
	case 2:
		res.Team1 = append(res.Team1, keepers[0])
		res.Team2 = append(res.Team2, keepers[1])
	case 1:
		appendToSmaller(&res, keepers[0])
	}

	// Running-balance greedy rather than fixed parity: seeded sides may start
	// uneven.
	for _, p := range unassigned {
		appendToSmaller(&res, p)
	}

	return res
}

func appendToSmaller(res *Result, p player.Player) {
	if len(res.Team2) < len(res.Team1) {
		res.Team2 = append(res.Team2, p)
		return
	}
	res.Team1 = append(res.Team1, p)
}

func sortByWeightDesc(pool []player.Player, mode player.WeightMode) {
	// Stable keeps selection order for equal scores.
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].WeightedScore(mode) > pool[j].WeightedScore(mode)
	})
}

func findPlayer(pool []player.Player, name player.ID) (player.Player, bool) {
	for _, p := range pool {
		if p.Name == name {
			return p, true
		}
	}
	return player.Player{}, false
}

func playerNames(pool []player.Player) []player.ID {
	out := make([]player.ID, 0, len(pool))
	for _, p := range pool {
		out = append(out, p.Name)
	}
	return out
}

func excludePlayers(pool []player.Player, names []player.ID) []player.Player {
	excluded := make(map[player.ID]struct{}, len(names))
	for _, name := range names {
		excluded[name] = struct{}{}
	}

	out := make([]player.Player, 0, len(pool))
	for _, p := range pool {
		if _, ok := excluded[p.Name]; !ok {
			out = append(out, p)
		}
	}
	return out
}
