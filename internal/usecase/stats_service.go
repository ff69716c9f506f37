package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/armando-couceiro/team-balance/internal/domain/match"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

// Result is a match outcome from the owner's point of view.
type Result string

const (
	ResultWon  Result = "won"
	ResultLost Result = "lost"
	ResultDraw Result = "draw"
	// ResultNone means the owner did not take part in the match.
	ResultNone Result = ""
)

// CelebrationStreak is the consecutive-win count that earns the one-time
// celebratory notification.
const CelebrationStreak = 7

const rivalryRecentResults = 5

// AggregateStats summarizes the match history. OwnerScoped reports whether an
// owner profile existed: with one, counts cover the owner's matches and the
// owner's own goals/assists; without one they cover the whole history.
type AggregateStats struct {
	Matches     int
	Wins        int
	Draws       int
	Losses      int
	Goals       int
	Assists     int
	OwnerScoped bool
}

// RivalryResult is one past meeting, seen from side A of the rivalry.
type RivalryResult struct {
	Date   time.Time
	GoalsA int
	GoalsB int
}

// Rivalry is a recurring matchup between the same two rosters or the same two
// saved teams.
type Rivalry struct {
	SideA   string
	SideB   string
	Matches int
	WinsA   int
	WinsB   int
	Draws   int
	// Recent holds the last meetings, most recent first.
	Recent []RivalryResult
}

// Filter narrows the history list; all set fields compose with AND.
type Filter struct {
	// Participant keeps matches whose roster snapshot includes this name.
	Participant string
	// Result keeps matches with this owner result.
	Result Result
	// From/To bound the match date inclusively; zero values leave a side open.
	From time.Time
	To   time.Time
}

// StatsService derives statistics from the match log on demand; nothing here
// is stored.
type StatsService struct {
	matchRepo  match.Repository
	playerRepo player.Repository
	logger     *logging.Logger

	mu         sync.Mutex
	celebrated map[int]struct{}
}

func NewStatsService(matchRepo match.Repository, playerRepo player.Repository, logger *logging.Logger) *StatsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &StatsService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		logger:     logger,
		celebrated: make(map[int]struct{}),
	}
}

// OwnerSide returns which side of the match lists the owner's name, or
// TeamAny when the owner is absent (manual entries without rosters).
func OwnerSide(m match.Match, owner player.ID) match.TeamTag {
	switch {
	case owner != "" && m.Team1.HasPlayer(owner):
		return match.Team1
	case owner != "" && m.Team2.HasPlayer(owner):
		return match.Team2
	default:
		return match.TeamAny
	}
}

// OwnerResult compares goal counts from the owner's side.
func OwnerResult(m match.Match, owner player.ID) Result {
	side := OwnerSide(m, owner)
	if side == match.TeamAny {
		return ResultNone
	}
	winner := m.Winner()
	switch {
	case winner == match.TeamAny:
		return ResultDraw
	case winner == side:
		return ResultWon
	default:
		return ResultLost
	}
}

// Aggregate computes the headline stats over the whole history.
func (s *StatsService) Aggregate(ctx context.Context) (AggregateStats, error) {
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return AggregateStats{}, fmt.Errorf("list matches: %w", err)
	}

	owner, hasOwner, err := s.playerRepo.Owner(ctx)
	if err != nil {
		return AggregateStats{}, fmt.Errorf("get owner: %w", err)
	}

	if !hasOwner {
		return rosterWideStats(matches), nil
	}

	stats := AggregateStats{OwnerScoped: true}
	for _, m := range matches {
		switch OwnerResult(m, owner.Name) {
		case ResultWon:
			stats.Matches++
			stats.Wins++
		case ResultLost:
			stats.Matches++
			stats.Losses++
		case ResultDraw:
			stats.Matches++
			stats.Draws++
		}
		for _, sc := range m.Scorers {
			if sc.Player == owner.Name {
				stats.Goals++
			}
		}
		for _, as := range m.Assists {
			if as.Player == owner.Name {
				stats.Assists++
			}
		}
	}

	return stats, nil
}

func rosterWideStats(matches []match.Match) AggregateStats {
	stats := AggregateStats{Matches: len(matches)}
	for _, m := range matches {
		stats.Goals += m.Team1.Goals + m.Team2.Goals
		stats.Assists += len(m.Assists)
		if m.Winner() == match.TeamAny {
			stats.Draws++
		}
	}
	return stats
}

// ConsecutiveWins counts, from the owner's most recent match backwards, how
// many results in a row are wins.
func (s *StatsService) ConsecutiveWins(ctx context.Context) (int, error) {
	owner, hasOwner, err := s.playerRepo.Owner(ctx)
	if err != nil {
		return 0, fmt.Errorf("get owner: %w", err)
	}
	if !hasOwner {
		return 0, nil
	}

	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return 0, fmt.Errorf("list matches: %w", err)
	}

	owned := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if OwnerResult(m, owner.Name) != ResultNone {
			owned = append(owned, m)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].Date.After(owned[j].Date)
	})

	streak := 0
	for _, m := range owned {
		if OwnerResult(m, owner.Name) != ResultWon {
			break
		}
		streak++
	}

	return streak, nil
}

// StreakCelebration reports the current streak and whether the celebratory
// notification should fire. A given streak length fires at most once per
// session.
func (s *StatsService) StreakCelebration(ctx context.Context) (int, bool, error) {
	streak, err := s.ConsecutiveWins(ctx)
	if err != nil {
		return 0, false, err
	}
	if streak < CelebrationStreak {
		return streak, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.celebrated[streak]; seen {
		return streak, false, nil
	}
	s.celebrated[streak] = struct{}{}

	s.logger.Info("win streak reached", "streak", streak)
	return streak, true, nil
}

// Rivalries groups non-manual matches into recurring matchups. Two saved
// teams key on their names; ad-hoc sides key on their sorted rosters, so the
// same two lineups collapse into one entry no matter which side was team1.
func (s *StatsService) Rivalries(ctx context.Context) ([]Rivalry, error) {
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	type group struct {
		keyA, keyB string
		matches    []match.Match
	}
	groups := make(map[string]*group)

	for _, m := range matches {
		if m.ManualEntry {
			continue
		}
		keyA, keyB := rivalryKeys(m)
		pair := keyA + " vs " + keyB
		g, ok := groups[pair]
		if !ok {
			g = &group{keyA: keyA, keyB: keyB}
			groups[pair] = g
		}
		g.matches = append(g.matches, m)
	}

	out := make([]Rivalry, 0, len(groups))
	for _, g := range groups {
		if len(g.matches) < 2 {
			continue
		}
		out = append(out, buildRivalry(g.keyA, g.keyB, g.matches))
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return out[i].Recent[0].Date.After(out[j].Recent[0].Date)
	})

	return out, nil
}

func buildRivalry(keyA, keyB string, matches []match.Match) Rivalry {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.After(matches[j].Date)
	})

	r := Rivalry{Matches: len(matches)}
	// Display names come from the most recent meeting.
	latest := matches[0]
	if k1, _ := sideKeys(latest); k1 == keyA {
		r.SideA, r.SideB = latest.Team1.Name, latest.Team2.Name
	} else {
		r.SideA, r.SideB = latest.Team2.Name, latest.Team1.Name
	}

	for _, m := range matches {
		goalsA, goalsB := m.Team1.Goals, m.Team2.Goals
		if k1, _ := sideKeys(m); k1 != keyA {
			goalsA, goalsB = goalsB, goalsA
		}
		switch {
		case goalsA > goalsB:
			r.WinsA++
		case goalsB > goalsA:
			r.WinsB++
		default:
			r.Draws++
		}
		if len(r.Recent) < rivalryRecentResults {
			r.Recent = append(r.Recent, RivalryResult{Date: m.Date, GoalsA: goalsA, GoalsB: goalsB})
		}
	}

	return r
}

// rivalryKeys returns the match's two side keys in canonical (sorted) order.
func rivalryKeys(m match.Match) (string, string) {
	k1, k2 := sideKeys(m)
	if k2 < k1 {
		return k2, k1
	}
	return k1, k2
}

// sideKeys identifies each side for grouping: by team name when either side
// is a saved team, by sorted roster otherwise.
func sideKeys(m match.Match) (string, string) {
	if m.Team1.IsSavedTeam() || m.Team2.IsSavedTeam() {
		return "team:" + m.Team1.Name, "team:" + m.Team2.Name
	}
	return "roster:" + rosterKey(m.Team1.Players), "roster:" + rosterKey(m.Team2.Players)
}

func rosterKey(players []player.ID) string {
	names := append([]player.ID(nil), players...)
	sort.Strings(names)
	return strings.Join(names, "|")
}

// FilterMatches returns history entries matching every set filter field, most
// recent first.
func (s *StatsService) FilterMatches(ctx context.Context, f Filter) ([]match.Match, error) {
	matches, err := s.matchRepo.ListMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	var owner player.ID
	if f.Result != ResultNone {
		p, hasOwner, err := s.playerRepo.Owner(ctx)
		if err != nil {
			return nil, fmt.Errorf("get owner: %w", err)
		}
		if hasOwner {
			owner = p.Name
		}
	}

	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if f.Participant != "" && !m.Team1.HasPlayer(f.Participant) && !m.Team2.HasPlayer(f.Participant) {
			continue
		}
		if f.Result != ResultNone && OwnerResult(m, owner) != f.Result {
			continue
		}
		if !f.From.IsZero() && m.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && m.Date.After(f.To) {
			continue
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})

	return out, nil
}
