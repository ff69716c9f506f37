package player

import (
	"errors"
	"fmt"
)

// ID is a player name. The roster uses the name itself as the primary key
// (folders, saved teams and match snapshots all join on it), so uniqueness is
// enforced at every write boundary instead of minting surrogate ids.
type ID = string

// WeightMode selects how a player's skills collapse into a single balancing weight.
type WeightMode string

const (
	WeightTotal   WeightMode = "total"
	WeightDefense WeightMode = "defense"
	WeightAttack  WeightMode = "attack"
)

var AllWeightModes = map[WeightMode]struct{}{
	WeightTotal:   {},
	WeightDefense: {},
	WeightAttack:  {},
}

const (
	SkillMin = 1
	SkillMax = 10
)

var ErrSkillOutOfRange = errors.New("skill value out of range")

// Skills holds the five rated attributes, each in [1,10].
type Skills struct {
	Speed     int `json:"speed" validate:"min=1,max=10"`
	Defense   int `json:"defense" validate:"min=1,max=10"`
	Passing   int `json:"passing" validate:"min=1,max=10"`
	Dribbling int `json:"dribbling" validate:"min=1,max=10"`
	ShotPower int `json:"shotPower" validate:"min=1,max=10"`
}

// Total is the canonical 1..50 rating shown everywhere.
func (s Skills) Total() int {
	return s.Speed + s.Defense + s.Passing + s.Dribbling + s.ShotPower
}

// WeightedScore computes the balancing weight under the given mode.
// An unrecognized mode falls back to the plain total.
func (s Skills) WeightedScore(mode WeightMode) int {
	switch mode {
	case WeightDefense:
		return s.Defense*3 + s.Speed + s.Passing + s.Dribbling + s.ShotPower
	case WeightAttack:
		return s.ShotPower*3 + s.Dribbling*2 + s.Speed + s.Passing + s.Defense
	default:
		return s.Total()
	}
}

func (s Skills) Validate() error {
	for _, v := range []int{s.Speed, s.Defense, s.Passing, s.Dribbling, s.ShotPower} {
		if v < SkillMin || v > SkillMax {
			return fmt.Errorf("%w: %d", ErrSkillOutOfRange, v)
		}
	}
	return nil
}

// Player is one roster entry. Temp players exist only for the duration of a
// single match and are never written to the roster.
type Player struct {
	Name    ID     `json:"name"`
	Skills  Skills `json:"skills"`
	IsOwner bool   `json:"isOwner"`
	IsTemp  bool   `json:"isTemp"`
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	return p.Skills.Validate()
}

func (p Player) Total() int {
	return p.Skills.Total()
}

func (p Player) WeightedScore(mode WeightMode) int {
	return p.Skills.WeightedScore(mode)
}
