package settings

import (
	"fmt"

	"github.com/armando-couceiro/team-balance/internal/domain/player"
)

var AllLanguages = map[string]struct{}{
	"es": {}, "en": {}, "it": {}, "pt": {},
}

// Settings carries the per-device preferences the match flow reads.
type Settings struct {
	Lang        string            `json:"lang"`
	Team1Color  string            `json:"team1Color"`
	Team2Color  string            `json:"team2Color"`
	FunnyNames  bool              `json:"funnyNames"`
	BalanceMode player.WeightMode `json:"balanceMode"`
}

func Default() Settings {
	return Settings{
		Lang:        "es",
		Team1Color:  "#ffd700",
		Team2Color:  "#e63946",
		FunnyNames:  true,
		BalanceMode: player.WeightTotal,
	}
}

func (s Settings) Validate() error {
	if _, ok := AllLanguages[s.Lang]; !ok {
		return fmt.Errorf("unknown language: %s", s.Lang)
	}
	if _, ok := player.AllWeightModes[s.BalanceMode]; !ok {
		return fmt.Errorf("unknown balance mode: %s", s.BalanceMode)
	}
	return nil
}
