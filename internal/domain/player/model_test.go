package player

import (
	"errors"
	"testing"
)

func TestSkillsTotal(t *testing.T) {
	s := Skills{Speed: 8, Defense: 7, Passing: 6, Dribbling: 9, ShotPower: 10}
	if got := s.Total(); got != 40 {
		t.Fatalf("expected total 40, got %d", got)
	}
}

func TestSkillsWeightedScore(t *testing.T) {
	s := Skills{Speed: 2, Defense: 4, Passing: 6, Dribbling: 8, ShotPower: 10}

	tests := []struct {
		name string
		mode WeightMode
		want int
	}{
		{name: "total", mode: WeightTotal, want: 30},
		{name: "defense triples defense", mode: WeightDefense, want: 4*3 + 2 + 6 + 8 + 10},
		{name: "attack triples shot and doubles dribbling", mode: WeightAttack, want: 10*3 + 8*2 + 2 + 6 + 4},
		{name: "unknown mode falls back to total", mode: WeightMode("chaos"), want: 30},
		{name: "empty mode falls back to total", mode: WeightMode(""), want: 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.WeightedScore(tc.mode); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestSkillsValidate(t *testing.T) {
	valid := Skills{Speed: 1, Defense: 10, Passing: 5, Dribbling: 5, ShotPower: 5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid skills, got %v", err)
	}

	invalid := Skills{Speed: 0, Defense: 10, Passing: 5, Dribbling: 5, ShotPower: 5}
	if err := invalid.Validate(); !errors.Is(err, ErrSkillOutOfRange) {
		t.Fatalf("expected ErrSkillOutOfRange, got %v", err)
	}

	tooHigh := Skills{Speed: 5, Defense: 11, Passing: 5, Dribbling: 5, ShotPower: 5}
	if err := tooHigh.Validate(); !errors.Is(err, ErrSkillOutOfRange) {
		t.Fatalf("expected ErrSkillOutOfRange, got %v", err)
	}
}

func TestPlayerValidate(t *testing.T) {
	p := Player{Name: "", Skills: Skills{Speed: 5, Defense: 5, Passing: 5, Dribbling: 5, ShotPower: 5}}
	if err := p.Validate(); err == nil {
		t.Fatal("expected error for empty name")
	}

	p.Name = "Tano"
	if err := p.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}
}
