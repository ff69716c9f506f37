package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/armando-couceiro/team-balance/internal/domain/folder"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/infrastructure/repository/memory"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

func rosterPlayer(name string, skill int) player.Player {
	return player.Player{
		Name: name,
		Skills: player.Skills{
			Speed:     skill,
			Defense:   skill,
			Passing:   skill,
			Dribbling: skill,
			ShotPower: skill,
		},
	}
}

func newRosterFixture(players []player.Player, folders []folder.Folder) *RosterService {
	return NewRosterService(
		memory.NewRosterRepository(players),
		memory.NewFolderRepository(folders),
		logging.NewNop(),
	)
}

func TestAddPlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and stores", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)

		if err := svc.AddPlayer(ctx, rosterPlayer("  Flaco  ", 6)); err != nil {
			t.Fatalf("add: %v", err)
		}

		players, _ := svc.ListPlayers(ctx)
		if len(players) != 1 || players[0].Name != "Flaco" {
			t.Fatalf("expected trimmed name stored, got %+v", players)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)
		if err := svc.AddPlayer(ctx, rosterPlayer("   ", 6)); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		svc := newRosterFixture([]player.Player{rosterPlayer("Tano", 6)}, nil)
		if err := svc.AddPlayer(ctx, rosterPlayer("Tano", 4)); !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("rejects temp players", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)
		p := rosterPlayer("Suplente", 5)
		p.IsTemp = true
		if err := svc.AddPlayer(ctx, p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects out-of-range skills", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)
		p := rosterPlayer("Tronco", 5)
		p.Skills.ShotPower = 11
		if err := svc.AddPlayer(ctx, p); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects second owner", func(t *testing.T) {
		owner := rosterPlayer("Tano", 7)
		owner.IsOwner = true
		svc := newRosterFixture([]player.Player{owner}, nil)

		second := rosterPlayer("Otro", 5)
		second.IsOwner = true
		if err := svc.AddPlayer(ctx, second); !errors.Is(err, ErrOwnerExists) {
			t.Fatalf("expected ErrOwnerExists, got %v", err)
		}
	})
}

func TestOnboardCreatesOwner(t *testing.T) {
	ctx := context.Background()
	svc := newRosterFixture(nil, nil)

	p, err := svc.Onboard(ctx, "Tano", rosterPlayer("", 7).Skills)
	if err != nil {
		t.Fatalf("onboard: %v", err)
	}
	if !p.IsOwner {
		t.Fatal("expected onboarded player to be the owner")
	}

	owner, ok, _ := svc.Owner(ctx)
	if !ok || owner.Name != "Tano" {
		t.Fatalf("expected owner stored, got %+v ok=%v", owner, ok)
	}
}

func TestUpdatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("missing player", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)
		if err := svc.UpdatePlayer(ctx, "Nadie", rosterPlayer("Nadie", 5)); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("rename collision", func(t *testing.T) {
		svc := newRosterFixture([]player.Player{rosterPlayer("A", 5), rosterPlayer("B", 5)}, nil)
		if err := svc.UpdatePlayer(ctx, "A", rosterPlayer("B", 5)); !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("preserves owner flag", func(t *testing.T) {
		owner := rosterPlayer("Tano", 7)
		owner.IsOwner = true
		svc := newRosterFixture([]player.Player{owner}, nil)

		// The update payload never carries IsOwner; the stored flag wins.
		if err := svc.UpdatePlayer(ctx, "Tano", rosterPlayer("Tano", 9)); err != nil {
			t.Fatalf("update: %v", err)
		}

		got, ok, _ := svc.Owner(ctx)
		if !ok || got.Skills.Speed != 9 {
			t.Fatalf("expected owner flag and new skills, got %+v ok=%v", got, ok)
		}
	})

	t.Run("owner rename cascades into folders", func(t *testing.T) {
		owner := rosterPlayer("Tano", 7)
		owner.IsOwner = true
		folders := []folder.Folder{
			{Name: "Martes", Players: []player.ID{"Tano", "Colo"}},
			{Name: "Sábado", Players: []player.ID{"Colo"}},
		}
		svc := newRosterFixture([]player.Player{owner, rosterPlayer("Colo", 5)}, folders)

		if err := svc.UpdatePlayer(ctx, "Tano", rosterPlayer("El Tano", 7)); err != nil {
			t.Fatalf("update: %v", err)
		}

		got, _ := svc.ListFolders(ctx)
		for _, f := range got {
			if f.Contains("Tano") {
				t.Fatalf("expected old owner name pruned from %s", f.Name)
			}
		}
		martes, ok, _ := memoryFolder(got, "Martes")
		if !ok || !martes.Contains("El Tano") {
			t.Fatalf("expected cascade into Martes, got %+v", martes)
		}
	})

	t.Run("non-owner rename leaves folders alone", func(t *testing.T) {
		folders := []folder.Folder{{Name: "Martes", Players: []player.ID{"Colo"}}}
		svc := newRosterFixture([]player.Player{rosterPlayer("Colo", 5)}, folders)

		if err := svc.UpdatePlayer(ctx, "Colo", rosterPlayer("Colorado", 5)); err != nil {
			t.Fatalf("update: %v", err)
		}

		got, _ := svc.ListFolders(ctx)
		martes, _, _ := memoryFolder(got, "Martes")
		if !martes.Contains("Colo") {
			t.Fatalf("expected folder membership untouched, got %+v", martes)
		}
	})
}

func memoryFolder(folders []folder.Folder, name string) (folder.Folder, bool, error) {
	for _, f := range folders {
		if f.Name == name {
			return f, true, nil
		}
	}
	return folder.Folder{}, false, nil
}

func TestDeletePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses the owner", func(t *testing.T) {
		owner := rosterPlayer("Tano", 7)
		owner.IsOwner = true
		svc := newRosterFixture([]player.Player{owner}, nil)

		if err := svc.DeletePlayer(ctx, "Tano"); !errors.Is(err, ErrOwnerDelete) {
			t.Fatalf("expected ErrOwnerDelete, got %v", err)
		}
	})

	t.Run("missing player", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)
		if err := svc.DeletePlayer(ctx, "Nadie"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("prunes folder membership", func(t *testing.T) {
		folders := []folder.Folder{
			{Name: "Martes", Players: []player.ID{"Colo", "Flaco"}},
			{Name: "Sábado", Players: []player.ID{"Flaco"}},
		}
		svc := newRosterFixture([]player.Player{rosterPlayer("Colo", 5), rosterPlayer("Flaco", 6)}, folders)

		if err := svc.DeletePlayer(ctx, "Flaco"); err != nil {
			t.Fatalf("delete: %v", err)
		}

		got, _ := svc.ListFolders(ctx)
		for _, f := range got {
			if f.Contains("Flaco") {
				t.Fatalf("expected Flaco pruned from %s", f.Name)
			}
		}
		martes, _, _ := memoryFolder(got, "Martes")
		if !martes.Contains("Colo") {
			t.Fatal("expected other members kept")
		}
	})
}

func TestDeletePlayerOverSeedFixtures(t *testing.T) {
	ctx := context.Background()
	svc := newRosterFixture(memory.SeedPlayers(), memory.SeedFolders())

	if err := svc.DeletePlayer(ctx, "Flaco"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	folders, _ := svc.ListFolders(ctx)
	sabado, _, _ := memoryFolder(folders, "Sábado")
	if sabado.Contains("Flaco") {
		t.Fatal("expected Flaco pruned from Sábado")
	}
	if !sabado.Contains("Ruso") {
		t.Fatal("expected other members kept")
	}

	if err := svc.DeletePlayer(ctx, "Tano"); !errors.Is(err, ErrOwnerDelete) {
		t.Fatalf("expected ErrOwnerDelete for seeded owner, got %v", err)
	}
}

func TestFolders(t *testing.T) {
	ctx := context.Background()

	t.Run("add trims and is idempotent", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)

		if err := svc.AddFolder(ctx, "  Martes "); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := svc.AddFolder(ctx, "Martes"); err != nil {
			t.Fatalf("re-add: %v", err)
		}

		got, _ := svc.ListFolders(ctx)
		if len(got) != 1 || got[0].Name != "Martes" {
			t.Fatalf("expected one trimmed folder, got %+v", got)
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		svc := newRosterFixture(nil, nil)
		if err := svc.AddFolder(ctx, "   "); !errors.Is(err, ErrEmptyName) {
			t.Fatalf("expected ErrEmptyName, got %v", err)
		}
	})

	t.Run("membership requires folder and player", func(t *testing.T) {
		svc := newRosterFixture([]player.Player{rosterPlayer("Colo", 5)}, []folder.Folder{{Name: "Martes"}})

		if err := svc.AddPlayerToFolder(ctx, "Jueves", "Colo"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for folder, got %v", err)
		}
		if err := svc.AddPlayerToFolder(ctx, "Martes", "Nadie"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound for player, got %v", err)
		}
	})

	t.Run("repeated membership changes nothing", func(t *testing.T) {
		svc := newRosterFixture([]player.Player{rosterPlayer("Colo", 5)}, []folder.Folder{{Name: "Martes"}})

		if err := svc.AddPlayerToFolder(ctx, "Martes", "Colo"); err != nil {
			t.Fatalf("add member: %v", err)
		}
		if err := svc.AddPlayerToFolder(ctx, "Martes", "Colo"); err != nil {
			t.Fatalf("re-add member: %v", err)
		}

		got, _ := svc.ListFolders(ctx)
		martes, _, _ := memoryFolder(got, "Martes")
		if len(martes.Players) != 1 {
			t.Fatalf("expected single membership, got %+v", martes.Players)
		}

		if err := svc.RemovePlayerFromFolder(ctx, "Martes", "Colo"); err != nil {
			t.Fatalf("remove member: %v", err)
		}
		if err := svc.RemovePlayerFromFolder(ctx, "Martes", "Colo"); err != nil {
			t.Fatalf("re-remove member: %v", err)
		}
	})
}
