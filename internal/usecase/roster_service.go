package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/armando-couceiro/team-balance/internal/domain/folder"
	"github.com/armando-couceiro/team-balance/internal/domain/player"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

// RosterService owns every mutation of the player and folder collections.
type RosterService struct {
	playerRepo player.Repository
	folderRepo folder.Repository
	validate   *validator.Validate
	logger     *logging.Logger
}

func NewRosterService(playerRepo player.Repository, folderRepo folder.Repository, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RosterService{
		playerRepo: playerRepo,
		folderRepo: folderRepo,
		validate:   validator.New(),
		logger:     logger,
	}
}

// AddPlayer inserts a new roster player. Temp players are rejected: they live
// only inside a single balance run and are never persisted.
func (s *RosterService) AddPlayer(ctx context.Context, p player.Player) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: player name", ErrEmptyName)
	}
	if p.IsTemp {
		return fmt.Errorf("%w: temp players are not persisted to the roster", ErrInvalidInput)
	}
	if err := s.validate.Struct(p.Skills); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.playerRepo.GetByName(ctx, p.Name); err != nil {
		return fmt.Errorf("get player by name: %w", err)
	} else if exists {
		return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
	}

	if p.IsOwner {
		if _, exists, err := s.playerRepo.Owner(ctx); err != nil {
			return fmt.Errorf("get owner: %w", err)
		} else if exists {
			return fmt.Errorf("%w", ErrOwnerExists)
		}
	}

	if err := s.playerRepo.Add(ctx, p); err != nil {
		return fmt.Errorf("add player: %w", err)
	}

	s.logger.Info("player added", "name", p.Name, "total", p.Total(), "is_owner", p.IsOwner)
	return nil
}

// Onboard creates the device owner's own player profile.
func (s *RosterService) Onboard(ctx context.Context, name string, skills player.Skills) (player.Player, error) {
	p := player.Player{Name: strings.TrimSpace(name), Skills: skills, IsOwner: true}
	if err := s.AddPlayer(ctx, p); err != nil {
		return player.Player{}, err
	}
	return p, nil
}

// UpdatePlayer replaces the entry stored under previousName. Renaming the
// owner cascades the new name into every folder's member list; historical
// match snapshots deliberately keep the old name.
func (s *RosterService) UpdatePlayer(ctx context.Context, previousName player.ID, p player.Player) error {
	previousName = strings.TrimSpace(previousName)
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return fmt.Errorf("%w: player name", ErrEmptyName)
	}
	if err := s.validate.Struct(p.Skills); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	existing, exists, err := s.playerRepo.GetByName(ctx, previousName)
	if err != nil {
		return fmt.Errorf("get player by name: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player %s", ErrNotFound, previousName)
	}

	renaming := p.Name != previousName
	if renaming {
		if _, taken, err := s.playerRepo.GetByName(ctx, p.Name); err != nil {
			return fmt.Errorf("get player by name: %w", err)
		} else if taken {
			return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
		}
	}

	p.IsOwner = existing.IsOwner
	if err := s.playerRepo.Update(ctx, previousName, p); err != nil {
		return fmt.Errorf("update player: %w", err)
	}

	if renaming && existing.IsOwner {
		if err := s.cascadeRename(ctx, previousName, p.Name); err != nil {
			return err
		}
		s.logger.Info("owner renamed", "from", previousName, "to", p.Name)
	}

	return nil
}

// DeletePlayer removes a roster player and prunes the name from every folder.
// The owner profile cannot be deleted. Historical match rosters are name
// snapshots and stay untouched.
func (s *RosterService) DeletePlayer(ctx context.Context, name player.ID) error {
	p, exists, err := s.playerRepo.GetByName(ctx, name)
	if err != nil {
		return fmt.Errorf("get player by name: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player %s", ErrNotFound, name)
	}
	if p.IsOwner {
		return fmt.Errorf("%w: %s", ErrOwnerDelete, name)
	}

	if err := s.playerRepo.Delete(ctx, name); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}

	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list folders: %w", err)
	}
	for _, f := range folders {
		if !f.Contains(name) {
			continue
		}
		if err := s.folderRepo.Update(ctx, f.WithoutPlayer(name)); err != nil {
			return fmt.Errorf("prune folder %s: %w", f.Name, err)
		}
	}

	s.logger.Info("player deleted", "name", name)
	return nil
}

func (s *RosterService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	return s.playerRepo.List(ctx)
}

func (s *RosterService) Owner(ctx context.Context) (player.Player, bool, error) {
	return s.playerRepo.Owner(ctx)
}

// AddFolder creates a folder; an existing name is a silent no-op.
func (s *RosterService) AddFolder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: folder name", ErrEmptyName)
	}

	return s.folderRepo.Add(ctx, folder.Folder{Name: name})
}

func (s *RosterService) DeleteFolder(ctx context.Context, name string) error {
	return s.folderRepo.Delete(ctx, name)
}

// AddPlayerToFolder is idempotent: adding an existing member changes nothing.
func (s *RosterService) AddPlayerToFolder(ctx context.Context, folderName string, name player.ID) error {
	f, exists, err := s.folderRepo.GetByName(ctx, folderName)
	if err != nil {
		return fmt.Errorf("get folder: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: folder %s", ErrNotFound, folderName)
	}

	if _, exists, err := s.playerRepo.GetByName(ctx, name); err != nil {
		return fmt.Errorf("get player by name: %w", err)
	} else if !exists {
		return fmt.Errorf("%w: player %s", ErrNotFound, name)
	}

	return s.folderRepo.Update(ctx, f.WithPlayer(name))
}

// RemovePlayerFromFolder is idempotent: removing an absent member is a no-op.
func (s *RosterService) RemovePlayerFromFolder(ctx context.Context, folderName string, name player.ID) error {
	f, exists, err := s.folderRepo.GetByName(ctx, folderName)
	if err != nil {
		return fmt.Errorf("get folder: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: folder %s", ErrNotFound, folderName)
	}

	return s.folderRepo.Update(ctx, f.WithoutPlayer(name))
}

func (s *RosterService) ListFolders(ctx context.Context) ([]folder.Folder, error) {
	return s.folderRepo.List(ctx)
}

func (s *RosterService) cascadeRename(ctx context.Context, oldName, newName player.ID) error {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list folders: %w", err)
	}
	for _, f := range folders {
		if !f.Contains(oldName) {
			continue
		}
		if err := s.folderRepo.Update(ctx, f.WithRenamedPlayer(oldName, newName)); err != nil {
			return fmt.Errorf("rename in folder %s: %w", f.Name, err)
		}
	}
	return nil
}
