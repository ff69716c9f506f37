package usecase

import (
	"context"
	"fmt"

	"github.com/armando-couceiro/team-balance/internal/domain/settings"
	"github.com/armando-couceiro/team-balance/internal/platform/logging"
)

// SettingsService owns the per-device preferences.
type SettingsService struct {
	settingsRepo settings.Repository
	logger       *logging.Logger
}

func NewSettingsService(settingsRepo settings.Repository, logger *logging.Logger) *SettingsService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SettingsService{settingsRepo: settingsRepo, logger: logger}
}

func (s *SettingsService) Get(ctx context.Context) (settings.Settings, error) {
	return s.settingsRepo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, cfg settings.Settings) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	s.logger.Info("settings updated", "lang", cfg.Lang, "balance_mode", string(cfg.BalanceMode))
	return nil
}
