package memory

import (
	"context"
	"sync"

	"github.com/armando-couceiro/team-balance/internal/domain/settings"
)

type SettingsRepository struct {
	mu       sync.RWMutex
	settings settings.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{settings: settings.Default()}
}

func (r *SettingsRepository) Get(_ context.Context) (settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.settings, nil
}

func (r *SettingsRepository) Save(_ context.Context, s settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.settings = s
	return nil
}
