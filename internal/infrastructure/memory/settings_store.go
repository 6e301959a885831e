package memory

import (
	"context"
	"sync"
	"time"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
)

// SettingsStore holds the current shop settings.
type SettingsStore struct {
	mu       sync.RWMutex
	settings entity.ShopSettings
}

// NewSettingsStore creates a settings store seeded with the given
// initial settings (normally from config).
func NewSettingsStore(initial entity.ShopSettings) *SettingsStore {
	return &SettingsStore{settings: initial}
}

var _ repository.SettingsStore = (*SettingsStore)(nil)

func (s *SettingsStore) Get(ctx context.Context) (*entity.ShopSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := s.settings
	return &cp, nil
}

func (s *SettingsStore) Update(ctx context.Context, settings *entity.ShopSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.UpdatedAt = time.Now()
	s.settings = *settings
	return nil
}
