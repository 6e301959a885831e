package repository

import (
	"context"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// SettingsStore holds the current shop settings. The invoice builder
// reads the issuer identity from here at build time only.
type SettingsStore interface {
	Get(ctx context.Context) (*entity.ShopSettings, error)
	Update(ctx context.Context, settings *entity.ShopSettings) error
}
