package service

import (
	"context"

	"github.com/billfold/billfold-api/internal/domain/entity"
	"github.com/billfold/billfold-api/internal/domain/repository"
	"github.com/billfold/billfold-api/pkg/apperror"
)

// SettingsService manages the shop identity printed on invoices.
// Invoices snapshot it at build time, so updating it here only affects
// invoices built afterwards.
type SettingsService struct {
	settingsRepo repository.SettingsStore
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsStore) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the current shop settings.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.ShopSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput carries partial settings updates.
type UpdateSettingsInput struct {
	ShopName    *string `json:"shop_name"`
	ShopAddress *string `json:"shop_address"`
	ShopPhone   *string `json:"shop_phone"`
	FooterNote  *string `json:"footer_note"`
}

// UpdateSettings merges the given fields into the stored settings.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.ShopSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.ShopName != nil {
		if *input.ShopName == "" {
			return nil, apperror.NewBadRequestError("Shop name cannot be empty")
		}
		settings.ShopName = *input.ShopName
	}
	if input.ShopAddress != nil {
		settings.ShopAddress = *input.ShopAddress
	}
	if input.ShopPhone != nil {
		settings.ShopPhone = *input.ShopPhone
	}
	if input.FooterNote != nil {
		settings.FooterNote = *input.FooterNote
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
