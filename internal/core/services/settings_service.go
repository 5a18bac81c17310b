package services

import (
	"context"
	"fmt"

	portsrepo "github.com/daftari-app/daftari/internal/core/ports/repositories"
	"github.com/daftari-app/daftari/internal/dto"
	"github.com/daftari-app/daftari/internal/models"
)

// SettingsService exposes the office profile singleton.
type SettingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

func (s *SettingsService) GetSettings(ctx context.Context) (models.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings in service: %w", err)
	}
	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (models.Settings, error) {
	settings, err := s.settingsRepo.UpdateSettings(ctx, req.ToPatch())
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to update settings in service: %w", err)
	}
	return settings, nil
}
