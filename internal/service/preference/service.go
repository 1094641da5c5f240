package preference

import (
	"context"
	"fmt"

	"github.com/attendo-app/attendo-backend-go/internal/domain/preference"
	"github.com/attendo-app/attendo-backend-go/internal/domain/user"
)

type PreferenceServiceImpl struct {
	user.AdminRepository
}

func NewPreferenceService(adminRepository user.AdminRepository) preference.PreferenceService {
	return &PreferenceServiceImpl{
		AdminRepository: adminRepository,
	}
}

// GetTheme implements preference.PreferenceService.
func (s *PreferenceServiceImpl) GetTheme(ctx context.Context, userID string) (*preference.ThemeResponse, error) {
	admin, err := s.AdminRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	theme := admin.Theme
	if theme == "" {
		theme = preference.ThemeLight
	}

	return &preference.ThemeResponse{Theme: theme}, nil
}

// ToggleTheme implements preference.PreferenceService.
func (s *PreferenceServiceImpl) ToggleTheme(ctx context.Context, userID string) (*preference.ThemeResponse, error) {
	current, err := s.GetTheme(ctx, userID)
	if err != nil {
		return nil, err
	}

	next := preference.ThemeDark
	if current.Theme == preference.ThemeDark {
		next = preference.ThemeLight
	}

	if err := s.AdminRepository.UpdateTheme(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("failed to persist theme: %w", err)
	}

	return &preference.ThemeResponse{Theme: next}, nil
}
