package preference

import "context"

// PreferenceService owns per-admin display settings. Theme reads and
// writes go through here so handlers never touch the user row directly.
type PreferenceService interface {
	GetTheme(ctx context.Context, userID string) (*ThemeResponse, error)
	ToggleTheme(ctx context.Context, userID string) (*ThemeResponse, error)
}
