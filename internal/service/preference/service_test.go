package preference

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attendo-app/attendo-backend-go/internal/domain/preference"
	"github.com/attendo-app/attendo-backend-go/internal/domain/user"
)

// fakeAdminRepository keeps admins in a map so theme round trips can be
// asserted without a database.
type fakeAdminRepository struct {
	admins map[string]user.Admin
}

func (f *fakeAdminRepository) Create(ctx context.Context, admin user.Admin) (user.Admin, error) {
	f.admins[admin.ID] = admin
	return admin, nil
}

func (f *fakeAdminRepository) GetByID(ctx context.Context, id string) (user.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return user.Admin{}, user.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepository) GetByEmail(ctx context.Context, email string) (user.Admin, error) {
	for _, admin := range f.admins {
		if admin.Email == email {
			return admin, nil
		}
	}
	return user.Admin{}, user.ErrAdminNotFound
}

func (f *fakeAdminRepository) UpdateTheme(ctx context.Context, id string, theme string) error {
	admin, ok := f.admins[id]
	if !ok {
		return user.ErrAdminNotFound
	}
	admin.Theme = theme
	f.admins[id] = admin
	return nil
}

func newFakeAdminRepository(admins ...user.Admin) *fakeAdminRepository {
	repo := &fakeAdminRepository{admins: make(map[string]user.Admin)}
	for _, admin := range admins {
		repo.admins[admin.ID] = admin
	}
	return repo
}

func TestGetThemeDefaultsToLight(t *testing.T) {
	repo := newFakeAdminRepository(user.Admin{ID: "admin-1"})
	svc := NewPreferenceService(repo)

	resp, err := svc.GetTheme(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeLight, resp.Theme)
}

func TestGetThemeReturnsStoredValue(t *testing.T) {
	repo := newFakeAdminRepository(user.Admin{ID: "admin-1", Theme: preference.ThemeDark})
	svc := NewPreferenceService(repo)

	resp, err := svc.GetTheme(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeDark, resp.Theme)
}

func TestToggleThemeRoundTrip(t *testing.T) {
	repo := newFakeAdminRepository(user.Admin{ID: "admin-1"})
	svc := NewPreferenceService(repo)
	ctx := context.Background()

	resp, err := svc.ToggleTheme(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeDark, resp.Theme)
	assert.Equal(t, preference.ThemeDark, repo.admins["admin-1"].Theme)

	resp, err = svc.ToggleTheme(ctx, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, preference.ThemeLight, resp.Theme)
	assert.Equal(t, preference.ThemeLight, repo.admins["admin-1"].Theme)
}

func TestToggleThemeUnknownAdmin(t *testing.T) {
	svc := NewPreferenceService(newFakeAdminRepository())

	_, err := svc.ToggleTheme(context.Background(), "nobody")
	assert.ErrorIs(t, err, user.ErrAdminNotFound)
}
