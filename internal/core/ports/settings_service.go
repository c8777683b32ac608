package ports

import (
	"context"

	"github.com/navicula/navicula/internal/core/domain"
)

// SettingsService manages one user's per-application settings. Every
// operation re-resolves the caller's role and rejects app IDs the role
// cannot access, rather than trusting the client to only reference IDs it
// was shown.
type SettingsService interface {
	GetUserApp(ctx context.Context, identity Identity, appID string) (domain.SettingsBag, error)
	// UpdateUserApp applies changes to the (user, app) settings bag: an
	// empty string value removes the key. The app entry is dropped when its
	// bag empties, and the user entry when no apps remain.
	UpdateUserApp(ctx context.Context, identity Identity, appID string, changes map[string]string) error
	DeleteUserApp(ctx context.Context, identity Identity, appID string) error
}
