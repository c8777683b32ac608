package ports

import (
	"context"

	"github.com/navicula/navicula/internal/core/domain"
)

// SettingsRepository persists the shared per-user, per-app settings
// structure.
type SettingsRepository interface {
	// LoadUser returns the settings for userID. A store that does not exist
	// yet yields an empty mapping, not an error.
	LoadUser(ctx context.Context, userID string) (domain.UserAppSettings, error)
	// ReplaceUser replaces userID's entire entry. An empty mapping removes
	// the user from the persisted structure.
	ReplaceUser(ctx context.Context, userID string, settings domain.UserAppSettings) error
}
