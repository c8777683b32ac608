package domain

import "errors"

var (
	// ErrConfigUnavailable marks a missing or malformed launcher config
	// document.
	ErrConfigUnavailable = errors.New("launcher configuration unavailable")
	// ErrRoleDefinitionMissing marks a role chain that cannot resolve even
	// to the default role.
	ErrRoleDefinitionMissing = errors.New("role definition missing")

	// ErrIdentityRequired: remote auth is enabled but the request carried no
	// usable identity header.
	ErrIdentityRequired = errors.New("user identity required")
	// ErrDefaultUserMissing: local mode, but the default user has no
	// configured assignment.
	ErrDefaultUserMissing = errors.New("default user not configured")

	ErrAppNotFound      = errors.New("application not found")
	ErrAppForbidden     = errors.New("application access forbidden")
	ErrSettingsNotFound = errors.New("application settings not found")

	// ErrSettingsUnavailable marks an unreadable or unwritable settings
	// store.
	ErrSettingsUnavailable = errors.New("user settings store unavailable")

	// Provider errors are advisory: notification lookups always degrade to
	// a null count instead of failing the request.
	ErrCredentialMissing    = errors.New("credential not configured")
	ErrProviderUnauthorized = errors.New("provider rejected credential")
	ErrProviderTimeout      = errors.New("provider request timed out")
	ErrProviderFetch        = errors.New("provider request failed")
)
