package ports

import (
	"context"

	"github.com/navicula/navicula/internal/core/domain"
)

// Error tags attached to degraded notification results. Provider failures
// never fail the request; they reduce to a null count plus one of these.
const (
	TagUnauthorized = "unauthorized"
	TagTimeout      = "timeout"
	TagFetchFailed  = "fetch_failed"
)

// NotificationResult carries an unread count, or nil when the app has no
// integration, the credential is not configured, or the provider failed.
type NotificationResult struct {
	Count    *int   `json:"count"`
	ErrorTag string `json:"error,omitempty"`
}

type NotificationService interface {
	CountForApp(ctx context.Context, identity Identity, appID string) (NotificationResult, error)
}

// NotificationProvider reduces one outbound provider call to an unread
// count. Implementations report domain.ErrCredentialMissing when the bag
// holds no usable credential and classify transport failures as
// domain.ErrProviderUnauthorized, ErrProviderTimeout or ErrProviderFetch.
type NotificationProvider interface {
	FetchCount(ctx context.Context, app domain.AppLink, settings domain.SettingsBag) (int, error)
}

// CountCache is an optional short-lived cache for successful counts.
type CountCache interface {
	Get(ctx context.Context, userID, appID string) (count int, ok bool, err error)
	Set(ctx context.Context, userID, appID string, count int) error
}
