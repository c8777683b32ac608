package ports

import (
	"context"

	"github.com/navicula/navicula/internal/core/domain"
)

// ConfigStore loads the launcher configuration document. Implementations
// re-read the backing document on every call; callers must not cache the
// result across requests.
type ConfigStore interface {
	Load(ctx context.Context) (*domain.Config, error)
}
