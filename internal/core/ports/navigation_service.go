package ports

import (
	"context"

	"github.com/navicula/navicula/internal/core/domain"
)

// Identity is the request-scoped identity signal. RemoteUser carries the
// trusted proxy-injected header value and is empty when the header was
// absent; it is only consulted when the config enables remote auth.
type Identity struct {
	RemoteUser string
}

// NavigationResult is the filtered, user-specific navigation payload.
type NavigationResult struct {
	UserID              string                  `json:"userId"`
	RoleName            string                  `json:"role"`
	NavigationItems     []domain.NavigationItem `json:"navigationItems"`
	DefaultToolbarColor string                  `json:"defaultToolbarColor"`
	Keybindings         map[string]string       `json:"keybindings"`
}

type NavigationService interface {
	Resolve(ctx context.Context, identity Identity) (*NavigationResult, error)
}
