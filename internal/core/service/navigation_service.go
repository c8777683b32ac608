package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

// NavigationService resolves the filtered, user-specific navigation tree.
type NavigationService struct {
	configs ports.ConfigStore
	logger  zerolog.Logger
}

func NewNavigationService(configs ports.ConfigStore, logger zerolog.Logger) *NavigationService {
	return &NavigationService{configs: configs, logger: logger}
}

// Resolve loads the config, resolves the caller's identity and role, and
// filters the navigation tree down to the entries the role grants.
func (s *NavigationService) Resolve(ctx context.Context, identity ports.Identity) (*ports.NavigationResult, error) {
	cfg, err := s.configs.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load launcher config")
		return nil, domain.ErrConfigUnavailable
	}

	userID, source, err := resolveIdentity(identity, cfg)
	if err != nil {
		return nil, err
	}

	roleName, role, err := cfg.RoleFor(userID)
	if err != nil {
		s.logger.Error().Str("user_id", userID).Msg("neither assigned nor default role is defined")
		return nil, err
	}

	perms := domain.NewPermissionSet(role.Permissions)
	filtered := domain.FilterNavigation(cfg.NavigationItems, perms)

	keybindings := cfg.Keybindings
	if keybindings == nil {
		keybindings = map[string]string{}
	}

	s.logger.Debug().
		Str("user_id", userID).
		Str("source", source).
		Str("role", roleName).
		Int("items", len(filtered)).
		Msg("navigation resolved")

	return &ports.NavigationResult{
		UserID:              userID,
		RoleName:            roleName,
		NavigationItems:     filtered,
		DefaultToolbarColor: cfg.ToolbarColor(),
		Keybindings:         keybindings,
	}, nil
}
