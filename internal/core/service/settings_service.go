package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

// SettingsService manages per-user application settings with a
// read-modify-write discipline over the shared persisted structure.
type SettingsService struct {
	configs ports.ConfigStore
	repo    ports.SettingsRepository
	logger  zerolog.Logger
}

func NewSettingsService(configs ports.ConfigStore, repo ports.SettingsRepository, logger zerolog.Logger) *SettingsService {
	return &SettingsService{configs: configs, repo: repo, logger: logger}
}

// authorize resolves the caller and verifies the target app exists and the
// caller's role grants access to it. The filtered navigation tree alone is
// not trusted as the enforcement boundary.
func (s *SettingsService) authorize(ctx context.Context, identity ports.Identity, appID string) (string, error) {
	cfg, err := s.configs.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load launcher config")
		return "", domain.ErrConfigUnavailable
	}

	userID, _, err := resolveIdentity(identity, cfg)
	if err != nil {
		return "", err
	}

	if _, ok := domain.FindAppLink(cfg.NavigationItems, appID); !ok {
		return "", domain.ErrAppNotFound
	}

	_, role, err := cfg.RoleFor(userID)
	if err != nil {
		return "", err
	}
	if !domain.NewPermissionSet(role.Permissions).Allows(appID) {
		s.logger.Warn().Str("user_id", userID).Str("app_id", appID).Msg("settings access denied by role")
		return "", domain.ErrAppForbidden
	}

	return userID, nil
}

// GetUserApp returns the stored settings bag for (user, app). A user or app
// with no stored entry yields an empty bag.
func (s *SettingsService) GetUserApp(ctx context.Context, identity ports.Identity, appID string) (domain.SettingsBag, error) {
	userID, err := s.authorize(ctx, identity, appID)
	if err != nil {
		return nil, err
	}

	settings, err := s.repo.LoadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	bag, ok := settings[appID]
	if !ok {
		return domain.SettingsBag{}, nil
	}
	return bag, nil
}

// UpdateUserApp applies changes to the (user, app) bag and rewrites the
// persisted structure. An unreadable store is treated as empty here so the
// first write can create it; truly unwritable stores fail at save time.
func (s *SettingsService) UpdateUserApp(ctx context.Context, identity ports.Identity, appID string, changes map[string]string) error {
	userID, err := s.authorize(ctx, identity, appID)
	if err != nil {
		return err
	}

	settings, err := s.repo.LoadUser(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("settings unreadable before save, starting empty")
		settings = domain.UserAppSettings{}
	}

	bag, ok := settings[appID]
	if !ok {
		bag = domain.SettingsBag{}
	}
	bag.Apply(changes)
	settings.SetApp(appID, bag)

	if err := s.repo.ReplaceUser(ctx, userID, settings); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("app_id", appID).Msg("failed to save user settings")
		return err
	}

	s.logger.Info().Str("user_id", userID).Str("app_id", appID).Msg("user settings saved")
	return nil
}

// DeleteUserApp removes the (user, app) entry entirely.
func (s *SettingsService) DeleteUserApp(ctx context.Context, identity ports.Identity, appID string) error {
	userID, err := s.authorize(ctx, identity, appID)
	if err != nil {
		return err
	}

	settings, err := s.repo.LoadUser(ctx, userID)
	if err != nil {
		return err
	}
	if _, ok := settings[appID]; !ok {
		return domain.ErrSettingsNotFound
	}
	delete(settings, appID)

	if err := s.repo.ReplaceUser(ctx, userID, settings); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("app_id", appID).Msg("failed to delete user settings")
		return err
	}

	s.logger.Info().Str("user_id", userID).Str("app_id", appID).Msg("user settings deleted")
	return nil
}
