package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

const defaultFetchTimeout = 5 * time.Second

// NotificationService dispatches unread-count lookups to the provider
// registered for an app's integration type. Provider failures degrade to a
// null count plus an advisory error tag; they never fail the request.
type NotificationService struct {
	configs   ports.ConfigStore
	repo      ports.SettingsRepository
	providers map[string]ports.NotificationProvider
	cache     ports.CountCache
	timeout   time.Duration
	log       zerolog.Logger
}

// NewNotificationService returns a NotificationService with an empty
// provider registry. cache may be nil to disable count caching. A
// non-positive timeout falls back to 5 seconds.
func NewNotificationService(
	configs ports.ConfigStore,
	repo ports.SettingsRepository,
	cache ports.CountCache,
	timeout time.Duration,
	log zerolog.Logger,
) *NotificationService {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &NotificationService{
		configs:   configs,
		repo:      repo,
		providers: make(map[string]ports.NotificationProvider),
		cache:     cache,
		timeout:   timeout,
		log:       log,
	}
}

// Register binds an integration type to a provider. Supporting a new
// provider is a registration here, never a branch in the dispatch path.
func (s *NotificationService) Register(integrationType string, provider ports.NotificationProvider) {
	s.providers[integrationType] = provider
}

// CountForApp resolves the caller, locates the app, and asks the matching
// provider for an unread count under a hard deadline.
func (s *NotificationService) CountForApp(ctx context.Context, identity ports.Identity, appID string) (ports.NotificationResult, error) {
	cfg, err := s.configs.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load launcher config")
		return ports.NotificationResult{}, domain.ErrConfigUnavailable
	}

	userID, _, err := resolveIdentity(identity, cfg)
	if err != nil {
		return ports.NotificationResult{}, err
	}

	app, ok := domain.FindAppLink(cfg.NavigationItems, appID)
	if !ok || app.IntegrationType == "" {
		// Unknown app, or one that declares no integration: nothing to fetch.
		return ports.NotificationResult{}, nil
	}

	_, role, err := cfg.RoleFor(userID)
	if err != nil {
		return ports.NotificationResult{}, err
	}
	if !domain.NewPermissionSet(role.Permissions).Allows(appID) {
		return ports.NotificationResult{}, domain.ErrAppForbidden
	}

	provider, ok := s.providers[app.IntegrationType]
	if !ok {
		s.log.Info().Str("app_id", appID).Str("type", app.IntegrationType).Msg("no provider registered for integration type")
		return ports.NotificationResult{}, nil
	}

	settings, err := s.repo.LoadUser(ctx, userID)
	if err != nil {
		return ports.NotificationResult{}, err
	}

	if s.cache != nil {
		if count, hit, err := s.cache.Get(ctx, userID, appID); err != nil {
			s.log.Warn().Err(err).Msg("count cache read failed")
		} else if hit {
			return ports.NotificationResult{Count: &count}, nil
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := provider.FetchCount(fetchCtx, app, settings[appID])
	if err != nil {
		return s.degrade(appID, app.IntegrationType, userID, err), nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, appID, count); err != nil {
			s.log.Warn().Err(err).Msg("count cache write failed")
		}
	}

	return ports.NotificationResult{Count: &count}, nil
}

// degrade maps a provider error to its advisory tag.
func (s *NotificationService) degrade(appID, integrationType, userID string, err error) ports.NotificationResult {
	switch {
	case errors.Is(err, domain.ErrCredentialMissing):
		s.log.Info().Str("app_id", appID).Str("user_id", userID).Msg("no credential configured, skipping fetch")
		return ports.NotificationResult{}
	case errors.Is(err, domain.ErrProviderUnauthorized):
		s.log.Warn().Str("app_id", appID).Str("type", integrationType).Msg("provider rejected credential")
		return ports.NotificationResult{ErrorTag: ports.TagUnauthorized}
	case errors.Is(err, domain.ErrProviderTimeout), errors.Is(err, context.DeadlineExceeded):
		s.log.Warn().Str("app_id", appID).Str("type", integrationType).Msg("provider fetch timed out")
		return ports.NotificationResult{ErrorTag: ports.TagTimeout}
	default:
		s.log.Error().Err(err).Str("app_id", appID).Str("type", integrationType).Msg("provider fetch failed")
		return ports.NotificationResult{ErrorTag: ports.TagFetchFailed}
	}
}
