package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

type stubProvider struct {
	count int
	err   error
	calls int
}

func (p *stubProvider) FetchCount(_ context.Context, _ domain.AppLink, _ domain.SettingsBag) (int, error) {
	p.calls++
	return p.count, p.err
}

type stubCountCache struct {
	counts map[string]int
	sets   int
}

func newStubCountCache() *stubCountCache {
	return &stubCountCache{counts: map[string]int{}}
}

func (c *stubCountCache) Get(_ context.Context, userID, appID string) (int, bool, error) {
	count, ok := c.counts[userID+"/"+appID]
	return count, ok, nil
}

func (c *stubCountCache) Set(_ context.Context, userID, appID string, count int) error {
	c.counts[userID+"/"+appID] = count
	c.sets++
	return nil
}

func notifyConfig() *domain.Config {
	return &domain.Config{
		Roles: map[string]domain.Role{
			"Guest": {Permissions: []string{"tasks", "plain"}},
		},
		Users: map[string]domain.UserAssignment{},
		NavigationItems: []domain.NavigationItem{
			{AppLink: &domain.AppLink{ID: "tasks", Title: "Tasks", URL: "https://tasks.example.com", IntegrationType: "vikunja"}},
			{AppLink: &domain.AppLink{ID: "plain", Title: "Plain", URL: "https://plain.example.com"}},
			{AppLink: &domain.AppLink{ID: "hidden", Title: "Hidden", URL: "https://hidden.example.com", IntegrationType: "vikunja"}},
		},
		UseRemoteAuth: true,
	}
}

func notificationServiceUnderTest(repo ports.SettingsRepository, cache ports.CountCache) *NotificationService {
	return NewNotificationService(&stubConfigStore{cfg: notifyConfig()}, repo, cache, time.Second, zerolog.Nop())
}

func seededRepo(t *testing.T) *memSettingsRepo {
	t.Helper()
	repo := newMemSettingsRepo()
	repo.users["guest@example.com"] = domain.UserAppSettings{
		"tasks": {domain.CredentialKey: "tok"},
	}
	return repo
}

func TestNotificationService_SuccessfulFetch(t *testing.T) {
	provider := &stubProvider{count: 4}
	svc := notificationServiceUnderTest(seededRepo(t), nil)
	svc.Register("vikunja", provider)

	result, err := svc.CountForApp(context.Background(), ports.Identity{RemoteUser: "guest@example.com"}, "tasks")
	if err != nil {
		t.Fatalf("CountForApp returned error: %v", err)
	}
	if result.Count == nil || *result.Count != 4 {
		t.Fatalf("expected count 4, got %+v", result)
	}
	if result.ErrorTag != "" {
		t.Fatalf("expected no error tag, got %q", result.ErrorTag)
	}
}

func TestNotificationService_NoIntegrationTypeSkipsProvider(t *testing.T) {
	provider := &stubProvider{count: 9}
	svc := notificationServiceUnderTest(seededRepo(t), nil)
	svc.Register("vikunja", provider)

	result, err := svc.CountForApp(context.Background(), ports.Identity{RemoteUser: "guest@example.com"}, "plain")
	if err != nil {
		t.Fatalf("CountForApp returned error: %v", err)
	}
	if result.Count != nil || result.ErrorTag != "" {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if provider.calls != 0 {
		t.Fatalf("provider must not be called for apps without an integration")
	}
}

func TestNotificationService_UnregisteredType(t *testing.T) {
	svc := notificationServiceUnderTest(seededRepo(t), nil)

	result, err := svc.CountForApp(context.Background(), ports.Identity{RemoteUser: "guest@example.com"}, "tasks")
	if err != nil {
		t.Fatalf("CountForApp returned error: %v", err)
	}
	if result.Count != nil || result.ErrorTag != "" {
		t.Fatalf("expected empty result for unregistered type, got %+v", result)
	}
}

func TestNotificationService_ForbiddenApp(t *testing.T) {
	svc := notificationServiceUnderTest(seededRepo(t), nil)
	svc.Register("vikunja", &stubProvider{})

	_, err := svc.CountForApp(context.Background(), ports.Identity{RemoteUser: "guest@example.com"}, "hidden")
	if !errors.Is(err, domain.ErrAppForbidden) {
		t.Fatalf("expected ErrAppForbidden, got %v", err)
	}
}

func TestNotificationService_DegradesProviderErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		tag  string
	}{
		{"missing credential", domain.ErrCredentialMissing, ""},
		{"unauthorized", domain.ErrProviderUnauthorized, ports.TagUnauthorized},
		{"timeout", domain.ErrProviderTimeout, ports.TagTimeout},
		{"deadline exceeded", context.DeadlineExceeded, ports.TagTimeout},
		{"network failure", errors.New("connection refused"), ports.TagFetchFailed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := notificationServiceUnderTest(seededRepo(t), nil)
			svc.Register("vikunja", &stubProvider{err: tc.err})

			result, err := svc.CountForApp(context.Background(), ports.Identity{RemoteUser: "guest@example.com"}, "tasks")
			if err != nil {
				t.Fatalf("provider errors must not fail the request, got %v", err)
			}
			if result.Count != nil {
				t.Fatalf("expected null count, got %d", *result.Count)
			}
			if result.ErrorTag != tc.tag {
				t.Fatalf("expected tag %q, got %q", tc.tag, result.ErrorTag)
			}
		})
	}
}

func TestNotificationService_CachesSuccessfulCounts(t *testing.T) {
	provider := &stubProvider{count: 2}
	cache := newStubCountCache()
	svc := notificationServiceUnderTest(seededRepo(t), cache)
	svc.Register("vikunja", provider)

	identity := ports.Identity{RemoteUser: "guest@example.com"}
	if _, err := svc.CountForApp(context.Background(), identity, "tasks"); err != nil {
		t.Fatalf("first fetch failed: %v", err)
	}
	result, err := svc.CountForApp(context.Background(), identity, "tasks")
	if err != nil {
		t.Fatalf("second fetch failed: %v", err)
	}

	if provider.calls != 1 {
		t.Fatalf("expected one provider call, got %d", provider.calls)
	}
	if result.Count == nil || *result.Count != 2 {
		t.Fatalf("expected cached count 2, got %+v", result)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
}
