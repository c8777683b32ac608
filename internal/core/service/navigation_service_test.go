package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

type stubConfigStore struct {
	cfg *domain.Config
	err error
}

func (s *stubConfigStore) Load(_ context.Context) (*domain.Config, error) {
	return s.cfg, s.err
}

func guestConfig() *domain.Config {
	return &domain.Config{
		Roles: map[string]domain.Role{
			"Admin": {Permissions: []string{domain.WildcardPermission}},
			"Guest": {Permissions: []string{"mail"}},
		},
		Users: map[string]domain.UserAssignment{
			"alice@example.com": {Role: "Admin"},
			"guest@example.com": {Role: "Guest"},
		},
		NavigationItems: []domain.NavigationItem{
			{AppLink: &domain.AppLink{ID: "mail", Title: "Mail", URL: "https://mail.example.com"}},
			{AppLink: &domain.AppLink{ID: "calendar", Title: "Calendar", URL: "https://cal.example.com"}},
		},
		DefaultToolbarColor: "indigo",
		UseRemoteAuth:       true,
	}
}

func TestNavigationService_Resolve_FiltersByRole(t *testing.T) {
	svc := NewNavigationService(&stubConfigStore{cfg: guestConfig()}, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), ports.Identity{RemoteUser: "guest@example.com"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.RoleName != "Guest" {
		t.Fatalf("expected Guest, got %s", result.RoleName)
	}
	if len(result.NavigationItems) != 1 || result.NavigationItems[0].ID() != "mail" {
		t.Fatalf("expected exactly [mail], got %+v", result.NavigationItems)
	}
	if result.DefaultToolbarColor != "indigo" {
		t.Fatalf("expected configured toolbar color, got %s", result.DefaultToolbarColor)
	}
	if result.Keybindings == nil {
		t.Fatalf("keybindings must never be nil")
	}
}

func TestNavigationService_Resolve_WildcardSeesEverything(t *testing.T) {
	svc := NewNavigationService(&stubConfigStore{cfg: guestConfig()}, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), ports.Identity{RemoteUser: "ALICE@example.com"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.UserID != "alice@example.com" {
		t.Fatalf("expected case-folded user id, got %s", result.UserID)
	}
	if len(result.NavigationItems) != 2 {
		t.Fatalf("expected full tree, got %d items", len(result.NavigationItems))
	}
}

func TestNavigationService_Resolve_MissingIdentity(t *testing.T) {
	svc := NewNavigationService(&stubConfigStore{cfg: guestConfig()}, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), ports.Identity{}); !errors.Is(err, domain.ErrIdentityRequired) {
		t.Fatalf("expected ErrIdentityRequired, got %v", err)
	}
}

func TestNavigationService_Resolve_LocalMode(t *testing.T) {
	cfg := guestConfig()
	cfg.UseRemoteAuth = false
	cfg.Users[domain.LocalUserID] = domain.UserAssignment{Role: "Admin"}
	svc := NewNavigationService(&stubConfigStore{cfg: cfg}, zerolog.Nop())

	result, err := svc.Resolve(context.Background(), ports.Identity{})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if result.UserID != domain.LocalUserID {
		t.Fatalf("expected local user, got %s", result.UserID)
	}
}

func TestNavigationService_Resolve_LocalModeWithoutDefaultUser(t *testing.T) {
	cfg := guestConfig()
	cfg.UseRemoteAuth = false
	svc := NewNavigationService(&stubConfigStore{cfg: cfg}, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), ports.Identity{}); !errors.Is(err, domain.ErrDefaultUserMissing) {
		t.Fatalf("expected ErrDefaultUserMissing, got %v", err)
	}
}

func TestNavigationService_Resolve_ConfigLoadFailure(t *testing.T) {
	svc := NewNavigationService(&stubConfigStore{err: errors.New("boom")}, zerolog.Nop())

	if _, err := svc.Resolve(context.Background(), ports.Identity{RemoteUser: "a@b.c"}); !errors.Is(err, domain.ErrConfigUnavailable) {
		t.Fatalf("expected ErrConfigUnavailable, got %v", err)
	}
}
