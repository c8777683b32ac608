package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func runIdentity(t *testing.T, headers map[string]string) string {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured string
	handler := Identity()(func(c echo.Context) error {
		captured, _ = c.Get(ContextKeyRemoteUser).(string)
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	return captured
}

func TestIdentity_CapturesRemoteUser(t *testing.T) {
	got := runIdentity(t, map[string]string{HeaderRemoteUser: "Alice@Example.com"})
	if got != "alice@example.com" {
		t.Fatalf("expected case-folded identity, got %q", got)
	}
}

func TestIdentity_FallsBackToForwardedUser(t *testing.T) {
	got := runIdentity(t, map[string]string{HeaderForwardedUser: " bob@example.com "})
	if got != "bob@example.com" {
		t.Fatalf("expected trimmed forwarded identity, got %q", got)
	}
}

func TestIdentity_RemoteUserWins(t *testing.T) {
	got := runIdentity(t, map[string]string{
		HeaderRemoteUser:    "alice@example.com",
		HeaderForwardedUser: "bob@example.com",
	})
	if got != "alice@example.com" {
		t.Fatalf("expected Remote-User to take precedence, got %q", got)
	}
}

func TestIdentity_NoHeaders(t *testing.T) {
	if got := runIdentity(t, nil); got != "" {
		t.Fatalf("expected empty identity, got %q", got)
	}
}
