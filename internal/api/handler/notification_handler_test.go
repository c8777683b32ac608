package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/navicula/navicula/internal/api/middleware"
	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

type stubNotificationService struct {
	result ports.NotificationResult
	err    error
}

func (s *stubNotificationService) CountForApp(_ context.Context, _ ports.Identity, _ string) (ports.NotificationResult, error) {
	return s.result, s.err
}

func notificationContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/notifications/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("appId")
	c.SetParamValues("tasks")
	c.Set(middleware.ContextKeyRemoteUser, "alice@example.com")
	return c, rec
}

func TestNotificationHandler_GetCount(t *testing.T) {
	count := 7
	h := NewNotificationHandler(&stubNotificationService{result: ports.NotificationResult{Count: &count}})

	c, rec := notificationContext(t)
	if err := h.GetCount(c); err != nil {
		t.Fatalf("GetCount returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["count"] != float64(7) {
		t.Fatalf("expected count 7, got %v", body["count"])
	}
	if _, ok := body["error"]; ok {
		t.Fatalf("error tag must be omitted on success: %s", rec.Body.String())
	}
}

func TestNotificationHandler_DegradedResultKeepsNullCount(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{result: ports.NotificationResult{ErrorTag: ports.TagTimeout}})

	c, rec := notificationContext(t)
	if err := h.GetCount(c); err != nil {
		t.Fatalf("GetCount returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("degraded fetches are still 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["count"] != nil {
		t.Fatalf("expected null count, got %v", body["count"])
	}
	if body["error"] != ports.TagTimeout {
		t.Fatalf("expected timeout tag, got %v", body["error"])
	}
}

func TestNotificationHandler_ForbiddenPropagates(t *testing.T) {
	h := NewNotificationHandler(&stubNotificationService{err: domain.ErrAppForbidden})

	c, _ := notificationContext(t)
	if err := h.GetCount(c); err != domain.ErrAppForbidden {
		t.Fatalf("expected ErrAppForbidden, got %v", err)
	}
}

func TestFetchResultLabel(t *testing.T) {
	count := 1
	cases := []struct {
		name   string
		result ports.NotificationResult
		want   string
	}{
		{"count present", ports.NotificationResult{Count: &count}, "ok"},
		{"tagged", ports.NotificationResult{ErrorTag: ports.TagUnauthorized}, ports.TagUnauthorized},
		{"empty", ports.NotificationResult{}, "none"},
	}
	for _, tc := range cases {
		if got := fetchResultLabel(tc.result); got != tc.want {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}
