package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/navicula/navicula/internal/api/metrics"
	"github.com/navicula/navicula/internal/core/ports"
)

// NotificationHandler serves unread-notification counts for a single app.
type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// GetCount returns the unread count for one application. Provider failures
// degrade to {"count": null} plus an advisory error tag; they are never a
// request failure.
//
// @Summary      Unread notification count for an application
// @Tags         notifications
// @Produce      json
// @Param        appId  path      string  true  "Application ID"
// @Success      200    {object}  ports.NotificationResult
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/notifications/{appId} [get]
func (h *NotificationHandler) GetCount(c echo.Context) error {
	appID := c.Param("appId")
	if appID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing appId parameter")
	}

	start := time.Now()
	result, err := h.notifications.CountForApp(c.Request().Context(), identityFrom(c), appID)
	metrics.NotificationFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationFetchesTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.NotificationFetchesTotal.WithLabelValues(fetchResultLabel(result)).Inc()
	return c.JSON(http.StatusOK, result)
}

func fetchResultLabel(result ports.NotificationResult) string {
	switch {
	case result.ErrorTag != "":
		return result.ErrorTag
	case result.Count != nil:
		return "ok"
	}
	return "none"
}
