package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navicula/navicula/internal/api/metrics"
	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

// SettingsHandler manages the caller's per-application settings.
type SettingsHandler struct {
	settings ports.SettingsService
}

func NewSettingsHandler(settings ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type settingsResponse struct {
	AppID    string             `json:"appId"`
	Settings domain.SettingsBag `json:"settings"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Get returns the stored settings bag for one application.
//
// @Summary      Read stored settings for an application
// @Tags         settings
// @Produce      json
// @Param        appId  path      string  true  "Application ID"
// @Success      200    {object}  settingsResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/user-settings/{appId} [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	appID := c.Param("appId")
	if appID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing appId parameter")
	}

	bag, err := h.settings.GetUserApp(c.Request().Context(), identityFrom(c), appID)
	if err != nil {
		metrics.SettingsOperationsTotal.WithLabelValues("get", "error").Inc()
		return err
	}

	metrics.SettingsOperationsTotal.WithLabelValues("get", "ok").Inc()
	return c.JSON(http.StatusOK, settingsResponse{AppID: appID, Settings: bag})
}

// Update applies a key-value bag to one application's settings. Every value
// must be a string; an empty string clears that key.
//
// @Summary      Save settings for an application
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        appId  path      string          true  "Application ID"
// @Param        body   body      map[string]string  true  "Settings keys to set; empty string clears a key"
// @Success      200    {object}  successResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /api/user-settings/{appId} [post]
func (h *SettingsHandler) Update(c echo.Context) error {
	appID := c.Param("appId")
	if appID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing appId parameter")
	}

	var body map[string]any
	if err := c.Bind(&body); err != nil || len(body) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid or missing request body")
	}

	changes := make(map[string]string, len(body))
	for key, value := range body {
		s, ok := value.(string)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("setting %q must be a string", key))
		}
		changes[key] = s
	}

	if err := h.settings.UpdateUserApp(c.Request().Context(), identityFrom(c), appID, changes); err != nil {
		metrics.SettingsOperationsTotal.WithLabelValues("update", "error").Inc()
		return err
	}

	metrics.SettingsOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("Settings for %s saved successfully.", appID),
	})
}

// Delete removes the stored settings bag for one application.
//
// @Summary      Delete stored settings for an application
// @Tags         settings
// @Produce      json
// @Param        appId  path      string  true  "Application ID"
// @Success      200    {object}  successResponse
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Failure      404    {object}  map[string]string
// @Router       /api/user-settings/{appId} [delete]
func (h *SettingsHandler) Delete(c echo.Context) error {
	appID := c.Param("appId")
	if appID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing appId parameter")
	}

	if err := h.settings.DeleteUserApp(c.Request().Context(), identityFrom(c), appID); err != nil {
		metrics.SettingsOperationsTotal.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.SettingsOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.JSON(http.StatusOK, successResponse{
		Success: true,
		Message: fmt.Sprintf("Settings for %s removed.", appID),
	})
}
