package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navicula/navicula/internal/api/metrics"
	"github.com/navicula/navicula/internal/core/domain"
	"github.com/navicula/navicula/internal/core/ports"
)

// ConfigHandler serves the user-specific launcher payload.
type ConfigHandler struct {
	navigation ports.NavigationService
}

func NewConfigHandler(navigation ports.NavigationService) *ConfigHandler {
	return &ConfigHandler{navigation: navigation}
}

// navigationErrorResponse mirrors the success shape with every field
// defaulted plus an error marker, so the client can always render a safe,
// empty launcher instead of a partial tree.
type navigationErrorResponse struct {
	Error               string                  `json:"error"`
	UserID              string                  `json:"userId"`
	RoleName            string                  `json:"role"`
	NavigationItems     []domain.NavigationItem `json:"navigationItems"`
	DefaultToolbarColor string                  `json:"defaultToolbarColor"`
	Keybindings         map[string]string       `json:"keybindings"`
}

// GetConfig resolves the caller's navigation tree.
//
// @Summary      Resolve the caller's launcher configuration
// @Tags         config
// @Produce      json
// @Success      200  {object}  ports.NavigationResult
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      500  {object}  navigationErrorResponse
// @Router       /api/config [get]
func (h *ConfigHandler) GetConfig(c echo.Context) error {
	result, err := h.navigation.Resolve(c.Request().Context(), identityFrom(c))
	if err != nil {
		metrics.NavigationRequestsTotal.WithLabelValues("error").Inc()

		// Configuration failures render the safe empty payload; identity
		// errors go through the regular error envelope.
		switch {
		case errors.Is(err, domain.ErrConfigUnavailable):
			return c.JSON(http.StatusInternalServerError, emptyNavigationPayload("failed to load server configuration"))
		case errors.Is(err, domain.ErrRoleDefinitionMissing):
			return c.JSON(http.StatusInternalServerError, emptyNavigationPayload("server configuration error: role definition missing"))
		}
		return err
	}

	metrics.NavigationRequestsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, result)
}

func emptyNavigationPayload(msg string) navigationErrorResponse {
	return navigationErrorResponse{
		Error:               msg,
		RoleName:            domain.DefaultRoleName,
		NavigationItems:     []domain.NavigationItem{},
		DefaultToolbarColor: domain.DefaultToolbarColor,
		Keybindings:         map[string]string{},
	}
}
