package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/navicula/navicula/internal/api/middleware"
	"github.com/navicula/navicula/internal/core/ports"
)

// identityFrom rebuilds the identity signal captured by the Identity
// middleware. An empty RemoteUser means no trusted header was sent.
func identityFrom(c echo.Context) ports.Identity {
	remoteUser, _ := c.Get(middleware.ContextKeyRemoteUser).(string)
	return ports.Identity{RemoteUser: remoteUser}
}
