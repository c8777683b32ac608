package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// Trusted identity headers injected by the authenticating reverse proxy.
// Remote-User wins when both are present.
const (
	HeaderRemoteUser    = "Remote-User"
	HeaderForwardedUser = "X-Forwarded-User"
)

// ContextKeyRemoteUser is the echo context key holding the case-folded
// identity header value (empty when no header was sent).
const ContextKeyRemoteUser = "remote_user"

// Identity captures the proxy identity signal into the request context.
// Resolution against the launcher config (and whether the signal is used at
// all) happens in the services; nothing is authenticated here.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v := c.Request().Header.Get(HeaderRemoteUser)
			if v == "" {
				v = c.Request().Header.Get(HeaderForwardedUser)
			}
			c.Set(ContextKeyRemoteUser, strings.ToLower(strings.TrimSpace(v)))
			return next(c)
		}
	}
}
