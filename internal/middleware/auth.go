package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/greenloop/ewastedb/internal/config"
	"github.com/greenloop/ewastedb/internal/services"
	"github.com/greenloop/ewastedb/internal/utils"
)

// SessionCookie is the cookie set by the hosted Authorizer instance.
const SessionCookie = "cookie_session"

// AuthUser validates the request session against Authorizer and stores the
// user id in the request context. Every per-user route sits behind this; an
// invalid or missing session short-circuits with 401 before any handler runs.
func AuthUser(cfg *config.Config, cache *services.SessionCache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Lazy init so the service can boot before Authorizer is reachable
		if !services.IsAuthorizerInitialized() {
			if err := services.InitAuthorizer(cfg, c.Protocol(), c.Hostname()); err != nil {
				return utils.ErrorResponse(c, "Authorization service unavailable",
					fiber.StatusServiceUnavailable, "auth.init")
			}
		}

		cookie := c.Cookies(SessionCookie)
		if cookie == "" {
			// SPA fallback when third-party cookies are blocked
			if h := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(h, "Bearer ") {
				cookie = strings.TrimPrefix(h, "Bearer ")
			}
		}

		userID, err := services.ValidateSession(c.UserContext(), cache, cookie)
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}
