package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const browserSessionLocal = "browser_session_id"

// BrowserCookieName identifies the anonymous browser session.
const BrowserCookieName = "notify_admin_browser"

// Middleware assigns every caller a browser session identifier, creating the
// cookie on first contact. The identifier keys the per-session message store.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(BrowserCookieName)
		if id == "" {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     BrowserCookieName,
				Value:    id,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
				Expires:  time.Now().Add(24 * time.Hour),
			})
		}
		c.Locals(browserSessionLocal, id)
		return c.Next()
	}
}

// IDFromContext returns the browser session identifier for the request.
func IDFromContext(c *fiber.Ctx) string {
	if id, ok := c.Locals(browserSessionLocal).(string); ok {
		return id
	}
	return ""
}
