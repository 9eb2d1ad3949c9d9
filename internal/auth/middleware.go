package auth

import (
	"github.com/gofiber/fiber/v2"
)

const principalKey = "auth_principal"

// Principal represents an authenticated caller.
type Principal struct {
	UserID string
	Name   string
	Email  string
}

// Middleware loads the caller's identity from the session cookie when one is
// present. The support pages work for anonymous callers too, so a missing or
// invalid cookie is not an error; the request simply proceeds unauthenticated.
type Middleware struct {
	tokens     *TokenManager
	cookieName string
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, cookieName string) *Middleware {
	return &Middleware{tokens: tokens, cookieName: cookieName}
}

// Handle attaches the principal to the request context when the session
// cookie validates.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	cookie := c.Cookies(m.cookieName)
	if cookie == "" {
		return c.Next()
	}

	claims, err := m.tokens.ParseToken(cookie)
	if err != nil {
		return c.Next()
	}

	c.Locals(principalKey, &Principal{
		UserID: claims.UserID,
		Name:   claims.Name,
		Email:  claims.Email,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
