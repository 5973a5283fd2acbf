package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

const (
	LocalsUser   = "user"
	LocalsUserID = "userID"
)

type AuthMiddleware struct {
	auth  helper.Auth
	users repository.UserRepository
}

func NewAuthMiddleware(auth helper.Auth, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, users: users}
}

// RequireAuth verifies the bearer token and loads the account. Suspended and
// deactivated accounts are rejected even with a valid token.
func (m *AuthMiddleware) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.auth.VerifyAccessToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		user, err := m.users.FindUserById(claims.UserID)
		if err != nil {
			if helper.IsNotFound(err) {
				return apperr.Unauthorized(apperr.CodeUserNotFound, "user not found")
			}
			return apperr.Internal(err)
		}
		if !user.IsActive() {
			return apperr.Forbidden(apperr.CodeUserSuspended, "account is deactivated")
		}

		c.Locals(LocalsUser, user)
		c.Locals(LocalsUserID, user.ID)
		return c.Next()
	}
}

// OptionalAuth attaches the user when a valid token is present and lets the
// request through either way.
func (m *AuthMiddleware) OptionalAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			return c.Next()
		}
		claims, err := m.auth.VerifyAccessToken(token)
		if err != nil {
			return c.Next()
		}
		if user, err := m.users.FindUserById(claims.UserID); err == nil && user.IsActive() {
			c.Locals(LocalsUser, user)
			c.Locals(LocalsUserID, user.ID)
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated account RequireAuth attached.
func CurrentUser(c *fiber.Ctx) (*domain.User, bool) {
	user, ok := c.Locals(LocalsUser).(*domain.User)
	return user, ok
}

func CurrentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalsUserID).(uint)
	return id
}
