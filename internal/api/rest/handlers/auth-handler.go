package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/api/rest/middleware"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/services"
	"github.com/allinwom/storefront/pkg/utils"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, tokens, err := h.svc.Signup(req)
	if err != nil {
		return err
	}

	return utils.SuccessMessage(c, fiber.StatusCreated, fiber.Map{
		"user":         services.UserToView(user),
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
	}, "account created")
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, tokens, err := h.svc.Login(req)
	if err != nil {
		return err
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"user":         services.UserToView(user),
		"token":        tokens.Token,
		"refreshToken": tokens.RefreshToken,
	})
}

// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	tokens, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, tokens)
}

// GET /api/v1/auth/validate
func (h *AuthHandler) Validate(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return apperr.Unauthorized(apperr.CodeUnauthorized, "authentication required")
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"valid": true, "user": services.UserToView(user)})
}

// POST /api/v1/auth/logout
//
// Tokens are stateless; logout only acknowledges so clients can drop their
// copy.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return utils.SuccessMessage(c, fiber.StatusOK, nil, "logged out")
}

// POST /api/v1/auth/check-email
func (h *AuthHandler) CheckEmail(c *fiber.Ctx) error {
	var req dto.CheckEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	out, err := h.svc.CheckEmail(req.Email)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}
