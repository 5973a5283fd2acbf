package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/api/rest/middleware"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/services"
	"github.com/allinwom/storefront/pkg/utils"
)

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// GET /api/v1/users/me
func (h *UserHandler) Me(c *fiber.Ctx) error {
	out, err := h.svc.Me(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// GET /api/v1/users/me/store-url
func (h *UserHandler) StoreURL(c *fiber.Ctx) error {
	out, err := h.svc.StoreURL(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	user, err := h.svc.UpdateProfile(middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return utils.SuccessMessage(c, fiber.StatusOK, fiber.Map{"user": services.UserToView(user)}, "profile updated")
}

// PUT /api/v1/users/me/password
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	if err := h.svc.ChangePassword(middleware.CurrentUserID(c), req); err != nil {
		return err
	}
	return utils.SuccessMessage(c, fiber.StatusOK, nil, "password changed")
}

// DELETE /api/v1/users/me
func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	if err := h.svc.DeleteAccount(middleware.CurrentUserID(c)); err != nil {
		return err
	}
	return utils.SuccessMessage(c, fiber.StatusOK, nil, "account deleted")
}
