package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/services"
	"github.com/allinwom/storefront/pkg/utils"
)

type CategoryHandler struct {
	svc services.CatalogService
}

func NewCategoryHandler(svc services.CatalogService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// GET /api/v1/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.CategoriesWithProductCount()
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"categories": out})
}

// GET /api/v1/categories/:categoryId
func (h *CategoryHandler) Detail(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil || categoryID <= 0 {
		return apperr.BadRequest("invalid category id")
	}

	out, err := h.svc.CategoryDetail(uint(categoryID))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// GET /api/v1/categories/:categoryId/products
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("categoryId")
	if err != nil || categoryID <= 0 {
		return apperr.BadRequest("invalid category id")
	}

	out, err := h.svc.CategoryProducts(
		uint(categoryID),
		c.QueryInt("page", 1),
		c.QueryInt("limit", services.DefaultPageSize),
	)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}
