package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/api/rest/middleware"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/services"
	"github.com/allinwom/storefront/pkg/utils"
)

type StoreHandler struct {
	svc services.StoreService
}

func NewStoreHandler(svc services.StoreService) *StoreHandler {
	return &StoreHandler{svc: svc}
}

// GET /api/v1/store/my
func (h *StoreHandler) MyStore(c *fiber.Ctx) error {
	out, err := h.svc.MyStore(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// GET /api/v1/store/current
//
// Resolved by the tenant middleware from the host or ?store= query.
func (h *StoreHandler) CurrentStore(c *fiber.Ctx) error {
	store, ok := middleware.CurrentStore(c)
	if !ok {
		return apperr.NotFound("no store resolved for this host")
	}
	return utils.Success(c, fiber.StatusOK, dto.StoreWithBrand{
		Store: services.StoreToView(store),
		Brand: services.BrandToView(&store.Brand),
	})
}

// GET /api/v1/store/by-subdomain/:subdomain
func (h *StoreHandler) BySubdomain(c *fiber.Ctx) error {
	out, err := h.svc.StoreBySubdomain(c.Params("subdomain"))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// GET /api/v1/store/public
func (h *StoreHandler) PublicStores(c *fiber.Ctx) error {
	out, err := h.svc.PublicStores()
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"stores": out})
}

// GET /api/v1/store/by-template/:templateType
func (h *StoreHandler) ByTemplate(c *fiber.Ctx) error {
	out, err := h.svc.StoresByTemplate(c.Params("templateType"))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"stores": out})
}
