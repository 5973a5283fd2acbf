package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/api/rest/middleware"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/repository"
	"github.com/allinwom/storefront/internal/services"
	"github.com/allinwom/storefront/pkg/utils"
)

type ProductHandler struct {
	svc services.CatalogService
}

func NewProductHandler(svc services.CatalogService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func listFilter(c *fiber.Ctx, storeID uint) repository.ProductFilter {
	return repository.ProductFilter{
		StoreID:      storeID,
		CategoryID:   uint(c.QueryInt("category", 0)),
		FeaturedOnly: c.QueryBool("featured", false),
	}
}

// GET /api/v1/products/store/:storeId
func (h *ProductHandler) ByStore(c *fiber.Ctx) error {
	storeID, err := c.ParamsInt("storeId")
	if err != nil || storeID <= 0 {
		return apperr.BadRequest("invalid store id")
	}

	out, err := h.svc.ListProducts(
		listFilter(c, uint(storeID)),
		c.QueryInt("page", 1),
		c.QueryInt("limit", services.DefaultPageSize),
	)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// GET /api/v1/products/current
//
// Lists the resolved tenant store's products.
func (h *ProductHandler) CurrentStoreProducts(c *fiber.Ctx) error {
	store, ok := middleware.CurrentStore(c)
	if !ok {
		return apperr.NotFound("no store resolved for this host")
	}

	out, err := h.svc.ListProducts(
		listFilter(c, store.ID),
		c.QueryInt("page", 1),
		c.QueryInt("limit", services.DefaultPageSize),
	)
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"store":      store.StoreName,
		"subdomain":  store.Subdomain,
		"products":   out.Products,
		"pagination": out.Pagination,
	})
}

// GET /api/v1/products/:productId
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return apperr.BadRequest("invalid product id")
	}

	out, err := h.svc.ProductDetail(c.Context(), uint(productID))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}
