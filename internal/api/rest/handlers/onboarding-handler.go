package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/api/rest/middleware"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/services"
	"github.com/allinwom/storefront/pkg/utils"
)

type OnboardingHandler struct {
	svc services.OnboardingService
}

func NewOnboardingHandler(svc services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{svc: svc}
}

// POST /api/v1/onboarding/complete
//
// The unified wizard submit: brand + store + publish in one call.
func (h *OnboardingHandler) Complete(c *fiber.Ctx) error {
	var req dto.CompleteOnboardingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	brand, store, err := h.svc.CompleteOnboarding(middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}

	return utils.SuccessMessage(c, fiber.StatusOK, fiber.Map{
		"brand": services.BrandToView(brand),
		"store": services.StoreToView(store),
	}, "onboarding completed")
}

// GET /api/v1/onboarding/status
func (h *OnboardingHandler) Status(c *fiber.Ctx) error {
	out, err := h.svc.Status(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return utils.Success(c, fiber.StatusOK, out)
}

// POST /api/v1/onboarding/brand
func (h *OnboardingHandler) CreateBrand(c *fiber.Ctx) error {
	var req dto.CreateBrandRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	brand, err := h.svc.CreateBrand(middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return utils.SuccessMessage(c, fiber.StatusCreated,
		fiber.Map{"brand": services.BrandToView(brand)}, "brand created")
}

// POST /api/v1/onboarding/store
func (h *OnboardingHandler) CreateStore(c *fiber.Ctx) error {
	var req dto.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}

	store, err := h.svc.CreateStore(middleware.CurrentUserID(c), req)
	if err != nil {
		return err
	}
	return utils.SuccessMessage(c, fiber.StatusCreated,
		fiber.Map{"store": services.StoreToView(store)}, "store created")
}

// POST /api/v1/onboarding/publish
func (h *OnboardingHandler) Publish(c *fiber.Ctx) error {
	store, err := h.svc.PublishStore(middleware.CurrentUserID(c))
	if err != nil {
		return err
	}
	return utils.SuccessMessage(c, fiber.StatusOK,
		fiber.Map{"store": services.StoreToView(store)}, "store published")
}
