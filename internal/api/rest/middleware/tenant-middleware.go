package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

// Locals keys shared between middleware and handlers.
const (
	LocalsSubdomain = "subdomain"
	LocalsStore     = "store"
	LocalsBrand     = "brand"
)

// TenantMiddleware resolves which store a request targets, either from the
// ?store= query override or from the host's first label.
type TenantMiddleware struct {
	stores repository.StoreRepository
	dev    bool
}

func NewTenantMiddleware(stores repository.StoreRepository, dev bool) *TenantMiddleware {
	return &TenantMiddleware{stores: stores, dev: dev}
}

// ExtractSubdomain derives the candidate subdomain from a host header.
// Returns "" when the host names no tenant.
func ExtractSubdomain(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	if h, _, found := strings.Cut(host, ":"); found {
		host = h
	}
	if host == "" {
		return ""
	}

	parts := strings.Split(host, ".")

	// wildcard development hosts: sub.localhost resolves without DNS
	if strings.HasSuffix(host, ".localhost") {
		return parts[0]
	}

	// any multi-label host names a tenant by its first label; www and
	// digit-leading labels (bare IPs) carry no tenant
	first := parts[0]
	if len(parts) > 1 && first != "" && first != "www" && first != "localhost" &&
		!(first[0] >= '0' && first[0] <= '9') {
		return first
	}
	return ""
}

// ParseSubdomain records the candidate subdomain without touching the
// datastore. The ?store= query parameter wins over host parsing so
// same-origin development setups work without DNS.
func (m *TenantMiddleware) ParseSubdomain() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if q := c.Query("store"); q != "" {
			c.Locals(LocalsSubdomain, strings.ToLower(q))
			return c.Next()
		}
		if sub := ExtractSubdomain(c.Hostname()); sub != "" {
			c.Locals(LocalsSubdomain, sub)
		}
		return c.Next()
	}
}

// LoadStore resolves the candidate subdomain to an active, published store
// and counts the visit. Requests without a candidate pass through
// untenanted; downstream handlers decide whether that is an error.
func (m *TenantMiddleware) LoadStore() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sub, _ := c.Locals(LocalsSubdomain).(string)
		if sub == "" {
			return c.Next()
		}

		store, err := m.stores.FindPublishedBySubdomain(sub)
		if err != nil {
			if !helper.IsNotFound(err) {
				return apperr.Internal(err)
			}
			return m.storeNotFound(sub)
		}

		// approximate counter; concurrent visits may race
		if err := m.stores.IncrementVisitorCount(store.ID); err != nil {
			return apperr.Internal(err)
		}

		c.Locals(LocalsStore, store)
		c.Locals(LocalsBrand, &store.Brand)
		return c.Next()
	}
}

// storeNotFound keeps the production response indistinguishable for
// unpublished, deactivated and missing stores; the distinction is only
// disclosed on development builds.
func (m *TenantMiddleware) storeNotFound(sub string) error {
	details := fiber.Map{"subdomain": sub}

	if m.dev {
		if existing, err := m.stores.FindBySubdomain(sub); err == nil {
			if !existing.IsPublished {
				return apperr.NotFound("store is not published yet").WithDetails(details)
			}
			if existing.Status != domain.StatusActive {
				return apperr.NotFound("store is deactivated").WithDetails(details)
			}
		}
	}
	return apperr.NotFound("store not found").WithDetails(details)
}

// CurrentStore returns the tenant store LoadStore attached, if any.
func CurrentStore(c *fiber.Ctx) (*domain.Store, bool) {
	store, ok := c.Locals(LocalsStore).(*domain.Store)
	return store, ok
}

func CurrentBrand(c *fiber.Ctx) (*domain.Brand, bool) {
	brand, ok := c.Locals(LocalsBrand).(*domain.Brand)
	return brand, ok
}
