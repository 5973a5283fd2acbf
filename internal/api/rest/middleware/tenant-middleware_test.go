package middleware

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/repository"
	"github.com/allinwom/storefront/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Brand{},
		&domain.Store{},
	))
	return db
}

func seedPublishedStore(t *testing.T, db *gorm.DB, subdomain string, published bool) *domain.Store {
	t.Helper()

	user := &domain.User{
		Email:     subdomain + "@example.com",
		Name:      "Owner",
		LoginType: domain.LoginTypeEmail,
		Status:    domain.StatusActive,
		Language:  "ko",
		Timezone:  "Asia/Seoul",
	}
	require.NoError(t, db.Create(user).Error)

	brand := &domain.Brand{
		UserID:    user.ID,
		BrandName: subdomain + " brand",
		Category:  "general",
		Status:    domain.StatusActive,
	}
	require.NoError(t, db.Create(brand).Error)

	store := &domain.Store{
		BrandID:       brand.ID,
		UserID:        user.ID,
		StoreName:     subdomain + " store",
		Subdomain:     subdomain,
		TemplateType:  "Cozy",
		TemplateColor: "#fff",
		Status:        domain.StatusActive,
		IsPublished:   published,
	}
	require.NoError(t, db.Create(store).Error)
	return store
}

// tenantApp wires the middleware in front of a probe route that reports what
// got resolved.
func tenantApp(db *gorm.DB, dev bool) *fiber.App {
	tm := NewTenantMiddleware(repository.NewStoreRepository(db), dev)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return utils.Fail(c, err, dev)
		},
	})
	app.Use(tm.ParseSubdomain())
	app.Get("/probe", tm.LoadStore(), func(c *fiber.Ctx) error {
		out := fiber.Map{}
		if store, ok := CurrentStore(c); ok {
			out["subdomain"] = store.Subdomain
			out["brand"] = store.Brand.BrandName
		}
		return c.JSON(out)
	})
	return app
}

func TestExtractSubdomain(t *testing.T) {
	cases := map[string]string{
		"cozy.localhost:3000": "cozy",
		"cozy.localhost":      "cozy",
		"shop.allinwom.com":   "shop",
		"SHOP.Allinwom.COM":   "shop",
		// a two-label host still names a tenant by its first label
		"myshop.com":             "myshop",
		"myshop.com:8080":        "myshop",
		"www.allinwom.com":       "",
		"localhost:3000":         "",
		"localhost":              "",
		"127.0.0.1:3000":         "",
		"192.168.0.7":            "",
		"":                       "",
		"deep.shop.allinwom.com": "deep",
	}
	for host, want := range cases {
		assert.Equal(t, want, ExtractSubdomain(host), "host %q", host)
	}
}

func TestQueryOverrideBeatsHost(t *testing.T) {
	db := newTestDB(t)
	seedPublishedStore(t, db, "queried", true)
	seedPublishedStore(t, db, "hosted", true)
	app := tenantApp(db, false)

	req := httptest.NewRequest(http.MethodGet, "http://hosted.allinwom.com/probe?store=QUERIED", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "queried", out["subdomain"])
}

func TestHostAndQueryResolveTheSameStore(t *testing.T) {
	db := newTestDB(t)
	seedPublishedStore(t, db, "cozy", true)
	app := tenantApp(db, false)

	for _, url := range []string{
		"http://cozy.localhost:3000/probe",
		"http://localhost:3000/probe?store=cozy",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil))
		require.NoError(t, err)
		var out map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		resp.Body.Close()
		assert.Equal(t, "cozy", out["subdomain"], "url %s", url)
		assert.Equal(t, "cozy brand", out["brand"])
	}
}

func TestApexHostResolvesTenant(t *testing.T) {
	db := newTestDB(t)
	seedPublishedStore(t, db, "myshop", true)
	app := tenantApp(db, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "http://myshop.com/probe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "myshop", out["subdomain"])
}

func TestLoadStoreCountsVisits(t *testing.T) {
	db := newTestDB(t)
	store := seedPublishedStore(t, db, "cozy", true)
	app := tenantApp(db, false)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "http://cozy.localhost/probe", nil))
		require.NoError(t, err)
		resp.Body.Close()
	}

	var stored domain.Store
	require.NoError(t, db.First(&stored, store.ID).Error)
	assert.Equal(t, int64(3), stored.VisitorCount)
}

func TestUntenantedRequestPassesThrough(t *testing.T) {
	db := newTestDB(t)
	app := tenantApp(db, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "http://localhost:3000/probe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownStoreIs404(t *testing.T) {
	db := newTestDB(t)
	app := tenantApp(db, false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "http://ghost.localhost/probe", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUnpublishedStoreDisclosureDependsOnEnv(t *testing.T) {
	db := newTestDB(t)
	seedPublishedStore(t, db, "draft", false)

	readBody := func(app *fiber.App) (int, string) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "http://draft.localhost/probe", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(b)
	}

	status, body := readBody(tenantApp(db, true))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "not published")

	// production answers the same 404 for unpublished and missing stores
	status, body = readBody(tenantApp(db, false))
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotContains(t, body, "not published")
	assert.Contains(t, body, "store not found")
}
