package services

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/allinwom/storefront/internal/domain"
)

// newTestDB opens a fresh in-memory database migrated with the full schema.
// The shared-cache DSN keeps the database alive across pooled connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	// one connection keeps concurrent statements serialized on sqlite
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Brand{},
		&domain.Store{},
		&domain.Category{},
		&domain.Product{},
		&domain.ProductDetailImage{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()

	user := &domain.User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		LoginType:    domain.LoginTypeEmail,
		Status:       domain.StatusActive,
		Language:     "ko",
		Timezone:     "Asia/Seoul",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedStore(t *testing.T, db *gorm.DB, userID uint, subdomain string, published bool) *domain.Store {
	t.Helper()

	brand := &domain.Brand{
		UserID:    userID,
		BrandName: subdomain + " brand",
		Category:  "general",
		Status:    domain.StatusActive,
	}
	require.NoError(t, db.Create(brand).Error)

	store := &domain.Store{
		BrandID:       brand.ID,
		UserID:        userID,
		StoreName:     subdomain + " store",
		Subdomain:     subdomain,
		TemplateType:  "Cozy",
		TemplateColor: "#aabbcc",
		Status:        domain.StatusActive,
		IsPublished:   published,
	}
	require.NoError(t, db.Create(store).Error)
	return store
}

func seedCategory(t *testing.T, db *gorm.DB, name string, sortOrder int) *domain.Category {
	t.Helper()

	c := &domain.Category{Name: name, SortOrder: sortOrder, Status: domain.StatusActive}
	require.NoError(t, db.Create(c).Error)
	return c
}

func seedProduct(t *testing.T, db *gorm.DB, storeID uint, categoryID *uint, sku string, featured bool) *domain.Product {
	t.Helper()

	p := &domain.Product{
		StoreID:    storeID,
		SKU:        sku,
		CategoryID: categoryID,
		Name:       "Product " + sku,
		Price:      10000,
		Status:     domain.ProductStatusActive,
		IsFeatured: featured,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}
