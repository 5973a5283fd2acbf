package services

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/repository"
)

func newCatalog(t *testing.T) (CatalogService, *testCatalogFixture) {
	db := newTestDB(t)
	user := seedUser(t, db, "catalog@example.com")
	store := seedStore(t, db, user.ID, "catalog", true)

	return NewCatalogService(
			repository.NewProductRepository(db),
			repository.NewCategoryRepository(db),
		), &testCatalogFixture{
			db:    db,
			store: store,
		}
}

type testCatalogFixture struct {
	db    *gorm.DB
	store *domain.Store
}

func TestListProductsPagination(t *testing.T) {
	svc, fx := newCatalog(t)

	for i := 1; i <= 25; i++ {
		seedProduct(t, fx.db, fx.store.ID, nil, fmt.Sprintf("sku-%02d", i), false)
	}

	out, err := svc.ListProducts(repository.ProductFilter{StoreID: fx.store.ID}, 1, 12)
	require.NoError(t, err)
	assert.Len(t, out.Products, 12)
	assert.Equal(t, int64(25), out.Pagination.Total)
	assert.Equal(t, 3, out.Pagination.TotalPages)

	out, err = svc.ListProducts(repository.ProductFilter{StoreID: fx.store.ID}, 3, 12)
	require.NoError(t, err)
	assert.Len(t, out.Products, 1)

	// past the last page comes back empty, not an error
	out, err = svc.ListProducts(repository.ProductFilter{StoreID: fx.store.ID}, 9, 12)
	require.NoError(t, err)
	assert.Empty(t, out.Products)
	assert.Equal(t, int64(25), out.Pagination.Total)
}

func TestListProductsOrderingFeaturedFirst(t *testing.T) {
	svc, fx := newCatalog(t)

	old := seedProduct(t, fx.db, fx.store.ID, nil, "plain-old", false)
	require.NoError(t, fx.db.Model(old).
		Update("created_at", time.Now().Add(-48*time.Hour)).Error)
	seedProduct(t, fx.db, fx.store.ID, nil, "plain-new", false)
	featured := seedProduct(t, fx.db, fx.store.ID, nil, "featured", true)
	require.NoError(t, fx.db.Model(featured).
		Update("created_at", time.Now().Add(-72*time.Hour)).Error)

	out, err := svc.ListProducts(repository.ProductFilter{StoreID: fx.store.ID}, 1, 10)
	require.NoError(t, err)
	require.Len(t, out.Products, 3)

	// featured wins over recency, then newest first
	assert.Equal(t, "Product featured", out.Products[0].Name)
	assert.Equal(t, "Product plain-new", out.Products[1].Name)
	assert.Equal(t, "Product plain-old", out.Products[2].Name)
}

func TestListProductsGroupsImagesPerProduct(t *testing.T) {
	svc, fx := newCatalog(t)

	p1 := seedProduct(t, fx.db, fx.store.ID, nil, "with-images", false)
	p2 := seedProduct(t, fx.db, fx.store.ID, nil, "no-images", false)

	images := []domain.ProductDetailImage{
		{ProductID: p1.ID, ImageURL: "https://cdn/img2", ImageType: domain.ImageTypeDetail, SortOrder: 2},
		{ProductID: p1.ID, ImageURL: "https://cdn/img1", ImageType: domain.ImageTypeMain, SortOrder: 1},
	}
	require.NoError(t, fx.db.Create(&images).Error)

	out, err := svc.ListProducts(repository.ProductFilter{StoreID: fx.store.ID}, 1, 10)
	require.NoError(t, err)
	require.Len(t, out.Products, 2)

	byName := map[string]int{}
	for _, p := range out.Products {
		byName[p.Name] = len(p.Images)
	}
	assert.Equal(t, 2, byName["Product with-images"])
	assert.Equal(t, 0, byName["Product no-images"])

	for _, p := range out.Products {
		if p.ID != p1.ID {
			continue
		}
		// sort_order decides the slice order
		assert.Equal(t, "https://cdn/img1", p.Images[0].URL)
		assert.Equal(t, "https://cdn/img2", p.Images[1].URL)
	}
	_ = p2
}

func TestCategoriesWithProductCount(t *testing.T) {
	svc, fx := newCatalog(t)

	bedding := seedCategory(t, fx.db, "Bedding", 1)
	curtains := seedCategory(t, fx.db, "Curtains", 2)
	empty := seedCategory(t, fx.db, "Empty", 3)

	seedProduct(t, fx.db, fx.store.ID, &bedding.ID, "b-1", false)
	seedProduct(t, fx.db, fx.store.ID, &bedding.ID, "b-2", false)
	seedProduct(t, fx.db, fx.store.ID, &curtains.ID, "c-1", false)

	// inactive products do not count
	inactive := seedProduct(t, fx.db, fx.store.ID, &bedding.ID, "b-3", false)
	require.NoError(t, fx.db.Model(inactive).Update("status", domain.ProductStatusInactive).Error)

	out, err := svc.CategoriesWithProductCount()
	require.NoError(t, err)
	require.Len(t, out, 3)

	counts := map[string]int64{}
	for _, c := range out {
		counts[c.Name] = c.ProductCount
	}
	assert.Equal(t, int64(2), counts["Bedding"])
	assert.Equal(t, int64(1), counts["Curtains"])
	assert.Equal(t, int64(0), counts["Empty"])

	// ordered by sort_order
	assert.Equal(t, "Bedding", out[0].Name)
	assert.Equal(t, "Empty", out[2].Name)

	_ = empty
}

func TestProductDetailIncrementsViewCount(t *testing.T) {
	svc, fx := newCatalog(t)
	p := seedProduct(t, fx.db, fx.store.ID, nil, "viewed", false)

	out, err := svc.ProductDetail(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ViewCount)

	var stored domain.Product
	require.NoError(t, fx.db.First(&stored, p.ID).Error)
	assert.Equal(t, int64(1), stored.ViewCount)

	out, err = svc.ProductDetail(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.ViewCount)
}

func TestProductDetailSerializesCamelCase(t *testing.T) {
	svc, fx := newCatalog(t)
	bedding := seedCategory(t, fx.db, "Bedding", 1)
	p := seedProduct(t, fx.db, fx.store.ID, &bedding.ID, "wire-1", false)

	out, err := svc.ProductDetail(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, out.Category)
	require.NotNil(t, out.Store)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	body := string(raw)

	// nested category and store records stay camelCase like the envelope
	assert.Contains(t, body, `"parentId"`)
	assert.Contains(t, body, `"storeName"`)
	assert.NotContains(t, body, `"parent_id"`)
	assert.NotContains(t, body, `"store_name"`)
	assert.NotContains(t, body, `"created_at"`)
}

func TestProductDetailNotFound(t *testing.T) {
	svc, _ := newCatalog(t)

	_, err := svc.ProductDetail(context.Background(), 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product not found")
}
