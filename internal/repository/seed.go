package repository

import (
	"fmt"
	"math/rand"
	"net/url"

	"gorm.io/gorm"

	"github.com/allinwom/storefront/internal/domain"
)

type seedGroup struct {
	slug         string
	namePattern  string
	description  string
	count        int
	basePrice    float64
	priceStep    float64
	compareBase  float64
	compareStep  float64
	maxStock     int
	featuredUpTo int
}

var seedGroups = []seedGroup{
	{
		slug:         "bedding",
		namePattern:  "Premium Bedding Set %d",
		description:  "Soft premium bedding set made from high-grade cotton for a comfortable night's sleep.",
		count:        5,
		basePrice:    89000, priceStep: 10000,
		compareBase: 120000, compareStep: 15000,
		maxStock: 50, featuredUpTo: 2,
	},
	{
		slug:         "curtain",
		namePattern:  "Modern Blackout Curtain %d",
		description:  "Modern blackout curtain with full light blocking and a refined look.",
		count:        4,
		basePrice:    65000, priceStep: 8000,
		compareBase: 85000, compareStep: 12000,
		maxStock: 30, featuredUpTo: 1,
	},
	{
		slug:         "deco",
		namePattern:  "Home Deco Item %d",
		description:  "Home deco item that brings a warmer mood to any room.",
		count:        6,
		basePrice:    25000, priceStep: 5000,
		compareBase: 35000, compareStep: 8000,
		maxStock: 20, featuredUpTo: 0,
	},
}

var seedCategories = []domain.Category{
	{Name: "Bedding", SortOrder: 1, Status: domain.StatusActive},
	{Name: "Curtains", SortOrder: 2, Status: domain.StatusActive},
	{Name: "Home Deco", SortOrder: 3, Status: domain.StatusActive},
	{Name: "Sale", SortOrder: 4, Status: domain.StatusActive},
	{Name: "New Arrivals", SortOrder: 5, Status: domain.StatusActive},
}

func placeholderImage(text string) string {
	return "https://via.placeholder.com/600x400?text=" + url.QueryEscape(text)
}

// SeedDemoCatalog fills an empty catalog with demo categories, products and
// images for up to three active stores. Existing data is left alone so a
// restart never duplicates rows.
func SeedDemoCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		categoryRepo := NewCategoryRepository(tx)
		productRepo := NewProductRepository(tx)

		categories := make([]domain.Category, len(seedCategories))
		copy(categories, seedCategories)
		for i := range categories {
			if err := categoryRepo.CreateCategory(&categories[i]); err != nil {
				return err
			}
		}

		var stores []domain.Store
		if err := tx.Where("status = ?", domain.StatusActive).
			Limit(3).Find(&stores).Error; err != nil {
			return err
		}
		if len(stores) == 0 {
			return nil
		}

		for _, store := range stores {
			for gi, group := range seedGroups {
				categoryID := categories[gi].ID
				for i := 1; i <= group.count; i++ {
					compare := group.compareBase + float64(i)*group.compareStep
					product := domain.Product{
						StoreID:       store.ID,
						SKU:           fmt.Sprintf("%s-%s-%d", store.Subdomain, group.slug, i),
						CategoryID:    &categoryID,
						Name:          fmt.Sprintf(group.namePattern, i),
						Description:   group.description,
						Price:         group.basePrice + float64(i)*group.priceStep,
						ComparePrice:  &compare,
						StockQuantity: rand.Intn(group.maxStock) + 1,
						Status:        domain.ProductStatusActive,
						IsFeatured:    i <= group.featuredUpTo,
					}
					if err := productRepo.CreateProduct(&product); err != nil {
						return err
					}

					images := []domain.ProductDetailImage{
						{
							ProductID: product.ID,
							ImageURL:  placeholderImage(product.Name),
							ImageType: domain.ImageTypeMain,
							SortOrder: 1,
							AltText:   product.Name,
						},
						{
							ProductID: product.ID,
							ImageURL:  placeholderImage("Detail 1"),
							ImageType: domain.ImageTypeDetail,
							SortOrder: 2,
							AltText:   product.Name + " detail 1",
						},
						{
							ProductID: product.ID,
							ImageURL:  placeholderImage("Detail 2"),
							ImageType: domain.ImageTypeDetail,
							SortOrder: 3,
							AltText:   product.Name + " detail 2",
						},
					}
					for i := range images {
						if err := productRepo.CreateImage(&images[i]); err != nil {
							return err
						}
					}
				}
			}
		}
		return nil
	})
}
