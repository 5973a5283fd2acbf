package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

const DefaultPageSize = 12

// CatalogService builds product and category listings. Listings stay at a
// fixed number of queries no matter how many rows come back: one page query,
// one IN query for the images, one count.
type CatalogService interface {
	ListProducts(filter repository.ProductFilter, page, limit int) (*dto.ProductListResult, error)
	CategoriesWithProductCount() ([]dto.CategoryWithCount, error)
	CategoryDetail(categoryID uint) (*dto.CategoryDetail, error)
	CategoryProducts(categoryID uint, page, limit int) (*dto.CategoryProductsResult, error)
	ProductDetail(ctx context.Context, productID uint) (*dto.ProductDetail, error)
}

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository) CatalogService {
	return &catalogService{products: products, categories: categories}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

func categoryRef(c *domain.Category) *dto.CategoryRef {
	if c == nil {
		return nil
	}
	return &dto.CategoryRef{ID: c.ID, Name: c.Name, ParentID: c.ParentID}
}

func storeRef(s *domain.Store) *dto.StoreRef {
	if s == nil {
		return nil
	}
	return &dto.StoreRef{ID: s.ID, StoreName: s.StoreName, Subdomain: s.Subdomain}
}

func (s *catalogService) ListProducts(filter repository.ProductFilter, page, limit int) (*dto.ProductListResult, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	products, err := s.products.ListProducts(filter, offset, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.products.CountProducts(filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	images, err := s.products.ImagesByProductIDs(ids)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	byProduct := groupImages(images)

	summaries := make([]dto.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, dto.ProductSummary{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			ComparePrice:  p.ComparePrice,
			StockQuantity: p.StockQuantity,
			Category:      categoryRef(p.Category),
			IsFeatured:    p.IsFeatured,
			ViewCount:     p.ViewCount,
			Images:        byProduct[p.ID],
			CreatedAt:     p.CreatedAt,
		})
	}

	return &dto.ProductListResult{
		Products: summaries,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// groupImages partitions image rows by product, keeping the repository's
// sort order within each product.
func groupImages(images []domain.ProductDetailImage) map[uint][]dto.ProductImage {
	byProduct := make(map[uint][]dto.ProductImage)
	for _, img := range images {
		byProduct[img.ProductID] = append(byProduct[img.ProductID], dto.ProductImage{
			URL:  img.ImageURL,
			Type: img.ImageType,
			Alt:  img.AltText,
		})
	}
	return byProduct
}

func (s *catalogService) CategoriesWithProductCount() ([]dto.CategoryWithCount, error) {
	counts, err := s.categories.CountActiveProductsByCategory()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	countByCategory := make(map[uint]int64, len(counts))
	for _, row := range counts {
		if row.CategoryID != nil {
			countByCategory[*row.CategoryID] = row.Count
		}
	}

	categories, err := s.categories.ListCategories(domain.StatusActive)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]dto.CategoryWithCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryWithCount{
			ID:           c.ID,
			Name:         c.Name,
			ParentID:     c.ParentID,
			SortOrder:    c.SortOrder,
			ProductCount: countByCategory[c.ID],
			CreatedAt:    c.CreatedAt,
		})
	}
	return out, nil
}

func (s *catalogService) CategoryDetail(categoryID uint) (*dto.CategoryDetail, error) {
	category, err := s.categories.FindCategoryByID(categoryID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Internal(err)
	}

	children, err := s.categories.ListChildren(categoryID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	count, err := s.products.CountProductsByCategory(categoryID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	refs := make([]dto.CategoryRef, 0, len(children))
	for i := range children {
		refs = append(refs, *categoryRef(&children[i]))
	}

	return &dto.CategoryDetail{
		Category: dto.CategoryRef{
			ID:       category.ID,
			Name:     category.Name,
			ParentID: category.ParentID,
		},
		SubCategories: refs,
		ProductCount:  count,
	}, nil
}

func (s *catalogService) CategoryProducts(categoryID uint, page, limit int) (*dto.CategoryProductsResult, error) {
	category, err := s.categories.FindCategoryByID(categoryID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, apperr.Internal(err)
	}

	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	products, err := s.products.ListProductsByCategory(categoryID, offset, limit)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	total, err := s.products.CountProductsByCategory(categoryID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	entries := make([]dto.CategoryProductEntry, 0, len(products))
	for _, p := range products {
		entries = append(entries, dto.CategoryProductEntry{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			ComparePrice:  p.ComparePrice,
			StockQuantity: p.StockQuantity,
			Store:         storeRef(p.Store),
			IsFeatured:    p.IsFeatured,
			ViewCount:     p.ViewCount,
			CreatedAt:     p.CreatedAt,
		})
	}

	return &dto.CategoryProductsResult{
		Category: dto.CategoryRef{
			ID:       category.ID,
			Name:     category.Name,
			ParentID: category.ParentID,
		},
		Products: entries,
		Pagination: dto.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// ProductDetail fetches the product and bumps its view counter as two
// independent operations running in parallel. The response carries the
// "about to be" count (read value + 1) so no re-read is needed after the
// increment lands.
func (s *catalogService) ProductDetail(ctx context.Context, productID uint) (*dto.ProductDetail, error) {
	var product *domain.Product

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.products.FindProductDetail(productID)
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	g.Go(func() error {
		return s.products.IncrementViewCount(productID)
	})
	if err := g.Wait(); err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, apperr.Internal(err)
	}

	images, err := s.products.ImagesByProductID(productID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	out := make([]dto.ProductImage, 0, len(images))
	for _, img := range images {
		out = append(out, dto.ProductImage{URL: img.ImageURL, Type: img.ImageType, Alt: img.AltText})
	}

	return &dto.ProductDetail{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		ComparePrice:  product.ComparePrice,
		StockQuantity: product.StockQuantity,
		Category:      categoryRef(product.Category),
		Store:         storeRef(product.Store),
		IsFeatured:    product.IsFeatured,
		ViewCount:     product.ViewCount + 1,
		Images:        out,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}, nil
}
