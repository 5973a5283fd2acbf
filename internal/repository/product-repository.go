package repository

import (
	"github.com/allinwom/storefront/internal/domain"
	"gorm.io/gorm"
)

// ProductFilter narrows product listings. StoreID/CategoryID of zero mean
// "any". Listings are always constrained to active products.
type ProductFilter struct {
	StoreID      uint
	CategoryID   uint
	FeaturedOnly bool
}

type ProductRepository interface {
	// ListProducts returns one page ordered featured-first, newest-first,
	// with categories preloaded.
	ListProducts(filter ProductFilter, offset, limit int) ([]domain.Product, error)
	CountProducts(filter ProductFilter) (int64, error)
	// ListProductsByCategory is the cross-store category listing; stores are
	// preloaded instead of categories.
	ListProductsByCategory(categoryID uint, offset, limit int) ([]domain.Product, error)
	CountProductsByCategory(categoryID uint) (int64, error)
	FindProductDetail(productID uint) (*domain.Product, error)
	IncrementViewCount(productID uint) error
	// ImagesByProductIDs fetches every image for the given products in one
	// query, ordered (product_id, sort_order).
	ImagesByProductIDs(productIDs []uint) ([]domain.ProductDetailImage, error)
	ImagesByProductID(productID uint) ([]domain.ProductDetailImage, error)
	CreateProduct(product *domain.Product) error
	CreateImage(image *domain.ProductDetailImage) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) scoped(filter ProductFilter) *gorm.DB {
	q := r.db.Model(&domain.Product{}).Where("status = ?", domain.ProductStatusActive)
	if filter.StoreID != 0 {
		q = q.Where("store_id = ?", filter.StoreID)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	return q
}

func (r *productRepository) ListProducts(filter ProductFilter, offset, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.scoped(filter).
		Preload("Category").
		Order("is_featured DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) CountProducts(filter ProductFilter) (int64, error) {
	var total int64
	err := r.scoped(filter).Count(&total).Error
	return total, err
}

func (r *productRepository) ListProductsByCategory(categoryID uint, offset, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.
		Preload("Store").
		Where("category_id = ? AND status = ?", categoryID, domain.ProductStatusActive).
		Order("is_featured DESC, created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *productRepository) CountProductsByCategory(categoryID uint) (int64, error) {
	var total int64
	err := r.db.Model(&domain.Product{}).
		Where("category_id = ? AND status = ?", categoryID, domain.ProductStatusActive).
		Count(&total).Error
	return total, err
}

func (r *productRepository) FindProductDetail(productID uint) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.db.Preload("Category").Preload("Store").First(product, productID).Error
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepository) IncrementViewCount(productID uint) error {
	return r.db.Model(&domain.Product{}).
		Where("id = ?", productID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *productRepository) ImagesByProductIDs(productIDs []uint) ([]domain.ProductDetailImage, error) {
	var images []domain.ProductDetailImage
	if len(productIDs) == 0 {
		return images, nil
	}
	err := r.db.Where("product_id IN ?", productIDs).
		Order("product_id ASC, sort_order ASC").
		Find(&images).Error
	return images, err
}

func (r *productRepository) ImagesByProductID(productID uint) ([]domain.ProductDetailImage, error) {
	var images []domain.ProductDetailImage
	err := r.db.Where("product_id = ?", productID).
		Order("sort_order ASC").
		Find(&images).Error
	return images, err
}

func (r *productRepository) CreateProduct(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) CreateImage(image *domain.ProductDetailImage) error {
	return r.db.Create(image).Error
}
