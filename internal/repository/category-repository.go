package repository

import (
	"github.com/allinwom/storefront/internal/domain"
	"gorm.io/gorm"
)

// CategoryProductCount is one row of the per-category aggregation.
type CategoryProductCount struct {
	CategoryID *uint
	Count      int64
}

type CategoryRepository interface {
	FindCategoryByID(categoryID uint) (*domain.Category, error)
	ListCategories(status string) ([]domain.Category, error)
	ListChildren(parentID uint) ([]domain.Category, error)
	// CountActiveProductsByCategory runs one GROUP BY over active products.
	CountActiveProductsByCategory() ([]CategoryProductCount, error)
	CreateCategory(category *domain.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) FindCategoryByID(categoryID uint) (*domain.Category, error) {
	category := &domain.Category{}
	if err := r.db.Preload("Parent").First(category, categoryID).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) ListCategories(status string) ([]domain.Category, error) {
	var categories []domain.Category
	q := r.db.Order("sort_order ASC, name ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) ListChildren(parentID uint) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.Where("parent_id = ? AND status = ?", parentID, domain.StatusActive).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) CountActiveProductsByCategory() ([]CategoryProductCount, error) {
	var rows []CategoryProductCount
	err := r.db.Model(&domain.Product{}).
		Select("category_id AS category_id, COUNT(*) AS count").
		Where("status = ?", domain.ProductStatusActive).
		Group("category_id").
		Scan(&rows).Error
	return rows, err
}

func (r *categoryRepository) CreateCategory(category *domain.Category) error {
	return r.db.Create(category).Error
}
