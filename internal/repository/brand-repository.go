package repository

import (
	"errors"

	"github.com/allinwom/storefront/internal/domain"
	"gorm.io/gorm"
)

type BrandRepository interface {
	CreateBrand(brand *domain.Brand) error
	SaveBrand(brand *domain.Brand) error
	FindBrandByUserID(userID uint) (*domain.Brand, error)
	FindActiveBrandByUserID(userID uint) (*domain.Brand, error)
	DeleteBrandsByUserID(userID uint) error
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

func (r *brandRepository) CreateBrand(brand *domain.Brand) error {
	if brand == nil {
		return errors.New("nil brand")
	}
	return r.db.Create(brand).Error
}

func (r *brandRepository) SaveBrand(brand *domain.Brand) error {
	if brand == nil {
		return errors.New("nil brand")
	}
	return r.db.Save(brand).Error
}

func (r *brandRepository) FindBrandByUserID(userID uint) (*domain.Brand, error) {
	brand := &domain.Brand{}
	if err := r.db.First(brand, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return brand, nil
}

func (r *brandRepository) FindActiveBrandByUserID(userID uint) (*domain.Brand, error) {
	brand := &domain.Brand{}
	err := r.db.First(brand, "user_id = ? AND status = ?", userID, domain.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return brand, nil
}

func (r *brandRepository) DeleteBrandsByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Brand{}).Error
}
