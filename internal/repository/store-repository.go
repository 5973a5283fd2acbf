package repository

import (
	"errors"
	"strings"

	"github.com/allinwom/storefront/internal/domain"
	"gorm.io/gorm"
)

type StoreRepository interface {
	CreateStore(store *domain.Store) error
	SaveStore(store *domain.Store) error
	FindStoreByUserID(userID uint) (*domain.Store, error)
	FindActiveStoreByUserID(userID uint) (*domain.Store, error)
	// FindPublishedBySubdomain is the tenant-resolution lookup: active,
	// published, brand preloaded.
	FindPublishedBySubdomain(subdomain string) (*domain.Store, error)
	FindBySubdomain(subdomain string) (*domain.Store, error)
	FindActiveBySubdomain(subdomain string) (*domain.Store, error)
	FindSubdomainOwnedByOther(subdomain string, userID uint) (*domain.Store, error)
	IncrementVisitorCount(storeID uint) error
	ListPublished(limit int) ([]domain.Store, error)
	ListPublishedByTemplate(templateType string, limit int) ([]domain.Store, error)
	DeleteStoresByUserID(userID uint) error
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) CreateStore(store *domain.Store) error {
	if store == nil {
		return errors.New("nil store")
	}
	store.Subdomain = strings.ToLower(strings.TrimSpace(store.Subdomain))
	return r.db.Create(store).Error
}

func (r *storeRepository) SaveStore(store *domain.Store) error {
	if store == nil {
		return errors.New("nil store")
	}
	store.Subdomain = strings.ToLower(strings.TrimSpace(store.Subdomain))
	return r.db.Save(store).Error
}

func (r *storeRepository) FindStoreByUserID(userID uint) (*domain.Store, error) {
	store := &domain.Store{}
	if err := r.db.Preload("Brand").First(store, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return store, nil
}

func (r *storeRepository) FindActiveStoreByUserID(userID uint) (*domain.Store, error) {
	store := &domain.Store{}
	err := r.db.Preload("Brand").
		First(store, "user_id = ? AND status = ?", userID, domain.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (r *storeRepository) FindPublishedBySubdomain(subdomain string) (*domain.Store, error) {
	store := &domain.Store{}
	err := r.db.Preload("Brand").
		First(store, "subdomain = ? AND status = ? AND is_published = ?",
			strings.ToLower(subdomain), domain.StatusActive, true).Error
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (r *storeRepository) FindBySubdomain(subdomain string) (*domain.Store, error) {
	store := &domain.Store{}
	if err := r.db.First(store, "subdomain = ?", strings.ToLower(subdomain)).Error; err != nil {
		return nil, err
	}
	return store, nil
}

func (r *storeRepository) FindActiveBySubdomain(subdomain string) (*domain.Store, error) {
	store := &domain.Store{}
	err := r.db.Preload("Brand").
		First(store, "subdomain = ? AND status = ?", strings.ToLower(subdomain), domain.StatusActive).Error
	if err != nil {
		return nil, err
	}
	return store, nil
}

// FindSubdomainOwnedByOther returns the store holding subdomain when that
// store does not belong to userID. A user may reassign their own subdomain.
func (r *storeRepository) FindSubdomainOwnedByOther(subdomain string, userID uint) (*domain.Store, error) {
	store := &domain.Store{}
	err := r.db.First(store, "subdomain = ? AND user_id <> ?", strings.ToLower(subdomain), userID).Error
	if err != nil {
		return nil, err
	}
	return store, nil
}

// IncrementVisitorCount is a single UPDATE; concurrent visits may race and
// the counter is approximate.
func (r *storeRepository) IncrementVisitorCount(storeID uint) error {
	return r.db.Model(&domain.Store{}).
		Where("id = ?", storeID).
		UpdateColumn("visitor_count", gorm.Expr("visitor_count + 1")).Error
}

func (r *storeRepository) ListPublished(limit int) ([]domain.Store, error) {
	var stores []domain.Store
	err := r.db.Preload("Brand").
		Where("is_published = ? AND status = ?", true, domain.StatusActive).
		Order("created_at DESC").
		Limit(limit).
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) ListPublishedByTemplate(templateType string, limit int) ([]domain.Store, error) {
	var stores []domain.Store
	err := r.db.Preload("Brand").
		Where("template_type = ? AND is_published = ? AND status = ?",
			templateType, true, domain.StatusActive).
		Order("visitor_count DESC").
		Limit(limit).
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) DeleteStoresByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&domain.Store{}).Error
}
