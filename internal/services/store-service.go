package services

import (
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

const (
	publicStoreLimit   = 20
	templateStoreLimit = 10
)

type StoreService interface {
	MyStore(userID uint) (*dto.StoreWithBrand, error)
	StoreBySubdomain(subdomain string) (*dto.StoreWithBrand, error)
	PublicStores() ([]dto.PublicStoreEntry, error)
	StoresByTemplate(templateType string) ([]dto.PublicStoreEntry, error)
}

type storeService struct {
	stores repository.StoreRepository
}

func NewStoreService(stores repository.StoreRepository) StoreService {
	return &storeService{stores: stores}
}

func StoreToView(store *domain.Store) dto.StoreView {
	return dto.StoreView{
		ID:             store.ID,
		StoreName:      store.StoreName,
		Subdomain:      store.Subdomain,
		Description:    store.Description,
		BannerImageURL: store.BannerImageURL,
		TemplateType:   store.TemplateType,
		TemplateColor:  store.TemplateColor,
		Status:         store.Status,
		IsPublished:    store.IsPublished,
		VisitorCount:   store.VisitorCount,
		CreatedAt:      store.CreatedAt,
	}
}

func BrandToView(brand *domain.Brand) *dto.BrandView {
	if brand == nil || brand.ID == 0 {
		return nil
	}
	return &dto.BrandView{
		ID:             brand.ID,
		BrandName:      brand.BrandName,
		Slogan:         brand.Slogan,
		LogoURL:        brand.LogoURL,
		Category:       brand.Category,
		Description:    brand.Description,
		BrandColor:     brand.BrandColor,
		TargetAudience: brand.TargetAudience,
	}
}

func (s *storeService) MyStore(userID uint) (*dto.StoreWithBrand, error) {
	store, err := s.stores.FindActiveStoreByUserID(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("store not found")
		}
		return nil, apperr.Internal(err)
	}
	return &dto.StoreWithBrand{
		Store: StoreToView(store),
		Brand: BrandToView(&store.Brand),
	}, nil
}

func (s *storeService) StoreBySubdomain(subdomain string) (*dto.StoreWithBrand, error) {
	store, err := s.stores.FindActiveBySubdomain(subdomain)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("store not found")
		}
		return nil, apperr.Internal(err)
	}
	return &dto.StoreWithBrand{
		Store: StoreToView(store),
		Brand: BrandToView(&store.Brand),
	}, nil
}

func publicEntries(stores []domain.Store) []dto.PublicStoreEntry {
	out := make([]dto.PublicStoreEntry, 0, len(stores))
	for _, store := range stores {
		entry := dto.PublicStoreEntry{
			ID:             store.ID,
			StoreName:      store.StoreName,
			Subdomain:      store.Subdomain,
			Description:    store.Description,
			TemplateType:   store.TemplateType,
			BannerImageURL: store.BannerImageURL,
			VisitorCount:   store.VisitorCount,
			CreatedAt:      store.CreatedAt,
		}
		if store.Brand.ID != 0 {
			entry.BrandName = store.Brand.BrandName
			entry.Category = store.Brand.Category
		}
		out = append(out, entry)
	}
	return out
}

func (s *storeService) PublicStores() ([]dto.PublicStoreEntry, error) {
	stores, err := s.stores.ListPublished(publicStoreLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return publicEntries(stores), nil
}

func (s *storeService) StoresByTemplate(templateType string) ([]dto.PublicStoreEntry, error) {
	if !domain.IsValidTemplate(templateType) {
		return nil, apperr.BadRequest("invalid template type")
	}
	stores, err := s.stores.ListPublishedByTemplate(templateType, templateStoreLimit)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return publicEntries(stores), nil
}
