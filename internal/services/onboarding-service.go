package services

import (
	"regexp"
	"strings"

	"gorm.io/gorm"

	"github.com/allinwom/storefront/infra/queue"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

var subdomainPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// OnboardingService establishes a user's Brand+Store pair. The unified
// CompleteOnboarding path runs all writes inside one transaction; the
// step-by-step path mirrors the wizard (brand, store, explicit publish).
type OnboardingService interface {
	CompleteOnboarding(userID uint, input dto.CompleteOnboardingRequest) (*domain.Brand, *domain.Store, error)
	Status(userID uint) (*dto.OnboardingStatus, error)
	CreateBrand(userID uint, input dto.CreateBrandRequest) (*domain.Brand, error)
	CreateStore(userID uint, input dto.CreateStoreRequest) (*domain.Store, error)
	PublishStore(userID uint) (*domain.Store, error)
}

type onboardingService struct {
	db       *gorm.DB
	producer *queue.Producer
}

func NewOnboardingService(db *gorm.DB, producer *queue.Producer) OnboardingService {
	return &onboardingService{db: db, producer: producer}
}

func validateSubdomain(subdomain string) error {
	if !subdomainPattern.MatchString(subdomain) {
		return apperr.Validation("subdomain may only contain lowercase letters, digits and hyphens")
	}
	return nil
}

func (s *onboardingService) CompleteOnboarding(userID uint, input dto.CompleteOnboardingRequest) (*domain.Brand, *domain.Store, error) {
	if input.Business == "" || input.StoreName == "" || input.Theme == "" ||
		input.Template == "" || input.Subdomain == "" {
		return nil, nil, apperr.Validation("business, storeName, theme, template and subdomain are required")
	}

	subdomain := strings.ToLower(strings.TrimSpace(input.Subdomain))
	if err := validateSubdomain(subdomain); err != nil {
		return nil, nil, err
	}

	stores := repository.NewStoreRepository(s.db)
	if _, err := stores.FindSubdomainOwnedByOther(subdomain, userID); err == nil {
		return nil, nil, apperr.Conflict(apperr.CodeDuplicateEntry, "subdomain is already in use")
	} else if !helper.IsNotFound(err) {
		return nil, nil, apperr.Internal(err)
	}

	var brand *domain.Brand
	var store *domain.Store

	// Brand, store and the user's onboarding flag commit or roll back
	// together.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		brands := repository.NewBrandRepository(tx)
		txStores := repository.NewStoreRepository(tx)
		users := repository.NewUserRepository(tx)

		b, err := brands.FindBrandByUserID(userID)
		switch {
		case helper.IsNotFound(err):
			b = &domain.Brand{
				UserID:     userID,
				BrandName:  input.Business,
				Slogan:     input.Tagline,
				LogoURL:    input.BrandImageURL,
				Category:   "general",
				BrandColor: input.Theme,
				Status:     domain.StatusActive,
			}
			if err := brands.CreateBrand(b); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			b.BrandName = input.Business
			if input.Tagline != "" {
				b.Slogan = input.Tagline
			}
			if input.BrandImageURL != "" {
				b.LogoURL = input.BrandImageURL
			}
			b.BrandColor = input.Theme
			if err := brands.SaveBrand(b); err != nil {
				return err
			}
		}
		brand = b

		st, err := txStores.FindStoreByUserID(userID)
		switch {
		case helper.IsNotFound(err):
			st = &domain.Store{
				BrandID:        b.ID,
				UserID:         userID,
				StoreName:      input.StoreName,
				Subdomain:      subdomain,
				Description:    input.Tagline,
				TemplateType:   input.Template,
				TemplateColor:  input.Theme,
				BannerImageURL: input.BrandImageURL,
				Status:         domain.StatusActive,
				// the unified path always ends with a live store
				IsPublished: true,
			}
			if err := txStores.CreateStore(st); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			st.StoreName = input.StoreName
			st.Subdomain = subdomain
			if input.Tagline != "" {
				st.Description = input.Tagline
			}
			st.TemplateType = input.Template
			st.TemplateColor = input.Theme
			if input.BrandImageURL != "" {
				st.BannerImageURL = input.BrandImageURL
			}
			st.IsPublished = true
			if err := txStores.SaveStore(st); err != nil {
				return err
			}
		}
		store = st

		return users.SetHasOnboarded(userID, true)
	})
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, nil, apperr.Conflict(apperr.CodeDuplicateEntry, "subdomain is already in use")
		}
		return nil, nil, apperr.Internal(err)
	}

	s.producer.PublishEvent(queue.Event{
		Type:      queue.EventOnboardingCompleted,
		UserID:    userID,
		Subdomain: store.Subdomain,
	})

	return brand, store, nil
}

func (s *onboardingService) Status(userID uint) (*dto.OnboardingStatus, error) {
	brands := repository.NewBrandRepository(s.db)
	stores := repository.NewStoreRepository(s.db)

	status := &dto.OnboardingStatus{}

	if _, err := brands.FindBrandByUserID(userID); err == nil {
		status.HasBrand = true
	} else if !helper.IsNotFound(err) {
		return nil, apperr.Internal(err)
	}

	store, err := stores.FindStoreByUserID(userID)
	if err == nil {
		status.HasStore = true
		status.IsPublished = store.IsPublished
	} else if !helper.IsNotFound(err) {
		return nil, apperr.Internal(err)
	}

	return status, nil
}

func (s *onboardingService) CreateBrand(userID uint, input dto.CreateBrandRequest) (*domain.Brand, error) {
	if input.BrandName == "" || input.Category == "" {
		return nil, apperr.Validation("brandName and category are required")
	}

	brands := repository.NewBrandRepository(s.db)
	if _, err := brands.FindBrandByUserID(userID); err == nil {
		return nil, apperr.Conflict(apperr.CodeDuplicateEntry, "brand already exists")
	} else if !helper.IsNotFound(err) {
		return nil, apperr.Internal(err)
	}

	brand := &domain.Brand{
		UserID:         userID,
		BrandName:      input.BrandName,
		Slogan:         input.Slogan,
		Category:       input.Category,
		Description:    input.Description,
		BrandColor:     input.BrandColor,
		TargetAudience: input.TargetAudience,
		Status:         domain.StatusActive,
	}
	if err := brands.CreateBrand(brand); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, apperr.Conflict(apperr.CodeDuplicateEntry, "brand already exists")
		}
		return nil, apperr.Internal(err)
	}
	return brand, nil
}

// CreateStore is the wizard's second step; the store starts unpublished and
// goes live through PublishStore.
func (s *onboardingService) CreateStore(userID uint, input dto.CreateStoreRequest) (*domain.Store, error) {
	if input.StoreName == "" || input.Subdomain == "" || input.TemplateType == "" || input.TemplateColor == "" {
		return nil, apperr.Validation("storeName, subdomain, templateType and templateColor are required")
	}
	if !domain.IsValidTemplate(input.TemplateType) {
		return nil, apperr.Validation("invalid template type")
	}

	subdomain := strings.ToLower(strings.TrimSpace(input.Subdomain))
	if err := validateSubdomain(subdomain); err != nil {
		return nil, err
	}

	brands := repository.NewBrandRepository(s.db)
	brand, err := brands.FindBrandByUserID(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("create a brand first")
		}
		return nil, apperr.Internal(err)
	}

	stores := repository.NewStoreRepository(s.db)
	if _, err := stores.FindBySubdomain(subdomain); err == nil {
		return nil, apperr.Conflict(apperr.CodeDuplicateEntry, "subdomain is already in use")
	} else if !helper.IsNotFound(err) {
		return nil, apperr.Internal(err)
	}

	store := &domain.Store{
		BrandID:        brand.ID,
		UserID:         userID,
		StoreName:      input.StoreName,
		Subdomain:      subdomain,
		Description:    input.Description,
		TemplateType:   input.TemplateType,
		TemplateColor:  input.TemplateColor,
		BannerImageURL: input.BannerImageURL,
		Status:         domain.StatusActive,
		IsPublished:    false,
	}
	if err := stores.CreateStore(store); err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, apperr.Conflict(apperr.CodeDuplicateEntry, "subdomain is already in use")
		}
		return nil, apperr.Internal(err)
	}
	return store, nil
}

func (s *onboardingService) PublishStore(userID uint) (*domain.Store, error) {
	stores := repository.NewStoreRepository(s.db)
	users := repository.NewUserRepository(s.db)

	store, err := stores.FindStoreByUserID(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("store not found")
		}
		return nil, apperr.Internal(err)
	}

	store.IsPublished = true
	if err := stores.SaveStore(store); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := users.SetHasOnboarded(userID, true); err != nil {
		return nil, apperr.Internal(err)
	}
	return store, nil
}
