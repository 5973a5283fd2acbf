package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

type UserService interface {
	GetUser(userID uint) (*domain.User, error)
	Me(userID uint) (*dto.UserMeResponse, error)
	StoreURL(userID uint) (*dto.StoreURLResponse, error)
	UpdateProfile(userID uint, input dto.UpdateProfileRequest) (*domain.User, error)
	ChangePassword(userID uint, input dto.ChangePasswordRequest) error
	DeleteAccount(userID uint) error
}

type userService struct {
	db           *gorm.DB
	users        repository.UserRepository
	stores       repository.StoreRepository
	brands       repository.BrandRepository
	auth         helper.Auth
	frontendPort string
}

func NewUserService(
	db *gorm.DB,
	users repository.UserRepository,
	stores repository.StoreRepository,
	brands repository.BrandRepository,
	auth helper.Auth,
	frontendPort string,
) UserService {
	return &userService{
		db:           db,
		users:        users,
		stores:       stores,
		brands:       brands,
		auth:         auth,
		frontendPort: frontendPort,
	}
}

func UserToView(user *domain.User) dto.UserView {
	return dto.UserView{
		ID:              user.ID,
		Email:           user.Email,
		Name:            user.Name,
		Phone:           user.Phone,
		ProfileImage:    user.ProfileImage,
		HasOnboarded:    user.HasOnboarded,
		LoginType:       user.LoginType,
		IsEmailVerified: user.IsEmailVerified,
		NotifyEmail:     user.NotifyEmail,
		NotifyPush:      user.NotifyPush,
		NotifySMS:       user.NotifySMS,
		Language:        user.Language,
		Timezone:        user.Timezone,
		Status:          user.Status,
		LastLoginAt:     user.LastLoginAt,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}

func (s *userService) GetUser(userID uint) (*domain.User, error) {
	user, err := s.users.FindUserById(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.New(apperr.KindNotFound, apperr.CodeUserNotFound, "user not found")
		}
		return nil, apperr.Internal(err)
	}
	return user, nil
}

// Me returns the profile annotated with the store/brand fields written by
// onboarding, matching the frontend's flat shape.
func (s *userService) Me(userID uint) (*dto.UserMeResponse, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	out := &dto.UserMeResponse{User: dto.UserWithOnboarding{UserView: UserToView(user)}}

	store, err := s.stores.FindActiveStoreByUserID(userID)
	switch {
	case err == nil:
		out.User.StoreName = &store.StoreName
		out.User.Subdomain = &store.Subdomain
		out.User.Template = &store.TemplateType
		out.User.Theme = &store.TemplateColor
		out.Store = &dto.StoreSummary{
			ID:           store.ID,
			StoreName:    store.StoreName,
			Subdomain:    store.Subdomain,
			IsPublished:  store.IsPublished,
			TemplateType: store.TemplateType,
		}
	case !helper.IsNotFound(err):
		return nil, apperr.Internal(err)
	}

	brand, err := s.brands.FindActiveBrandByUserID(userID)
	switch {
	case err == nil:
		out.User.Business = &brand.BrandName
		out.User.Tagline = &brand.Slogan
		out.User.BrandImageURL = &brand.LogoURL
		out.User.Color = &brand.BrandColor
		out.Brand = &dto.BrandSummary{
			ID:        brand.ID,
			BrandName: brand.BrandName,
			Slogan:    brand.Slogan,
		}
	case !helper.IsNotFound(err):
		return nil, apperr.Internal(err)
	}

	return out, nil
}

func (s *userService) StoreURL(userID uint) (*dto.StoreURLResponse, error) {
	store, err := s.stores.FindActiveStoreByUserID(userID)
	if err != nil {
		if helper.IsNotFound(err) {
			return &dto.StoreURLResponse{HasStore: false, Message: "no store has been created yet"}, nil
		}
		return nil, apperr.Internal(err)
	}

	return &dto.StoreURLResponse{
		HasStore:    true,
		Subdomain:   store.Subdomain,
		StoreName:   store.StoreName,
		StoreURL:    fmt.Sprintf("http://localhost:%s/?store=%s", s.frontendPort, store.Subdomain),
		IsPublished: store.IsPublished,
	}, nil
}

func (s *userService) UpdateProfile(userID uint, input dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil && *input.Name != "" {
		user.Name = *input.Name
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}

	if err := s.users.SaveUser(user); err != nil {
		return nil, apperr.Internal(err)
	}
	return user, nil
}

func (s *userService) ChangePassword(userID uint, input dto.ChangePasswordRequest) error {
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return apperr.Validation("current and new password are required")
	}
	if len(input.NewPassword) < minPasswordLength {
		return apperr.Validation("password must be at least 6 characters")
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return err
	}
	if err := s.auth.VerifyPassword(input.CurrentPassword, user.PasswordHash); err != nil {
		return err
	}

	hashed, err := s.auth.HashPassword(input.NewPassword)
	if err != nil {
		return apperr.Internal(err)
	}
	user.PasswordHash = hashed
	if err := s.users.SaveUser(user); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// DeleteAccount removes the user together with their stores and brands in
// one transaction.
func (s *userService) DeleteAccount(userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		stores := repository.NewStoreRepository(tx)
		brands := repository.NewBrandRepository(tx)
		users := repository.NewUserRepository(tx)

		if err := stores.DeleteStoresByUserID(userID); err != nil {
			return err
		}
		if err := brands.DeleteBrandsByUserID(userID); err != nil {
			return err
		}
		return users.DeleteUser(userID)
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}
