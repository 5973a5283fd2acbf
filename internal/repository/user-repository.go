package repository

import (
	"errors"
	"strings"

	"github.com/allinwom/storefront/internal/domain"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserById(userID uint) (*domain.User, error)
	SaveUser(user *domain.User) error
	DeleteUser(userID uint) error
	SetHasOnboarded(userID uint, v bool) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}
	email = strings.ToLower(strings.TrimSpace(email))

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) FindUserById(userID uint) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.First(user, userID).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}
	return r.db.Save(user).Error
}

func (r *userRepository) DeleteUser(userID uint) error {
	return r.db.Delete(&domain.User{}, userID).Error
}

func (r *userRepository) SetHasOnboarded(userID uint, v bool) error {
	return r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Update("has_onboarded", v).Error
}
