package services

import (
	"regexp"
	"strings"
	"time"

	"github.com/allinwom/storefront/infra/queue"
	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 6

type AuthService interface {
	Signup(input dto.SignupRequest) (*domain.User, dto.TokenPair, error)
	Login(input dto.LoginRequest) (*domain.User, dto.TokenPair, error)
	Refresh(refreshToken string) (dto.TokenPair, error)
	CheckEmail(email string) (*dto.CheckEmailResponse, error)
}

type authService struct {
	users    repository.UserRepository
	auth     helper.Auth
	producer *queue.Producer
}

func NewAuthService(users repository.UserRepository, auth helper.Auth, producer *queue.Producer) AuthService {
	return &authService{users: users, auth: auth, producer: producer}
}

func (s *authService) Signup(input dto.SignupRequest) (*domain.User, dto.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	if email == "" || input.Password == "" || name == "" {
		return nil, dto.TokenPair{}, apperr.Validation("email, password and name are required")
	}
	if !emailPattern.MatchString(email) {
		return nil, dto.TokenPair{}, apperr.Validation("invalid email format")
	}
	if len(input.Password) < minPasswordLength {
		return nil, dto.TokenPair{}, apperr.Validation("password must be at least 6 characters")
	}

	if _, err := s.users.FindUserByEmail(email); err == nil {
		return nil, dto.TokenPair{}, apperr.Conflict(apperr.CodeUserExists, "email is already registered")
	} else if !helper.IsNotFound(err) {
		return nil, dto.TokenPair{}, apperr.Internal(err)
	}

	hashed, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, dto.TokenPair{}, apperr.Internal(err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         name,
		Phone:        input.Phone,
		LoginType:    domain.LoginTypeEmail,
		Status:       domain.StatusActive,
		NotifyEmail:  true,
		NotifyPush:   true,
		Language:     "ko",
		Timezone:     "Asia/Seoul",
	}
	if _, err := s.users.CreateUser(user); err != nil {
		// a concurrent signup may land first
		if helper.IsDuplicateKey(err) {
			return nil, dto.TokenPair{}, apperr.Conflict(apperr.CodeUserExists, "email is already registered")
		}
		return nil, dto.TokenPair{}, apperr.Internal(err)
	}

	tokens, err := s.auth.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, dto.TokenPair{}, apperr.Internal(err)
	}

	s.producer.PublishEvent(queue.Event{
		Type:   queue.EventUserSignedUp,
		UserID: user.ID,
		Email:  user.Email,
	})

	return user, tokens, nil
}

func (s *authService) Login(input dto.LoginRequest) (*domain.User, dto.TokenPair, error) {
	if input.Email == "" || input.Password == "" {
		return nil, dto.TokenPair{}, apperr.Validation("email and password are required")
	}

	user, err := s.users.FindUserByEmail(input.Email)
	if err != nil {
		if helper.IsNotFound(err) {
			return nil, dto.TokenPair{}, apperr.Unauthorized(apperr.CodeUnauthorized, "invalid email or password")
		}
		return nil, dto.TokenPair{}, apperr.Internal(err)
	}
	if user.LoginType != domain.LoginTypeEmail {
		return nil, dto.TokenPair{}, apperr.Unauthorized(apperr.CodeUnauthorized, "invalid email or password")
	}
	if !user.IsActive() {
		return nil, dto.TokenPair{}, apperr.Unauthorized(apperr.CodeUserSuspended, "account is deactivated")
	}
	if err := s.auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return nil, dto.TokenPair{}, err
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.SaveUser(user); err != nil {
		return nil, dto.TokenPair{}, apperr.Internal(err)
	}

	tokens, err := s.auth.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, dto.TokenPair{}, apperr.Internal(err)
	}
	return user, tokens, nil
}

func (s *authService) Refresh(refreshToken string) (dto.TokenPair, error) {
	if refreshToken == "" {
		return dto.TokenPair{}, apperr.Validation("refresh token is required")
	}

	claims, err := s.auth.VerifyRefreshToken(refreshToken)
	if err != nil {
		return dto.TokenPair{}, err
	}

	user, err := s.users.FindUserById(claims.UserID)
	if err != nil || !user.IsActive() {
		return dto.TokenPair{}, apperr.Unauthorized(apperr.CodeInvalidToken, "invalid refresh token")
	}

	tokens, err := s.auth.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return dto.TokenPair{}, apperr.Internal(err)
	}
	return tokens, nil
}

func (s *authService) CheckEmail(email string) (*dto.CheckEmailResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation("invalid email format")
	}

	_, err := s.users.FindUserByEmail(email)
	switch {
	case helper.IsNotFound(err):
		return &dto.CheckEmailResponse{Available: true, Message: "email is available"}, nil
	case err == nil:
		return &dto.CheckEmailResponse{Available: false, Message: "email is already in use"}, nil
	default:
		return nil, apperr.Internal(err)
	}
}
