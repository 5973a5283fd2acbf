package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

func newAuthService(t *testing.T) (AuthService, *gormFixture) {
	db := newTestDB(t)
	auth := helper.SetupAuth("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	svc := NewAuthService(repository.NewUserRepository(db), auth, nil)
	return svc, &gormFixture{db: db, auth: auth}
}

type gormFixture struct {
	db   *gorm.DB
	auth helper.Auth
}

func TestSignupAndLogin(t *testing.T) {
	svc, fx := newAuthService(t)

	user, tokens, err := svc.Signup(dto.SignupRequest{
		Email:    "New.User@Example.com",
		Password: "secret1",
		Name:     "New User",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.user@example.com", user.Email)
	assert.NotEmpty(t, tokens.Token)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	logged, _, err := svc.Login(dto.LoginRequest{Email: "new.user@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotNil(t, logged.LastLoginAt)

	_ = fx
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []dto.SignupRequest{
		{Email: "", Password: "secret1", Name: "n"},
		{Email: "not-an-email", Password: "secret1", Name: "n"},
		{Email: "a@b.com", Password: "short", Name: "n"},
		{Email: "a@b.com", Password: "secret1", Name: ""},
	}
	for _, req := range cases {
		_, _, err := svc.Signup(req)
		require.Error(t, err, "request %+v should fail", req)
		assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	req := dto.SignupRequest{Email: "dup@example.com", Password: "secret1", Name: "First"}
	_, _, err := svc.Signup(req)
	require.NoError(t, err)

	_, _, err = svc.Signup(req)
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindConflict, ae.Kind)
	assert.Equal(t, apperr.CodeUserExists, ae.Code)
}

func TestLoginRejectsWrongPasswordAndUnknownUser(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Signup(dto.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "n"})
	require.NoError(t, err)

	_, _, err = svc.Login(dto.LoginRequest{Email: "a@b.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)

	_, _, err = svc.Login(dto.LoginRequest{Email: "ghost@b.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)
}

func TestLoginRejectsSuspendedAccount(t *testing.T) {
	svc, fx := newAuthService(t)

	user, _, err := svc.Signup(dto.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "n"})
	require.NoError(t, err)
	require.NoError(t, fx.db.Model(user).Update("status", domain.StatusSuspended).Error)

	_, _, err = svc.Login(dto.LoginRequest{Email: "a@b.com", Password: "secret1"})
	require.Error(t, err)
	ae := apperr.From(err)
	assert.Equal(t, apperr.KindUnauthorized, ae.Kind)
	assert.Equal(t, apperr.CodeUserSuspended, ae.Code)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	svc, _ := newAuthService(t)

	_, tokens, err := svc.Signup(dto.SignupRequest{Email: "a@b.com", Password: "secret1", Name: "n"})
	require.NoError(t, err)

	pair, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Token)

	// an access token is not a refresh token
	_, err = svc.Refresh(tokens.Token)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)
}

func TestCheckEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Signup(dto.SignupRequest{Email: "taken@b.com", Password: "secret1", Name: "n"})
	require.NoError(t, err)

	out, err := svc.CheckEmail("taken@b.com")
	require.NoError(t, err)
	assert.False(t, out.Available)

	out, err = svc.CheckEmail("free@b.com")
	require.NoError(t, err)
	assert.True(t, out.Available)

	_, err = svc.CheckEmail("nonsense")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}
