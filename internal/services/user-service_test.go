package services

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/helper"
	"github.com/allinwom/storefront/internal/repository"
)

func newUserService(t *testing.T) (UserService, *gormFixture) {
	db := newTestDB(t)
	auth := helper.SetupAuth("s", "r", 15*time.Minute, time.Hour)
	svc := NewUserService(
		db,
		repository.NewUserRepository(db),
		repository.NewStoreRepository(db),
		repository.NewBrandRepository(db),
		auth,
		"5173",
	)
	return svc, &gormFixture{db: db, auth: auth}
}

func TestMeAnnotatesStoreAndBrand(t *testing.T) {
	svc, fx := newUserService(t)
	user := seedUser(t, fx.db, "owner@example.com")

	// before onboarding the profile carries no store fields
	out, err := svc.Me(user.ID)
	require.NoError(t, err)
	assert.Nil(t, out.Store)
	assert.Nil(t, out.Brand)
	assert.Nil(t, out.User.Subdomain)

	seedStore(t, fx.db, user.ID, "cozyshop", true)

	out, err = svc.Me(user.ID)
	require.NoError(t, err)
	require.NotNil(t, out.Store)
	require.NotNil(t, out.Brand)
	require.NotNil(t, out.User.Subdomain)
	assert.Equal(t, "cozyshop", *out.User.Subdomain)
	assert.Equal(t, "cozyshop store", out.Store.StoreName)
}

func TestMeSerializesCamelCase(t *testing.T) {
	svc, fx := newUserService(t)
	user := seedUser(t, fx.db, "owner@example.com")
	seedStore(t, fx.db, user.ID, "cozyshop", true)

	out, err := svc.Me(user.ID)
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	body := string(raw)

	assert.Contains(t, body, `"hasOnboarded"`)
	assert.Contains(t, body, `"loginType"`)
	assert.NotContains(t, body, `"has_onboarded"`)
	assert.NotContains(t, body, `"login_type"`)
	// credential columns never leave the service
	assert.NotContains(t, body, "password")
}

func TestStoreURL(t *testing.T) {
	svc, fx := newUserService(t)
	user := seedUser(t, fx.db, "owner@example.com")

	out, err := svc.StoreURL(user.ID)
	require.NoError(t, err)
	assert.False(t, out.HasStore)

	seedStore(t, fx.db, user.ID, "cozyshop", true)

	out, err = svc.StoreURL(user.ID)
	require.NoError(t, err)
	assert.True(t, out.HasStore)
	assert.Equal(t, "http://localhost:5173/?store=cozyshop", out.StoreURL)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	svc, fx := newUserService(t)
	user := seedUser(t, fx.db, "owner@example.com")

	hashed, err := fx.auth.HashPassword("oldpass")
	require.NoError(t, err)
	require.NoError(t, fx.db.Model(user).Update("password_hash", hashed).Error)

	err = svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "newpass1",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthorized, apperr.From(err).Kind)

	require.NoError(t, svc.ChangePassword(user.ID, dto.ChangePasswordRequest{
		CurrentPassword: "oldpass",
		NewPassword:     "newpass1",
	}))

	var stored domain.User
	require.NoError(t, fx.db.First(&stored, user.ID).Error)
	require.NoError(t, fx.auth.VerifyPassword("newpass1", stored.PasswordHash))
}

func TestDeleteAccountCascades(t *testing.T) {
	svc, fx := newUserService(t)
	user := seedUser(t, fx.db, "owner@example.com")
	seedStore(t, fx.db, user.ID, "cozyshop", true)

	require.NoError(t, svc.DeleteAccount(user.ID))

	var users, stores, brands int64
	require.NoError(t, fx.db.Model(&domain.User{}).Count(&users).Error)
	require.NoError(t, fx.db.Model(&domain.Store{}).Count(&stores).Error)
	require.NoError(t, fx.db.Model(&domain.Brand{}).Count(&brands).Error)
	assert.Zero(t, users)
	assert.Zero(t, stores)
	assert.Zero(t, brands)
}
