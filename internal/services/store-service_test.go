package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/domain"
	"github.com/allinwom/storefront/internal/repository"
)

func TestStoreBySubdomainHidesInactive(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoreService(repository.NewStoreRepository(db))

	active := seedUser(t, db, "active@example.com")
	inactive := seedUser(t, db, "inactive@example.com")
	seedStore(t, db, active.ID, "livestore", true)
	dead := seedStore(t, db, inactive.ID, "deadstore", true)
	require.NoError(t, db.Model(dead).Update("status", domain.StatusInactive).Error)

	out, err := svc.StoreBySubdomain("livestore")
	require.NoError(t, err)
	assert.Equal(t, "livestore", out.Store.Subdomain)

	_, err = svc.StoreBySubdomain("deadstore")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.From(err).Kind)
}

func TestPublicStoresOnlyListsPublished(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoreService(repository.NewStoreRepository(db))

	u1 := seedUser(t, db, "u1@example.com")
	u2 := seedUser(t, db, "u2@example.com")
	u3 := seedUser(t, db, "u3@example.com")
	seedStore(t, db, u1.ID, "published-one", true)
	seedStore(t, db, u2.ID, "published-two", true)
	seedStore(t, db, u3.ID, "draft", false)

	out, err := svc.PublicStores()
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, entry := range out {
		assert.NotEqual(t, "draft", entry.Subdomain)
		assert.NotEmpty(t, entry.BrandName)
	}
}

func TestStoresByTemplateOrdersByVisitors(t *testing.T) {
	db := newTestDB(t)
	svc := NewStoreService(repository.NewStoreRepository(db))

	u1 := seedUser(t, db, "u1@example.com")
	u2 := seedUser(t, db, "u2@example.com")
	quiet := seedStore(t, db, u1.ID, "quiet", true)
	busy := seedStore(t, db, u2.ID, "busy", true)
	require.NoError(t, db.Model(busy).Update("visitor_count", 500).Error)
	require.NoError(t, db.Model(quiet).Update("visitor_count", 3).Error)

	out, err := svc.StoresByTemplate("Cozy")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "busy", out[0].Subdomain)
	assert.Equal(t, "quiet", out[1].Subdomain)

	_, err = svc.StoresByTemplate("Vaporwave")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.From(err).Kind)
}
