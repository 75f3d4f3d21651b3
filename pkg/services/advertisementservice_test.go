package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

const adTestDB = "brickbase_ads_test"

func TestAdvertisePropertyPreconditions(t *testing.T) {
	db := setupTestDB(t, adTestDB, "properties", "advertisements")
	svc := NewAdvertisementService(db)
	ctx := context.Background()

	_, err := svc.AdvertiseProperty(ctx, primitive.NewObjectID())
	assert.Equal(t, ErrNotFound, err)

	available := seedProperty(t, db, models.PropertyStatusAvailable)
	_, err = svc.AdvertiseProperty(ctx, available)
	assert.Equal(t, ErrNotVerified, err)

	rejected := seedProperty(t, db, models.PropertyStatusRejected)
	_, err = svc.AdvertiseProperty(ctx, rejected)
	assert.Equal(t, ErrNotVerified, err)
}

func TestAdvertisePropertyOncePerListing(t *testing.T) {
	db := setupTestDB(t, adTestDB, "properties", "advertisements")
	svc := NewAdvertisementService(db)
	ctx := context.Background()

	verified := seedProperty(t, db, models.PropertyStatusVerified)

	adID, err := svc.AdvertiseProperty(ctx, verified)
	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, adID)

	_, err = svc.AdvertiseProperty(ctx, verified)
	assert.Equal(t, ErrAlreadyAdvertised, err)

	ads, count, err := svc.GetAdvertisedProperties(ctx, util.PaginationArgs{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, ads, 1)
	assert.Equal(t, verified.Hex(), ads[0].PropertyId)
	assert.Equal(t, "Brick house on the hill", ads[0].Title)
}

func TestRemoveAdvertisement(t *testing.T) {
	db := setupTestDB(t, adTestDB, "properties", "advertisements")
	svc := NewAdvertisementService(db)
	ctx := context.Background()

	verified := seedProperty(t, db, models.PropertyStatusVerified)
	_, err := svc.AdvertiseProperty(ctx, verified)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveAdvertisement(ctx, verified.Hex()))
	assert.Equal(t, ErrNotFound, svc.RemoveAdvertisement(ctx, verified.Hex()))
}

func TestGetAdvertisableProperties(t *testing.T) {
	db := setupTestDB(t, adTestDB, "properties", "advertisements")
	propSvc := NewPropertyService(db)
	svc := NewAdvertisementService(db)
	ctx := context.Background()

	makeProperty := func(installment float64) primitive.ObjectID {
		id, err := propSvc.CreateProperty(ctx, testAgent, models.PropertyRequest{
			Title:       "Installment Friendly Home",
			Location:    "Riverbend",
			Image:       "https://img.example.com/home.jpg",
			PriceMin:    50000,
			PriceMax:    60000,
			Installment: installment,
		})
		require.NoError(t, err)
		return id
	}

	candidate := makeProperty(1200)
	advertised := makeProperty(900)
	noInstallment := makeProperty(0)
	stillAvailable := makeProperty(700)

	for _, id := range []primitive.ObjectID{candidate, advertised, noInstallment} {
		require.NoError(t, propSvc.SetPropertyStatus(ctx, id, models.PropertyStatusVerified))
	}
	_ = stillAvailable

	_, err := svc.AdvertiseProperty(ctx, advertised)
	require.NoError(t, err)

	candidates, err := svc.GetAdvertisableProperties(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, candidate, candidates[0].Id)
}
