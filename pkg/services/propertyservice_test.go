package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

const propertyTestDB = "brickbase_properties_test"

var propertyTestCollections = []string{
	"properties", "reviews", "reports", "wishlists", "advertisements",
}

var testAgent = models.Agent{Name: "Sam Agent", Email: "sam@example.com"}

func createTestProperty(t *testing.T, svc PropertyService) primitive.ObjectID {
	t.Helper()

	id, err := svc.CreateProperty(context.Background(), testAgent, models.PropertyRequest{
		Title:    "Sunny Two Bedroom Flat",
		Location: "Lakeside",
		Image:    "https://img.example.com/flat.jpg",
		PriceMin: 80000,
		PriceMax: 95000,
	})
	require.NoError(t, err)
	return id
}

func TestCreatePropertySlugsAndDefaults(t *testing.T) {
	db := setupTestDB(t, propertyTestDB, propertyTestCollections...)
	svc := NewPropertyService(db)
	ctx := context.Background()

	id := createTestProperty(t, svc)

	property, err := svc.GetProperty(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "sunny-two-bedroom-flat", property.Slug)
	assert.Equal(t, models.PropertyStatusAvailable, property.Status)
	assert.Equal(t, testAgent.Email, property.Agent.Email)
	assert.False(t, property.CreatedAt.IsZero())
}

func TestGetPropertiesStatusFilter(t *testing.T) {
	db := setupTestDB(t, propertyTestDB, propertyTestCollections...)
	svc := NewPropertyService(db)
	ctx := context.Background()

	id := createTestProperty(t, svc)
	createTestProperty(t, svc)

	require.NoError(t, svc.SetPropertyStatus(ctx, id, models.PropertyStatusVerified))

	verified, count, err := svc.GetProperties(ctx, "verified", util.PaginationArgs{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, verified, 1)
	assert.Equal(t, id, verified[0].Id)

	_, _, err = svc.GetProperties(ctx, "bogus", util.PaginationArgs{Limit: 10})
	assert.Error(t, err)
}

func TestSetPropertyStatusOnlyFromAvailable(t *testing.T) {
	db := setupTestDB(t, propertyTestDB, propertyTestCollections...)
	svc := NewPropertyService(db)
	ctx := context.Background()

	id := createTestProperty(t, svc)

	require.NoError(t, svc.SetPropertyStatus(ctx, id, models.PropertyStatusVerified))

	// A second transition attempt finds nothing in available state.
	assert.Equal(t, ErrNotFound, svc.SetPropertyStatus(ctx, id, models.PropertyStatusRejected))
	assert.Equal(t, ErrNotFound, svc.SetPropertyStatus(ctx, primitive.NewObjectID(), models.PropertyStatusVerified))

	property, err := svc.GetProperty(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.PropertyStatusVerified, property.Status)
}

func TestUpdatePropertyOwnerOnlyAndReslug(t *testing.T) {
	db := setupTestDB(t, propertyTestDB, propertyTestCollections...)
	svc := NewPropertyService(db)
	ctx := context.Background()

	id := createTestProperty(t, svc)

	err := svc.UpdateProperty(ctx, id, "intruder@example.com", models.PropertyUpdateRequest{Location: "Elsewhere"})
	assert.Equal(t, ErrNotFound, err)

	require.NoError(t, svc.UpdateProperty(ctx, id, testAgent.Email, models.PropertyUpdateRequest{
		Title: "Renovated Lakeside Flat",
	}))

	property, err := svc.GetProperty(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Renovated Lakeside Flat", property.Title)
	assert.Equal(t, "renovated-lakeside-flat", property.Slug)
	assert.Equal(t, "Lakeside", property.Location)
}

func TestDeletePropertyCascades(t *testing.T) {
	db := setupTestDB(t, propertyTestDB, propertyTestCollections...)
	svc := NewPropertyService(db)
	ctx := context.Background()

	id := createTestProperty(t, svc)
	hex := id.Hex()

	_, err := db.Collection("reviews").InsertOne(ctx, bson.M{"_id": primitive.NewObjectID(), "property_id": hex})
	require.NoError(t, err)
	_, err = db.Collection("wishlists").InsertOne(ctx, bson.M{"_id": primitive.NewObjectID(), "property_id": hex})
	require.NoError(t, err)

	// A non-owner, non-admin caller cannot delete it.
	_, err = svc.DeleteProperty(ctx, id, "intruder@example.com", false)
	assert.Equal(t, ErrNotFound, err)

	cascade, err := svc.DeleteProperty(ctx, id, testAgent.Email, false)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cascade.DeletedProperty)
	assert.Equal(t, int64(1), cascade.DeletedReviews)
	assert.Equal(t, int64(1), cascade.DeletedWishlists)

	_, err = svc.GetProperty(ctx, id)
	assert.Equal(t, ErrNotFound, err)
}

func TestDeletePropertyAsAdmin(t *testing.T) {
	db := setupTestDB(t, propertyTestDB, propertyTestCollections...)
	svc := NewPropertyService(db)
	ctx := context.Background()

	id := createTestProperty(t, svc)

	cascade, err := svc.DeleteProperty(ctx, id, "admin@example.com", true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cascade.DeletedProperty)
}
