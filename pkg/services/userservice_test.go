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

func TestCreateUserIsIdempotentPerEmail(t *testing.T) {
	db := setupTestDB(t, "brickbase_users_test", "users")
	svc := NewUserService(db)
	ctx := context.Background()

	req := models.UserRequest{Name: "Ada Buyer", Email: "ada@example.com"}

	firstID, inserted, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NotEqual(t, primitive.NilObjectID, firstID)

	secondID, inserted, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, firstID, secondID)

	count, err := db.Collection("users").CountDocuments(ctx, bson.M{"email": req.Email})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateUserKeepsRequestedRole(t *testing.T) {
	db := setupTestDB(t, "brickbase_users_test", "users")
	svc := NewUserService(db)
	ctx := context.Background()

	req := models.UserRequest{Name: "Sam Agent", Email: "sam@example.com", Role: models.RoleAgent}

	_, inserted, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)
	assert.True(t, inserted)

	role, err := svc.GetUserRole(ctx, req.Email)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgent, role)

	// Without a role in the registration payload, lookup falls back to
	// the plain user role.
	_, _, err = svc.CreateUser(ctx, models.UserRequest{Name: "Ada Buyer", Email: "ada@example.com"})
	require.NoError(t, err)

	role, err = svc.GetUserRole(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)
}

func TestGetUserRoleDefaultsToUser(t *testing.T) {
	db := setupTestDB(t, "brickbase_users_test", "users")
	svc := NewUserService(db)
	ctx := context.Background()

	// A record written without any role field at all.
	_, err := db.Collection("users").InsertOne(ctx, bson.M{
		"_id":   primitive.NewObjectID(),
		"name":  "No Role",
		"email": "norole@example.com",
	})
	require.NoError(t, err)

	role, err := svc.GetUserRole(ctx, "norole@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	_, err = svc.GetUserRole(ctx, "nobody@example.com")
	assert.Equal(t, ErrNotFound, err)
}

func TestSetUserRoleAndFraudMarking(t *testing.T) {
	db := setupTestDB(t, "brickbase_users_test", "users")
	svc := NewUserService(db)
	ctx := context.Background()

	userID, _, err := svc.CreateUser(ctx, models.UserRequest{Name: "Future Agent", Email: "agent@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.SetUserRole(ctx, userID, models.RoleAgent))

	role, err := svc.GetUserRole(ctx, "agent@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAgent, role)

	require.NoError(t, svc.MarkFraudulent(ctx, userID))

	user, err := svc.GetUserByEmail(ctx, "agent@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusFraud, user.Status)

	// Fraud marking leaves the role untouched.
	assert.Equal(t, models.RoleAgent, user.Role)

	assert.Equal(t, ErrNotFound, svc.SetUserRole(ctx, primitive.NewObjectID(), models.RoleAdmin))
	assert.Equal(t, ErrNotFound, svc.MarkFraudulent(ctx, primitive.NewObjectID()))
}

func TestDeleteAgentProperties(t *testing.T) {
	db := setupTestDB(t, "brickbase_users_test", "users", "properties")
	svc := NewUserService(db)
	ctx := context.Background()

	props := db.Collection("properties")
	for i := 0; i < 3; i++ {
		_, err := props.InsertOne(ctx, bson.M{
			"_id":    primitive.NewObjectID(),
			"title":  "Listing",
			"status": models.PropertyStatusAvailable,
			"agent":  bson.M{"name": "Sam Agent", "email": "sam@example.com"},
		})
		require.NoError(t, err)
	}
	_, err := props.InsertOne(ctx, bson.M{
		"_id":   primitive.NewObjectID(),
		"title": "Other listing",
		"agent": bson.M{"name": "Other", "email": "other@example.com"},
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteAgentProperties(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	remaining, err := props.CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), remaining)
}

func TestGetUsersPagination(t *testing.T) {
	db := setupTestDB(t, "brickbase_users_test", "users")
	svc := NewUserService(db)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, _, err := svc.CreateUser(ctx, models.UserRequest{Name: "User", Email: email})
		require.NoError(t, err)
	}

	users, count, err := svc.GetUsers(ctx, util.PaginationArgs{Limit: 2, Skip: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, users, 2)
}
