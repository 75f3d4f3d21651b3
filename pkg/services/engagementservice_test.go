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

const engagementTestDB = "brickbase_engagement_test"

func TestReviewLifecycle(t *testing.T) {
	db := setupTestDB(t, engagementTestDB, "reviews", "wishlists", "reports")
	svc := NewEngagementService(db)
	ctx := context.Background()

	propertyHex := primitive.NewObjectID().Hex()

	reviewID, err := svc.CreateReview(ctx, "ada@example.com", "Ada Buyer", models.ReviewRequest{
		PropertyId: propertyHex,
		Title:      "Brick house on the hill",
		Review:     "Lovely place, quick agent responses.",
		Rating:     5,
	})
	require.NoError(t, err)

	reviews, count, err := svc.GetPropertyReviews(ctx, propertyHex, util.PaginationArgs{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Ada Buyer", reviews[0].ReviewerName)

	mine, err := svc.GetMyReviews(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// Another user cannot delete it; the author can.
	err = svc.DeleteReview(ctx, reviewID, "stranger@example.com", false)
	assert.Equal(t, ErrNotFound, err)

	require.NoError(t, svc.DeleteReview(ctx, reviewID, "ada@example.com", false))

	_, count, err = svc.GetPropertyReviews(ctx, propertyHex, util.PaginationArgs{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestDeleteReviewAsAdmin(t *testing.T) {
	db := setupTestDB(t, engagementTestDB, "reviews")
	svc := NewEngagementService(db)
	ctx := context.Background()

	reviewID, err := svc.CreateReview(ctx, "ada@example.com", "Ada Buyer", models.ReviewRequest{
		PropertyId: primitive.NewObjectID().Hex(),
		Title:      "Flat by the lake",
		Review:     "Great view.",
		Rating:     4,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteReview(ctx, reviewID, "admin@example.com", true))
}

func TestGetLatestReviewsLimit(t *testing.T) {
	db := setupTestDB(t, engagementTestDB, "reviews")
	svc := NewEngagementService(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreateReview(ctx, "ada@example.com", "Ada Buyer", models.ReviewRequest{
			PropertyId: primitive.NewObjectID().Hex(),
			Title:      "Listing",
			Review:     "Fine.",
			Rating:     3,
		})
		require.NoError(t, err)
	}

	latest, err := svc.GetLatestReviews(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, latest, 3)
}

func TestWishlistDuplicateRejected(t *testing.T) {
	db := setupTestDB(t, engagementTestDB, "wishlists")
	svc := NewEngagementService(db)
	ctx := context.Background()

	req := models.WishlistRequest{
		PropertyId: primitive.NewObjectID().Hex(),
		Title:      "Brick house on the hill",
		Location:   "Hilltown",
		Status:     "verified",
	}

	entryID, err := svc.AddToWishlist(ctx, "ada@example.com", req)
	require.NoError(t, err)

	_, err = svc.AddToWishlist(ctx, "ada@example.com", req)
	assert.Equal(t, ErrAlreadyWishlisted, err)

	// A different user wishlisting the same property is fine.
	_, err = svc.AddToWishlist(ctx, "bob@example.com", req)
	require.NoError(t, err)

	entries, err := svc.GetWishlist(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.PropertyStatusVerified, entries[0].Status)

	// Removal is scoped to the owner.
	assert.Equal(t, ErrNotFound, svc.RemoveFromWishlist(ctx, entryID, "bob@example.com"))
	require.NoError(t, svc.RemoveFromWishlist(ctx, entryID, "ada@example.com"))
}

func TestReportLifecycle(t *testing.T) {
	db := setupTestDB(t, engagementTestDB, "reports")
	svc := NewEngagementService(db)
	ctx := context.Background()

	reportID, err := svc.CreateReport(ctx, "ada@example.com", models.ReportRequest{
		PropertyId: primitive.NewObjectID().Hex(),
		Title:      "Brick house on the hill",
		Reason:     "misleading photos",
	})
	require.NoError(t, err)

	reports, count, err := svc.GetReports(ctx, util.PaginationArgs{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	require.Len(t, reports, 1)
	assert.Equal(t, "misleading photos", reports[0].Reason)

	require.NoError(t, svc.DeleteReport(ctx, reportID))
	assert.Equal(t, ErrNotFound, svc.DeleteReport(ctx, reportID))
}
