package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

type engagementService struct {
	reviewCollection   *mongo.Collection
	wishlistCollection *mongo.Collection
	reportCollection   *mongo.Collection
}

func NewEngagementService(db *mongo.Database) EngagementService {
	return &engagementService{
		reviewCollection:   util.GetCollection(db, common.ReviewCollection),
		wishlistCollection: util.GetCollection(db, common.WishlistCollection),
		reportCollection:   util.GetCollection(db, common.ReportCollection),
	}
}

func (s *engagementService) CreateReview(ctx context.Context, email, name string, req models.ReviewRequest) (primitive.ObjectID, error) {
	review := models.Review{
		Id:           primitive.NewObjectID(),
		PropertyId:   req.PropertyId,
		Title:        req.Title,
		ReviewerName: name,
		Email:        email,
		Review:       req.Review,
		Rating:       req.Rating,
		CreatedAt:    time.Now(),
	}

	if _, err := s.reviewCollection.InsertOne(ctx, review); err != nil {
		return primitive.NilObjectID, err
	}

	return review.Id, nil
}

func (s *engagementService) GetPropertyReviews(ctx context.Context, propertyID string, pagination util.PaginationArgs) ([]models.Review, int64, error) {
	filter := bson.M{}
	if !common.IsEmptyString(propertyID) {
		filter["property_id"] = propertyID
	}

	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.reviewCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, 0, err
	}

	count, err := s.reviewCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (s *engagementService) GetMyReviews(ctx context.Context, email string) ([]models.Review, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.reviewCollection.Find(ctx, bson.M{"email": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (s *engagementService) GetLatestReviews(ctx context.Context, limit int64) ([]models.Review, error) {
	if limit <= 0 {
		limit = 3
	}

	findOptions := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.reviewCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

// DeleteReview lets a reviewer remove their own review, or an admin
// remove anyone's.
func (s *engagementService) DeleteReview(ctx context.Context, reviewID primitive.ObjectID, requesterEmail string, isAdmin bool) error {
	filter := bson.M{"_id": reviewID}
	if !isAdmin {
		filter["email"] = requesterEmail
	}

	result, err := s.reviewCollection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// AddToWishlist inserts a wishlist snapshot, once per property per user.
func (s *engagementService) AddToWishlist(ctx context.Context, email string, req models.WishlistRequest) (primitive.ObjectID, error) {
	existing := s.wishlistCollection.FindOne(ctx, bson.M{"email": email, "property_id": req.PropertyId})
	if existing.Err() == nil {
		return primitive.NilObjectID, ErrAlreadyWishlisted
	}
	if existing.Err() != mongo.ErrNoDocuments {
		return primitive.NilObjectID, existing.Err()
	}

	status := models.PropertyStatusAvailable
	if !common.IsEmptyString(req.Status) {
		parsed, err := models.PropertyStatus("").ParsePropertyStatus(req.Status)
		if err != nil {
			return primitive.NilObjectID, err
		}
		status = parsed
	}

	entry := models.WishlistEntry{
		Id:         primitive.NewObjectID(),
		PropertyId: req.PropertyId,
		Email:      email,
		Title:      req.Title,
		Location:   req.Location,
		Image:      req.Image,
		AgentName:  req.AgentName,
		PriceMin:   req.PriceMin,
		PriceMax:   req.PriceMax,
		Status:     status,
		CreatedAt:  time.Now(),
	}

	if _, err := s.wishlistCollection.InsertOne(ctx, entry); err != nil {
		return primitive.NilObjectID, err
	}

	return entry.Id, nil
}

func (s *engagementService) GetWishlist(ctx context.Context, email string) ([]models.WishlistEntry, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.wishlistCollection.Find(ctx, bson.M{"email": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.WishlistEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

func (s *engagementService) RemoveFromWishlist(ctx context.Context, entryID primitive.ObjectID, email string) error {
	result, err := s.wishlistCollection.DeleteOne(ctx, bson.M{"_id": entryID, "email": email})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *engagementService) CreateReport(ctx context.Context, email string, req models.ReportRequest) (primitive.ObjectID, error) {
	report := models.Report{
		Id:         primitive.NewObjectID(),
		PropertyId: req.PropertyId,
		Title:      req.Title,
		Email:      email,
		Reason:     req.Reason,
		Details:    req.Details,
		CreatedAt:  time.Now(),
	}

	if _, err := s.reportCollection.InsertOne(ctx, report); err != nil {
		return primitive.NilObjectID, err
	}

	return report.Id, nil
}

func (s *engagementService) GetReports(ctx context.Context, pagination util.PaginationArgs) ([]models.Report, int64, error) {
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.reportCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var reports []models.Report
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, 0, err
	}

	count, err := s.reportCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return reports, count, nil
}

func (s *engagementService) DeleteReport(ctx context.Context, reportID primitive.ObjectID) error {
	result, err := s.reportCollection.DeleteOne(ctx, bson.M{"_id": reportID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
