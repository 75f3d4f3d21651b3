package services

import (
	"context"
	"time"

	"github.com/gosimple/slug"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

type propertyService struct {
	client                  *mongo.Client
	propertyCollection      *mongo.Collection
	reviewCollection        *mongo.Collection
	reportCollection        *mongo.Collection
	wishlistCollection      *mongo.Collection
	advertisementCollection *mongo.Collection
}

func NewPropertyService(db *mongo.Database) PropertyService {
	return &propertyService{
		client:                  db.Client(),
		propertyCollection:      util.GetCollection(db, common.PropertyCollection),
		reviewCollection:        util.GetCollection(db, common.ReviewCollection),
		reportCollection:        util.GetCollection(db, common.ReportCollection),
		wishlistCollection:      util.GetCollection(db, common.WishlistCollection),
		advertisementCollection: util.GetCollection(db, common.AdvertisementCollection),
	}
}

func (s *propertyService) CreateProperty(ctx context.Context, agent models.Agent, req models.PropertyRequest) (primitive.ObjectID, error) {
	now := time.Now()
	property := models.Property{
		Id:          primitive.NewObjectID(),
		Title:       req.Title,
		Slug:        slug.Make(req.Title),
		Location:    req.Location,
		Image:       req.Image,
		Description: req.Description,
		Agent:       agent,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		Installment: req.Installment,
		Status:      models.PropertyStatusAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.propertyCollection.InsertOne(ctx, property); err != nil {
		return primitive.NilObjectID, err
	}

	return property.Id, nil
}

func (s *propertyService) GetProperties(ctx context.Context, status string, pagination util.PaginationArgs) ([]models.Property, int64, error) {
	filter := bson.M{}
	if !common.IsEmptyString(status) {
		parsed, err := models.PropertyStatus("").ParsePropertyStatus(status)
		if err != nil {
			return nil, 0, err
		}
		filter["status"] = parsed
	}

	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetCreatedAtSortBson(pagination.Sort))

	cursor, err := s.propertyCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, err
	}

	count, err := s.propertyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return properties, count, nil
}

func (s *propertyService) GetProperty(ctx context.Context, propertyID primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	err := s.propertyCollection.FindOne(ctx, bson.M{"_id": propertyID}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &property, nil
}

func (s *propertyService) GetAgentProperties(ctx context.Context, agentEmail string, pagination util.PaginationArgs) ([]models.Property, int64, error) {
	filter := bson.M{"agent.email": agentEmail}
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(util.GetCreatedAtSortBson(pagination.Sort))

	cursor, err := s.propertyCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, err
	}

	count, err := s.propertyCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return properties, count, nil
}

// UpdateProperty patches display fields on a property the caller owns.
// A title change re-slugs the property.
func (s *propertyService) UpdateProperty(ctx context.Context, propertyID primitive.ObjectID, agentEmail string, req models.PropertyUpdateRequest) error {
	set := bson.M{"updated_at": time.Now()}
	if !common.IsEmptyString(req.Title) {
		set["title"] = req.Title
		set["slug"] = slug.Make(req.Title)
	}
	if !common.IsEmptyString(req.Location) {
		set["location"] = req.Location
	}
	if !common.IsEmptyString(req.Image) {
		set["image"] = req.Image
	}
	if !common.IsEmptyString(req.Description) {
		set["description"] = req.Description
	}
	if req.PriceMin > 0 {
		set["price_min"] = req.PriceMin
	}
	if req.PriceMax > 0 {
		set["price_max"] = req.PriceMax
	}
	if req.Installment > 0 {
		set["installment"] = req.Installment
	}

	result, err := s.propertyCollection.UpdateOne(
		ctx,
		bson.M{"_id": propertyID, "agent.email": agentEmail},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// SetPropertyStatus performs the admin verify/reject transition.
func (s *propertyService) SetPropertyStatus(ctx context.Context, propertyID primitive.ObjectID, status models.PropertyStatus) error {
	result, err := s.propertyCollection.UpdateOne(
		ctx,
		bson.M{"_id": propertyID, "status": models.PropertyStatusAvailable},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteProperty removes a property and cascade-deletes its dependent
// reviews, reports, wishlist entries and advertisements in one
// transaction. Owners delete their own; admins delete anything.
func (s *propertyService) DeleteProperty(ctx context.Context, propertyID primitive.ObjectID, requesterEmail string, isAdmin bool) (*models.CascadeResult, error) {
	filter := bson.M{"_id": propertyID}
	if !isAdmin {
		filter["agent.email"] = requesterEmail
	}

	cascade := &models.CascadeResult{}
	propertyHex := propertyID.Hex()

	callback := func(sc mongo.SessionContext) (any, error) {
		deleted, err := s.propertyCollection.DeleteOne(sc, filter)
		if err != nil {
			return nil, err
		}
		if deleted.DeletedCount == 0 {
			return nil, ErrNotFound
		}
		cascade.DeletedProperty = deleted.DeletedCount

		byProperty := bson.M{"property_id": propertyHex}

		reviews, err := s.reviewCollection.DeleteMany(sc, byProperty)
		if err != nil {
			return nil, err
		}
		cascade.DeletedReviews = reviews.DeletedCount

		reports, err := s.reportCollection.DeleteMany(sc, byProperty)
		if err != nil {
			return nil, err
		}
		cascade.DeletedReports = reports.DeletedCount

		wishlists, err := s.wishlistCollection.DeleteMany(sc, byProperty)
		if err != nil {
			return nil, err
		}
		cascade.DeletedWishlists = wishlists.DeletedCount

		ads, err := s.advertisementCollection.DeleteMany(sc, byProperty)
		if err != nil {
			return nil, err
		}
		cascade.DeletedAds = ads.DeletedCount

		return cascade, nil
	}

	if _, err := ExecuteTransaction(ctx, s.client, callback); err != nil {
		return nil, err
	}

	return cascade, nil
}
