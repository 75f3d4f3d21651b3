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

type advertisementService struct {
	propertyCollection      *mongo.Collection
	advertisementCollection *mongo.Collection
}

func NewAdvertisementService(db *mongo.Database) AdvertisementService {
	return &advertisementService{
		propertyCollection:      util.GetCollection(db, common.PropertyCollection),
		advertisementCollection: util.GetCollection(db, common.AdvertisementCollection),
	}
}

// AdvertiseProperty promotes a verified property. The property must
// exist with status verified, and must not already be advertised; the
// unique property_id index catches racing advertisers the application
// check misses.
func (s *advertisementService) AdvertiseProperty(ctx context.Context, propertyID primitive.ObjectID) (primitive.ObjectID, error) {
	var property models.Property
	err := s.propertyCollection.FindOne(ctx, bson.M{"_id": propertyID}).Decode(&property)
	if err == mongo.ErrNoDocuments {
		return primitive.NilObjectID, ErrNotFound
	}
	if err != nil {
		return primitive.NilObjectID, err
	}

	if property.Status != models.PropertyStatusVerified {
		return primitive.NilObjectID, ErrNotVerified
	}

	propertyHex := propertyID.Hex()
	existing := s.advertisementCollection.FindOne(ctx, bson.M{"property_id": propertyHex})
	if existing.Err() == nil {
		return primitive.NilObjectID, ErrAlreadyAdvertised
	}
	if existing.Err() != mongo.ErrNoDocuments {
		return primitive.NilObjectID, existing.Err()
	}

	ad := models.Advertisement{
		Id:          primitive.NewObjectID(),
		PropertyId:  propertyHex,
		Title:       property.Title,
		Image:       property.Image,
		Location:    property.Location,
		PriceMin:    property.PriceMin,
		PriceMax:    property.PriceMax,
		Installment: property.Installment,
		Status:      property.Status,
		CreatedAt:   time.Now(),
	}

	if _, err := s.advertisementCollection.InsertOne(ctx, ad); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrAlreadyAdvertised
		}
		return primitive.NilObjectID, err
	}

	return ad.Id, nil
}

func (s *advertisementService) GetAdvertisedProperties(ctx context.Context, pagination util.PaginationArgs) ([]models.Advertisement, int64, error) {
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.advertisementCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var ads []models.Advertisement
	if err := cursor.All(ctx, &ads); err != nil {
		return nil, 0, err
	}

	count, err := s.advertisementCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	return ads, count, nil
}

func (s *advertisementService) RemoveAdvertisement(ctx context.Context, propertyID string) error {
	result, err := s.advertisementCollection.DeleteOne(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}

// GetAdvertisableProperties lists verified, installment-eligible
// properties that are not yet in the advertisement collection.
func (s *advertisementService) GetAdvertisableProperties(ctx context.Context) ([]models.Property, error) {
	cursor, err := s.advertisementCollection.Find(
		ctx,
		bson.M{},
		options.Find().SetProjection(bson.M{"property_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var advertised []struct {
		PropertyId string `bson:"property_id"`
	}
	if err := cursor.All(ctx, &advertised); err != nil {
		return nil, err
	}

	advertisedIDs := make([]primitive.ObjectID, 0, len(advertised))
	for _, ad := range advertised {
		oid, err := primitive.ObjectIDFromHex(ad.PropertyId)
		if err != nil {
			continue
		}
		advertisedIDs = append(advertisedIDs, oid)
	}

	filter := bson.M{
		"status":      models.PropertyStatusVerified,
		"installment": bson.M{"$gt": 0},
	}
	if len(advertisedIDs) > 0 {
		filter["_id"] = bson.M{"$nin": advertisedIDs}
	}

	propCursor, err := s.propertyCollection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer propCursor.Close(ctx)

	var properties []models.Property
	if err := propCursor.All(ctx, &properties); err != nil {
		return nil, err
	}

	return properties, nil
}
