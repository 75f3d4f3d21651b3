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

type offerService struct {
	client                  *mongo.Client
	offerCollection         *mongo.Collection
	propertyCollection      *mongo.Collection
	reviewCollection        *mongo.Collection
	reportCollection        *mongo.Collection
	wishlistCollection      *mongo.Collection
	advertisementCollection *mongo.Collection
}

func NewOfferService(db *mongo.Database) OfferService {
	return &offerService{
		client:                  db.Client(),
		offerCollection:         util.GetCollection(db, common.OfferCollection),
		propertyCollection:      util.GetCollection(db, common.PropertyCollection),
		reviewCollection:        util.GetCollection(db, common.ReviewCollection),
		reportCollection:        util.GetCollection(db, common.ReportCollection),
		wishlistCollection:      util.GetCollection(db, common.WishlistCollection),
		advertisementCollection: util.GetCollection(db, common.AdvertisementCollection),
	}
}

// CreateOffer records a pending bid. Validation happens in the
// controller before this is reached; nothing is written on a bad request.
func (s *offerService) CreateOffer(ctx context.Context, req models.OfferRequest) (primitive.ObjectID, error) {
	offer := models.Offer{
		Id:         primitive.NewObjectID(),
		PropertyId: req.PropertyId,
		Title:      req.Title,
		Location:   req.Location,
		Image:      req.Image,
		Agent:      models.Agent{Name: req.AgentName, Email: req.AgentEmail},
		Buyer:      models.Buyer{Name: req.BuyerName, Email: req.BuyerEmail},
		Amount:     req.Amount,
		BuyingDate: req.BuyingDate,
		Status:     models.OfferStatusPending,
		CreatedAt:  time.Now(),
	}

	if _, err := s.offerCollection.InsertOne(ctx, offer); err != nil {
		return primitive.NilObjectID, err
	}

	return offer.Id, nil
}

func (s *offerService) GetBuyerOffers(ctx context.Context, buyerEmail string, pagination util.PaginationArgs) ([]models.Offer, int64, error) {
	return s.findOffers(ctx, bson.M{"buyer.email": buyerEmail}, pagination)
}

func (s *offerService) GetAgentOffers(ctx context.Context, agentEmail string, pagination util.PaginationArgs) ([]models.Offer, int64, error) {
	return s.findOffers(ctx, bson.M{"agent.email": agentEmail}, pagination)
}

func (s *offerService) findOffers(ctx context.Context, filter bson.M, pagination util.PaginationArgs) ([]models.Offer, int64, error) {
	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.offerCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var offers []models.Offer
	if err := cursor.All(ctx, &offers); err != nil {
		return nil, 0, err
	}

	count, err := s.offerCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return offers, count, nil
}

// GetOffersByProperty returns the narrowed who-offered projection: id,
// buyer email, amount and status only.
func (s *offerService) GetOffersByProperty(ctx context.Context, propertyID string) ([]models.OfferSummary, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"property_id": propertyID}},
		{"$sort": bson.M{"created_at": -1}},
		{
			"$project": bson.M{
				"_id":         1,
				"buyer_email": "$buyer.email",
				"amount":      1,
				"status":      1,
			},
		},
	}

	cursor, err := s.offerCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var summaries []models.OfferSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (s *offerService) GetAcceptedOffer(ctx context.Context, propertyID string) (*models.Offer, error) {
	filter := bson.M{
		"property_id": propertyID,
		"status":      bson.M{"$in": bson.A{models.OfferStatusAccepted, models.OfferStatusPaid}},
	}

	var offer models.Offer
	err := s.offerCollection.FindOne(ctx, filter).Decode(&offer)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &offer, nil
}

// RejectOffer sets the offer to rejected only while it is still pending.
// Anything else, including a repeat reject, reports back as already
// settled and changes nothing.
func (s *offerService) RejectOffer(ctx context.Context, offerID primitive.ObjectID) error {
	result, err := s.offerCollection.UpdateOne(
		ctx,
		bson.M{"_id": offerID, "status": models.OfferStatusPending},
		bson.M{"$set": bson.M{"status": models.OfferStatusRejected}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrAlreadySettled
	}

	return nil
}

// AcceptOffer runs the settlement cascade in a single transaction:
// mark this offer accepted, reject every sibling on the same property,
// delete the property, then delete all reviews, reports, wishlist
// entries and advertisements that reference it. The accepted offer is
// updated before the property disappears because the later steps key off
// the property id read here, not a live join.
func (s *offerService) AcceptOffer(ctx context.Context, offerID primitive.ObjectID) (*models.CascadeResult, error) {
	cascade := &models.CascadeResult{}

	callback := func(sc mongo.SessionContext) (any, error) {
		var offer models.Offer
		err := s.offerCollection.FindOne(sc, bson.M{"_id": offerID}).Decode(&offer)
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if err != nil {
			return nil, err
		}

		if offer.Status != models.OfferStatusPending {
			return nil, ErrAlreadySettled
		}

		propertyOID, err := primitive.ObjectIDFromHex(offer.PropertyId)
		if err != nil {
			return nil, ErrNotFound
		}

		// The property may already be gone if a sibling was accepted
		// first; nothing must be mutated in that case.
		if err := s.propertyCollection.FindOne(sc, bson.M{"_id": propertyOID}).Err(); err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrNotFound
			}
			return nil, err
		}

		_, err = s.offerCollection.UpdateOne(
			sc,
			bson.M{"_id": offerID},
			bson.M{"$set": bson.M{"status": models.OfferStatusAccepted}},
		)
		if err != nil {
			return nil, err
		}

		siblings, err := s.offerCollection.UpdateMany(
			sc,
			bson.M{"property_id": offer.PropertyId, "_id": bson.M{"$ne": offerID}},
			bson.M{"$set": bson.M{"status": models.OfferStatusRejected}},
		)
		if err != nil {
			return nil, err
		}
		cascade.RejectedSiblings = siblings.ModifiedCount

		deleted, err := s.propertyCollection.DeleteOne(sc, bson.M{"_id": propertyOID})
		if err != nil {
			return nil, err
		}
		cascade.DeletedProperty = deleted.DeletedCount

		byProperty := bson.M{"property_id": offer.PropertyId}

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

// GetSoldProperties projects an agent's paid offers into sale summaries.
func (s *offerService) GetSoldProperties(ctx context.Context, agentEmail string) ([]models.SoldProperty, error) {
	filter := bson.M{"agent.email": agentEmail, "status": models.OfferStatusPaid}
	findOptions := options.Find().SetSort(bson.D{{Key: "paid_at", Value: -1}})

	cursor, err := s.offerCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var sold []models.SoldProperty
	if err := cursor.All(ctx, &sold); err != nil {
		return nil, err
	}

	return sold, nil
}
