package services

import (
	"context"
	"time"

	creditcard "github.com/durango/go-credit-card"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

type paymentService struct {
	client            *mongo.Client
	offerCollection   *mongo.Collection
	paymentCollection *mongo.Collection
}

func NewPaymentService(db *mongo.Database) PaymentService {
	return &paymentService{
		client:            db.Client(),
		offerCollection:   util.GetCollection(db, common.OfferCollection),
		paymentCollection: util.GetCollection(db, common.PaymentCollection),
	}
}

// RecordPayment settles the accepted offer for a property. The
// accepted-to-paid transition must match an offer before the payment row
// is written; both happen in one transaction, so a property with no
// accepted offer leaves the payments collection untouched.
func (s *paymentService) RecordPayment(ctx context.Context, req models.PaymentRequest) (primitive.ObjectID, error) {
	now := time.Now()

	payment := models.Payment{
		Id:            primitive.NewObjectID(),
		PropertyId:    req.PropertyId,
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionId: req.TransactionId,
		Method:        req.Method,
		PaidAt:        now,
		PaidAtDisplay: now.Format("January 2, 2006 3:04 PM"),
	}

	if req.Method == "card" && req.Card != nil {
		card := creditcard.Card{
			Number:  req.Card.Number,
			Cvv:     req.Card.CVV,
			Month:   req.Card.Month,
			Year:    req.Card.Year,
			Company: creditcard.Company{},
		}

		if err := card.Validate(true); err != nil {
			return primitive.NilObjectID, errors.Wrap(ErrInvalidCard, err.Error())
		}

		lastFour, err := card.LastFour()
		if err != nil {
			return primitive.NilObjectID, errors.Wrap(ErrInvalidCard, err.Error())
		}
		payment.CardLastFour = lastFour
	}

	callback := func(sc mongo.SessionContext) (any, error) {
		result, err := s.offerCollection.UpdateOne(
			sc,
			bson.M{"property_id": req.PropertyId, "status": models.OfferStatusAccepted},
			bson.M{"$set": bson.M{"status": models.OfferStatusPaid, "paid_at": now}},
		)
		if err != nil {
			return nil, err
		}
		if result.ModifiedCount == 0 {
			return nil, ErrNotFound
		}

		if _, err := s.paymentCollection.InsertOne(sc, payment); err != nil {
			return nil, err
		}

		return payment.Id, nil
	}

	if _, err := ExecuteTransaction(ctx, s.client, callback); err != nil {
		return primitive.NilObjectID, err
	}

	return payment.Id, nil
}

// GetPayments returns the caller's payment history, or everything when
// the caller is an admin.
func (s *paymentService) GetPayments(ctx context.Context, email string, all bool, pagination util.PaginationArgs) ([]models.Payment, int64, error) {
	filter := bson.M{}
	if !all {
		filter["email"] = email
	}

	findOptions := options.Find().
		SetLimit(int64(pagination.Limit)).
		SetSkip(int64(pagination.Skip)).
		SetSort(bson.D{{Key: "paid_at", Value: -1}})

	cursor, err := s.paymentCollection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, 0, err
	}

	count, err := s.paymentCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return payments, count, nil
}
