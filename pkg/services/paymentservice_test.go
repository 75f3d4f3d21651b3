package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

const paymentTestDB = "brickbase_payments_test"

func TestRecordPaymentWithoutAcceptedOffer(t *testing.T) {
	db := setupTestDB(t, paymentTestDB, "offers", "payments")
	svc := NewPaymentService(db)
	ctx := context.Background()

	_, err := svc.RecordPayment(ctx, models.PaymentRequest{
		PropertyId:    primitive.NewObjectID().Hex(),
		Email:         "ada@example.com",
		Amount:        100000,
		TransactionId: "txn-1",
		Method:        "bank",
	})
	assert.Equal(t, ErrNotFound, err)

	// The failed settlement must leave no payment row behind.
	count, err := db.Collection("payments").CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordPaymentSettlesAcceptedOffer(t *testing.T) {
	db := setupTestDB(t, paymentTestDB, "offers", "payments", "properties")
	offerSvc := NewOfferService(db)
	svc := NewPaymentService(db)
	ctx := context.Background()

	propertyID := seedProperty(t, db, models.PropertyStatusVerified)
	hex := propertyID.Hex()
	offerID := seedOffer(t, offerSvc, hex, "ada@example.com", 100000)

	_, err := offerSvc.AcceptOffer(ctx, offerID)
	require.NoError(t, err)

	paymentID, err := svc.RecordPayment(ctx, models.PaymentRequest{
		PropertyId:    hex,
		Email:         "ada@example.com",
		Amount:        100000,
		TransactionId: "txn-42",
		Method:        "bank",
	})
	require.NoError(t, err)
	assert.NotEqual(t, primitive.NilObjectID, paymentID)

	var offer models.Offer
	require.NoError(t, db.Collection("offers").FindOne(ctx, bson.M{"_id": offerID}).Decode(&offer))
	assert.Equal(t, models.OfferStatusPaid, offer.Status)
	assert.False(t, offer.PaidAt.IsZero())

	var payment models.Payment
	require.NoError(t, db.Collection("payments").FindOne(ctx, bson.M{"_id": paymentID}).Decode(&payment))
	assert.Equal(t, "txn-42", payment.TransactionId)
	assert.NotEmpty(t, payment.PaidAtDisplay)

	// Paying twice for the same property finds no accepted offer left.
	_, err = svc.RecordPayment(ctx, models.PaymentRequest{
		PropertyId:    hex,
		Email:         "ada@example.com",
		Amount:        100000,
		TransactionId: "txn-43",
		Method:        "bank",
	})
	assert.Equal(t, ErrNotFound, err)
}

func TestRecordPaymentCardValidation(t *testing.T) {
	db := setupTestDB(t, paymentTestDB, "offers", "payments", "properties")
	offerSvc := NewOfferService(db)
	svc := NewPaymentService(db)
	ctx := context.Background()

	propertyID := seedProperty(t, db, models.PropertyStatusVerified)
	hex := propertyID.Hex()
	offerID := seedOffer(t, offerSvc, hex, "ada@example.com", 100000)
	_, err := offerSvc.AcceptOffer(ctx, offerID)
	require.NoError(t, err)

	badCard := models.PaymentRequest{
		PropertyId:    hex,
		Email:         "ada@example.com",
		Amount:        100000,
		TransactionId: "txn-bad",
		Method:        "card",
		Card:          &models.PaymentCardRequest{Number: "1234", CVV: "000", Month: "13", Year: "2020"},
	}
	_, err = svc.RecordPayment(ctx, badCard)
	require.Error(t, err)
	assert.Equal(t, ErrInvalidCard, errors.Cause(err))

	// The offer must still be accepted after a failed card validation.
	var offer models.Offer
	require.NoError(t, db.Collection("offers").FindOne(ctx, bson.M{"_id": offerID}).Decode(&offer))
	assert.Equal(t, models.OfferStatusAccepted, offer.Status)

	goodCard := badCard
	goodCard.TransactionId = "txn-good"
	goodCard.Card = &models.PaymentCardRequest{Number: "4242424242424242", CVV: "123", Month: "12", Year: "2030"}

	paymentID, err := svc.RecordPayment(ctx, goodCard)
	require.NoError(t, err)

	var payment models.Payment
	require.NoError(t, db.Collection("payments").FindOne(ctx, bson.M{"_id": paymentID}).Decode(&payment))
	assert.Equal(t, "4242", payment.CardLastFour)
}

func TestGetPaymentsScoping(t *testing.T) {
	db := setupTestDB(t, paymentTestDB, "payments")
	svc := NewPaymentService(db)
	ctx := context.Background()

	for _, email := range []string{"ada@example.com", "ada@example.com", "bob@example.com"} {
		_, err := db.Collection("payments").InsertOne(ctx, bson.M{
			"_id":   primitive.NewObjectID(),
			"email": email,
		})
		require.NoError(t, err)
	}

	mine, count, err := svc.GetPayments(ctx, "ada@example.com", false, util.PaginationArgs{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, mine, 2)

	_, all, err := svc.GetPayments(ctx, "ada@example.com", true, util.PaginationArgs{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all)
}
