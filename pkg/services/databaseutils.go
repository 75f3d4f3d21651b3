package services

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// Sentinel errors shared across services so controllers can pick the
// right status for equivalent conditions.
var (
	ErrNotFound          = errors.New("record not found")
	ErrAlreadySettled    = errors.New("offer not found or already settled")
	ErrNotVerified       = errors.New("property is not verified")
	ErrAlreadyAdvertised = errors.New("property is already advertised")
	ErrAlreadyWishlisted = errors.New("property is already in the wishlist")
	ErrInvalidCard       = errors.New("invalid card details")
)

// TransactionCallback defines the callback function for database transactions
type TransactionCallback func(ctx mongo.SessionContext) (any, error)

// ExecuteTransaction executes a database transaction with proper error handling
func ExecuteTransaction(ctx context.Context, client *mongo.Client, callback TransactionCallback) (any, error) {
	wc := writeconcern.New(writeconcern.WMajority())
	txnOptions := options.Transaction().SetWriteConcern(wc)
	session, err := client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, callback, txnOptions)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// CountByFilter is a small helper shared by the stats queries.
func CountByFilter(ctx context.Context, collection *mongo.Collection, filter any) (int64, error) {
	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "count documents")
	}
	return count, nil
}
