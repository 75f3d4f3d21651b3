package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Payment struct {
	PaidAt        time.Time          `bson:"paid_at" json:"paidAt"`
	PaidAtDisplay string             `bson:"paid_at_display" json:"paidAtDisplay"`
	PropertyId    string             `bson:"property_id" json:"propertyId"`
	Email         string             `bson:"email" json:"email"`
	TransactionId string             `bson:"transaction_id" json:"transactionId"`
	Method        string             `bson:"method" json:"method"`
	CardLastFour  string             `bson:"card_last_four,omitempty" json:"cardLastFour,omitempty"`
	Amount        float64            `bson:"amount" json:"amount"`
	Id            primitive.ObjectID `bson:"_id" json:"_id"`
}

// PaymentCardRequest carries raw card details for card-method payments.
// Only the last four digits are ever persisted.
type PaymentCardRequest struct {
	Number string `json:"number" validate:"required"`
	CVV    string `json:"cvv" validate:"required"`
	Month  string `json:"month" validate:"required"`
	Year   string `json:"year" validate:"required"`
}

type PaymentRequest struct {
	PropertyId    string              `json:"propertyId" validate:"required"`
	Email         string              `json:"email" validate:"required,email"`
	TransactionId string              `json:"transactionId" validate:"required"`
	Method        string              `json:"method" validate:"required"`
	Amount        float64             `json:"amount" validate:"required,gt=0"`
	Card          *PaymentCardRequest `json:"card,omitempty"`
}
