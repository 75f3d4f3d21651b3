package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfferStatus string

const (
	OfferStatusPending  OfferStatus = "pending"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusRejected OfferStatus = "rejected"
	OfferStatusPaid     OfferStatus = "paid"
)

func (OfferStatus) ParseOfferStatus(status string) (OfferStatus, error) {
	switch status {
	case "pending":
		return OfferStatusPending, nil
	case "accepted":
		return OfferStatusAccepted, nil
	case "rejected":
		return OfferStatusRejected, nil
	case "paid":
		return OfferStatusPaid, nil
	}

	err := fmt.Sprintf("invalid offer status from request: %v", status)

	return OfferStatusPending, errors.New(err)
}

// Buyer is the denormalized bidder identity embedded in an offer.
type Buyer struct {
	Name  string `bson:"name" json:"name" validate:"required"`
	Email string `bson:"email" json:"email" validate:"required,email"`
}

// Offer is a buyer's bid against a property. The property reference is a
// plain hex string, not a validated foreign key; denormalized display
// fields are captured at offer time so the offer stays renderable after
// the property is gone.
type Offer struct {
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	PaidAt     time.Time          `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	PropertyId string             `bson:"property_id" json:"propertyId"`
	Title      string             `bson:"title" json:"title"`
	Location   string             `bson:"location" json:"location"`
	Image      string             `bson:"image" json:"image"`
	BuyingDate string             `bson:"buying_date" json:"buyingDate"`
	Status     OfferStatus        `bson:"status" json:"status"`
	Agent      Agent              `bson:"agent" json:"agent"`
	Buyer      Buyer              `bson:"buyer" json:"buyer"`
	Amount     float64            `bson:"amount" json:"amount"`
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
}

type OfferRequest struct {
	PropertyId string  `json:"propertyId" validate:"required"`
	Title      string  `json:"title" validate:"required"`
	Location   string  `json:"location" validate:"required"`
	Image      string  `json:"image" validate:"required"`
	AgentName  string  `json:"agentName" validate:"required"`
	AgentEmail string  `json:"agentEmail" validate:"required,email"`
	BuyerName  string  `json:"buyerName" validate:"required"`
	BuyerEmail string  `json:"buyerEmail" validate:"required,email"`
	BuyingDate string  `json:"buyingDate" validate:"required"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
}

// OfferSummary is the narrowed projection returned to agents asking who
// offered against a property.
type OfferSummary struct {
	BuyerEmail string             `bson:"buyer_email" json:"buyerEmail"`
	Status     OfferStatus        `bson:"status" json:"status"`
	Amount     float64            `bson:"amount" json:"amount"`
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
}

// SoldProperty is the sale-summary shape of a paid offer.
type SoldProperty struct {
	SoldAt     time.Time          `bson:"paid_at" json:"soldAt"`
	PropertyId string             `bson:"property_id" json:"propertyId"`
	Title      string             `bson:"title" json:"title"`
	Location   string             `bson:"location" json:"location"`
	Status     OfferStatus        `bson:"status" json:"status"`
	Buyer      Buyer              `bson:"buyer" json:"buyer"`
	SoldPrice  float64            `bson:"amount" json:"soldPrice"`
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
}

// CascadeResult reports what an offer acceptance removed alongside the
// property, per collection.
type CascadeResult struct {
	RejectedSiblings int64 `json:"rejectedSiblings"`
	DeletedProperty  int64 `json:"deletedProperty"`
	DeletedReviews   int64 `json:"deletedReviews"`
	DeletedReports   int64 `json:"deletedReports"`
	DeletedWishlists int64 `json:"deletedWishlists"`
	DeletedAds       int64 `json:"deletedAds"`
}
