package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review, Wishlist and Report rows reference a property by its hex id
// string and a user by email. The store enforces no referential
// integrity; the acceptance cascade is what cleans them up.

type Review struct {
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	PropertyId   string             `bson:"property_id" json:"propertyId"`
	Title        string             `bson:"title" json:"title"`
	ReviewerName string             `bson:"reviewer_name" json:"reviewerName"`
	Email        string             `bson:"email" json:"email"`
	Review       string             `bson:"review" json:"review"`
	Rating       int                `bson:"rating" json:"rating"`
	Id           primitive.ObjectID `bson:"_id" json:"_id"`
}

type ReviewRequest struct {
	PropertyId string `json:"propertyId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Review     string `json:"review" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
}

type WishlistEntry struct {
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	PropertyId string             `bson:"property_id" json:"propertyId"`
	Email      string             `bson:"email" json:"email"`
	Title      string             `bson:"title" json:"title"`
	Location   string             `bson:"location" json:"location"`
	Image      string             `bson:"image" json:"image"`
	AgentName  string             `bson:"agent_name" json:"agentName"`
	PriceMin   float64            `bson:"price_min" json:"priceMin"`
	PriceMax   float64            `bson:"price_max" json:"priceMax"`
	Status     PropertyStatus     `bson:"status" json:"status"`
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
}

type WishlistRequest struct {
	PropertyId string  `json:"propertyId" validate:"required"`
	Title      string  `json:"title" validate:"required"`
	Location   string  `json:"location" validate:"required"`
	Image      string  `json:"image"`
	AgentName  string  `json:"agentName"`
	PriceMin   float64 `json:"priceMin"`
	PriceMax   float64 `json:"priceMax"`
	Status     string  `json:"status"`
}

type Report struct {
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	PropertyId string             `bson:"property_id" json:"propertyId"`
	Title      string             `bson:"title" json:"title"`
	Email      string             `bson:"email" json:"email"`
	Reason     string             `bson:"reason" json:"reason"`
	Details    string             `bson:"details,omitempty" json:"details,omitempty"`
	Id         primitive.ObjectID `bson:"_id" json:"_id"`
}

type ReportRequest struct {
	PropertyId string `json:"propertyId" validate:"required"`
	Title      string `json:"title" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
	Details    string `json:"details"`
}
