package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Advertisement is a promoted snapshot of a verified property. One per
// property; a unique index on property_id backs the application check.
type Advertisement struct {
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	PropertyId  string             `bson:"property_id" json:"propertyId"`
	Title       string             `bson:"title" json:"title"`
	Image       string             `bson:"image" json:"image"`
	Location    string             `bson:"location" json:"location"`
	Status      PropertyStatus     `bson:"status" json:"status"`
	PriceMin    float64            `bson:"price_min" json:"priceMin"`
	PriceMax    float64            `bson:"price_max" json:"priceMax"`
	Installment float64            `bson:"installment" json:"installment"`
	Id          primitive.ObjectID `bson:"_id" json:"_id"`
}
