package models

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusVerified  PropertyStatus = "verified"
	PropertyStatusRejected  PropertyStatus = "rejected"
)

func (PropertyStatus) ParsePropertyStatus(status string) (PropertyStatus, error) {
	switch status {
	case "available":
		return PropertyStatusAvailable, nil
	case "verified":
		return PropertyStatusVerified, nil
	case "rejected":
		return PropertyStatusRejected, nil
	}

	err := fmt.Sprintf("invalid property status from request: %v", status)

	return PropertyStatusAvailable, errors.New(err)
}

// Agent is the denormalized owner identity embedded in a property.
type Agent struct {
	Name  string `bson:"name" json:"name" validate:"required"`
	Email string `bson:"email" json:"email" validate:"required,email"`
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`
}

type Property struct {
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Location    string             `bson:"location" json:"location"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Status      PropertyStatus     `bson:"status" json:"status"`
	Agent       Agent              `bson:"agent" json:"agent"`
	PriceMin    float64            `bson:"price_min" json:"priceMin"`
	PriceMax    float64            `bson:"price_max" json:"priceMax"`
	Installment float64            `bson:"installment,omitempty" json:"installment,omitempty"`
	Id          primitive.ObjectID `bson:"_id" json:"_id"`
}

type PropertyRequest struct {
	Title       string  `json:"title" validate:"required,min=5,max=140"`
	Location    string  `json:"location" validate:"required"`
	Image       string  `json:"image" validate:"required"`
	Description string  `json:"description"`
	PriceMin    float64 `json:"priceMin" validate:"required,gt=0"`
	PriceMax    float64 `json:"priceMax" validate:"required,gtefield=PriceMin"`
	Installment float64 `json:"installment" validate:"gte=0"`
}

type PropertyUpdateRequest struct {
	Title       string  `json:"title"`
	Location    string  `json:"location"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	PriceMin    float64 `json:"priceMin"`
	PriceMax    float64 `json:"priceMax"`
	Installment float64 `json:"installment"`
}
