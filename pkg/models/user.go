package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAgent UserRole = "agent"
	RoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusFraud  UserStatus = "fraud"
)

// SocialLinks is the public link set a user can attach to their profile.
type SocialLinks struct {
	Facebook string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	X        string `bson:"x,omitempty" json:"x,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Website  string `bson:"website,omitempty" json:"website,omitempty"`
}

type User struct {
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Photo     string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role      UserRole           `bson:"role,omitempty" json:"role,omitempty"`
	Status    UserStatus         `bson:"status,omitempty" json:"status,omitempty"`
	Socials   SocialLinks        `bson:"socials,omitempty" json:"socials,omitempty"`
	Id        primitive.ObjectID `bson:"_id" json:"_id"`
}

type UserRequest struct {
	Name  string   `json:"name" validate:"required"`
	Email string   `json:"email" validate:"required,email"`
	Photo string   `json:"photo"`
	Role  UserRole `json:"role" validate:"omitempty,oneof=user agent admin"`
}

type UserProfileUpdateRequest struct {
	Name    string      `json:"name"`
	Photo   string      `json:"photo"`
	Socials SocialLinks `json:"socials"`
}
