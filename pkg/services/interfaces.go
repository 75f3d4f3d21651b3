package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

// UserService defines the interface for identity and role operations
type UserService interface {
	CreateUser(ctx context.Context, req models.UserRequest) (primitive.ObjectID, bool, error)
	GetUserRole(ctx context.Context, email string) (models.UserRole, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsers(ctx context.Context, pagination util.PaginationArgs) ([]models.User, int64, error)
	UpdateProfile(ctx context.Context, email string, req models.UserProfileUpdateRequest) error
	GetSocialLinks(ctx context.Context, email string) (models.SocialLinks, error)

	SetUserRole(ctx context.Context, userID primitive.ObjectID, role models.UserRole) error
	MarkFraudulent(ctx context.Context, userID primitive.ObjectID) error
	DeleteUser(ctx context.Context, userID primitive.ObjectID) error
	DeleteAgentProperties(ctx context.Context, agentEmail string) (int64, error)
}

// PropertyService defines the interface for listing operations
type PropertyService interface {
	CreateProperty(ctx context.Context, agent models.Agent, req models.PropertyRequest) (primitive.ObjectID, error)
	GetProperties(ctx context.Context, status string, pagination util.PaginationArgs) ([]models.Property, int64, error)
	GetProperty(ctx context.Context, propertyID primitive.ObjectID) (*models.Property, error)
	GetAgentProperties(ctx context.Context, agentEmail string, pagination util.PaginationArgs) ([]models.Property, int64, error)
	UpdateProperty(ctx context.Context, propertyID primitive.ObjectID, agentEmail string, req models.PropertyUpdateRequest) error
	SetPropertyStatus(ctx context.Context, propertyID primitive.ObjectID, status models.PropertyStatus) error
	DeleteProperty(ctx context.Context, propertyID primitive.ObjectID, requesterEmail string, isAdmin bool) (*models.CascadeResult, error)
}

// OfferService defines the interface for the offer and settlement workflow
type OfferService interface {
	CreateOffer(ctx context.Context, req models.OfferRequest) (primitive.ObjectID, error)
	GetBuyerOffers(ctx context.Context, buyerEmail string, pagination util.PaginationArgs) ([]models.Offer, int64, error)
	GetAgentOffers(ctx context.Context, agentEmail string, pagination util.PaginationArgs) ([]models.Offer, int64, error)
	GetOffersByProperty(ctx context.Context, propertyID string) ([]models.OfferSummary, error)
	GetAcceptedOffer(ctx context.Context, propertyID string) (*models.Offer, error)
	RejectOffer(ctx context.Context, offerID primitive.ObjectID) error
	AcceptOffer(ctx context.Context, offerID primitive.ObjectID) (*models.CascadeResult, error)
	GetSoldProperties(ctx context.Context, agentEmail string) ([]models.SoldProperty, error)
}

// PaymentService defines the interface for settlement payments
type PaymentService interface {
	RecordPayment(ctx context.Context, req models.PaymentRequest) (primitive.ObjectID, error)
	GetPayments(ctx context.Context, email string, all bool, pagination util.PaginationArgs) ([]models.Payment, int64, error)
}

// EngagementService covers reviews, wishlist entries and reports
type EngagementService interface {
	CreateReview(ctx context.Context, email, name string, req models.ReviewRequest) (primitive.ObjectID, error)
	GetPropertyReviews(ctx context.Context, propertyID string, pagination util.PaginationArgs) ([]models.Review, int64, error)
	GetMyReviews(ctx context.Context, email string) ([]models.Review, error)
	GetLatestReviews(ctx context.Context, limit int64) ([]models.Review, error)
	DeleteReview(ctx context.Context, reviewID primitive.ObjectID, requesterEmail string, isAdmin bool) error

	AddToWishlist(ctx context.Context, email string, req models.WishlistRequest) (primitive.ObjectID, error)
	GetWishlist(ctx context.Context, email string) ([]models.WishlistEntry, error)
	RemoveFromWishlist(ctx context.Context, entryID primitive.ObjectID, email string) error

	CreateReport(ctx context.Context, email string, req models.ReportRequest) (primitive.ObjectID, error)
	GetReports(ctx context.Context, pagination util.PaginationArgs) ([]models.Report, int64, error)
	DeleteReport(ctx context.Context, reportID primitive.ObjectID) error
}

// AdvertisementService promotes verified properties
type AdvertisementService interface {
	AdvertiseProperty(ctx context.Context, propertyID primitive.ObjectID) (primitive.ObjectID, error)
	GetAdvertisedProperties(ctx context.Context, pagination util.PaginationArgs) ([]models.Advertisement, int64, error)
	RemoveAdvertisement(ctx context.Context, propertyID string) error
	GetAdvertisableProperties(ctx context.Context) ([]models.Property, error)
}

// StatsService serves the read-only dashboard aggregates
type StatsService interface {
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
	GetAgentStats(ctx context.Context, agentEmail string) (*models.AgentStats, error)
	GetUserStats(ctx context.Context, email string) (*models.UserStats, error)
}
