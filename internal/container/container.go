package container

import (
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/pkg/controllers"
	"brickbase-api-io/api/pkg/services"
)

// ServiceContainer wires concrete services into their controllers once,
// at startup, so route setup only deals with handlers.
type ServiceContainer struct {
	TokenVerifier auth.TokenVerifier

	UserService          services.UserService
	PropertyService      services.PropertyService
	OfferService         services.OfferService
	PaymentService       services.PaymentService
	EngagementService    services.EngagementService
	AdvertisementService services.AdvertisementService
	StatsService         services.StatsService

	UserController          *controllers.UserController
	PropertyController      *controllers.PropertyController
	OfferController         *controllers.OfferController
	PaymentController       *controllers.PaymentController
	EngagementController    *controllers.EngagementController
	AdvertisementController *controllers.AdvertisementController
	StatsController         *controllers.StatsController
}

func NewServiceContainer(db *mongo.Database, rdb *redis.Client, verifier auth.TokenVerifier) *ServiceContainer {
	userService := services.NewUserService(db)
	propertyService := services.NewPropertyService(db)
	offerService := services.NewOfferService(db)
	paymentService := services.NewPaymentService(db)
	engagementService := services.NewEngagementService(db)
	advertisementService := services.NewAdvertisementService(db)
	statsService := services.NewStatsService(db, rdb)

	return &ServiceContainer{
		TokenVerifier: verifier,

		UserService:          userService,
		PropertyService:      propertyService,
		OfferService:         offerService,
		PaymentService:       paymentService,
		EngagementService:    engagementService,
		AdvertisementService: advertisementService,
		StatsService:         statsService,

		UserController:          controllers.InitUserController(userService),
		PropertyController:      controllers.InitPropertyController(propertyService, userService),
		OfferController:         controllers.InitOfferController(offerService),
		PaymentController:       controllers.InitPaymentController(paymentService, userService),
		EngagementController:    controllers.InitEngagementController(engagementService, userService),
		AdvertisementController: controllers.InitAdvertisementController(advertisementService),
		StatsController:         controllers.InitStatsController(statsService),
	}
}
