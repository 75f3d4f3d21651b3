package routers

import (
	"github.com/gin-gonic/gin"

	"brickbase-api-io/api/internal/container"
	"brickbase-api-io/api/internal/middleware"
	"brickbase-api-io/api/pkg/controllers"
)

// InitRoute builds the Gin engine with the full route surface. The rate
// limiter is optional so tests can run without Redis.
func InitRoute(sc *container.ServiceContainer, rateLimiter gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CorsMiddleware())

	groupHandlers := []gin.HandlerFunc{}
	if rateLimiter != nil {
		groupHandlers = append(groupHandlers, rateLimiter)
	}

	api := router.Group("/v1", groupHandlers...)
	{
		api.GET("/ping", controllers.Ping)

		userRoutes(api, sc)
		propertyRoutes(api, sc)
		offerRoutes(api, sc)
		paymentRoutes(api, sc)
		engagementRoutes(api, sc)
		statsRoutes(api, sc)
	}

	return router
}

func userRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	uc := sc.UserController

	user := api.Group("/users")

	// Upsert-style registration stays public: it runs right after the
	// identity provider hands the client a token.
	user.POST("", uc.CreateUser())
	user.GET("/socials", uc.GetSocialLinks())

	secured := user.Group("").Use(middleware.Auth(sc.TokenVerifier))
	{
		secured.GET("/role/:email", uc.GetUserRole())
		secured.GET("/profile/:email", uc.GetProfile())
		secured.PATCH("", uc.UpdateProfile())
	}

	admin := user.Group("").Use(middleware.Auth(sc.TokenVerifier), middleware.AdminOnly(sc.UserService))
	{
		admin.GET("", uc.GetUsers())
		admin.PATCH("/admin/:id", uc.MakeAdmin())
		admin.PATCH("/agent/:id", uc.MakeAgent())
		admin.PATCH("/fraud/:id", uc.MarkFraudulent())
		admin.DELETE("/agent-listings/:email", uc.DeleteAgentProperties())
		admin.DELETE("/:id", uc.DeleteUser())
	}
}

func propertyRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	pc := sc.PropertyController
	ac := sc.AdvertisementController

	authMw := middleware.Auth(sc.TokenVerifier)
	agentMw := middleware.AgentOnly(sc.UserService)
	adminMw := middleware.AdminOnly(sc.UserService)

	property := api.Group("/properties")

	property.GET("", pc.GetProperties())
	property.GET("/advertised", ac.GetAdvertisedProperties())
	property.GET("/:id", pc.GetProperty())

	agent := property.Group("").Use(authMw, agentMw)
	{
		agent.GET("/agent", pc.GetAgentProperties())
		agent.PATCH("/:id", pc.UpdateProperty())
		agent.POST("/media", pc.UploadMedia())
	}
	api.POST("/addProperties", authMw, agentMw, pc.CreateProperty())

	// Owner-or-admin is resolved inside the handler.
	property.DELETE("/:id", authMw, pc.DeleteProperty())

	admin := property.Group("").Use(authMw, adminMw)
	{
		admin.PATCH("/verify/:id", pc.VerifyProperty())
		admin.PATCH("/reject/:id", pc.RejectProperty())
		admin.POST("/advertise/:propertyId", ac.AdvertiseProperty())
		admin.DELETE("/advertise/:propertyId", ac.RemoveAdvertisement())
		admin.GET("/advertisable", ac.GetAdvertisableProperties())
	}
}

func offerRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	oc := sc.OfferController

	authMw := middleware.Auth(sc.TokenVerifier)
	agentMw := middleware.AgentOnly(sc.UserService)

	offer := api.Group("/offers").Use(authMw)
	{
		offer.POST("", oc.CreateOffer())
		offer.GET("", oc.GetMyOffers())
		offer.GET("/accepted/:propertyId", oc.GetAcceptedOffer())
	}

	agent := api.Group("/offers").Use(authMw, agentMw)
	{
		agent.GET("/agent", oc.GetRequestedOffers())
		agent.GET("/sold", oc.GetSoldProperties())
		agent.GET("/by-property/:propertyId", oc.GetOffersByProperty())
		agent.PATCH("/:id/accept", oc.AcceptOffer())
		agent.PATCH("/:id/reject", oc.RejectOffer())
	}
}

func paymentRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	pc := sc.PaymentController

	payment := api.Group("/payments").Use(middleware.Auth(sc.TokenVerifier))
	{
		payment.POST("", pc.RecordPayment())
		payment.GET("", pc.GetPayments())
	}
}

func engagementRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	ec := sc.EngagementController

	authMw := middleware.Auth(sc.TokenVerifier)
	adminMw := middleware.AdminOnly(sc.UserService)

	api.GET("/reviews", ec.GetReviews())
	api.GET("/reviews/latest", ec.GetLatestReviews())
	api.POST("/reviews", authMw, ec.CreateReview())
	api.GET("/myReviews", authMw, ec.GetMyReviews())
	api.DELETE("/reviews/:id", authMw, ec.DeleteReview())

	wishlist := api.Group("/wishlist").Use(authMw)
	{
		wishlist.POST("", ec.AddToWishlist())
		wishlist.GET("", ec.GetWishlist())
		wishlist.DELETE("/:id", ec.RemoveFromWishlist())
	}

	api.POST("/reports", authMw, ec.CreateReport())
	api.GET("/reports", authMw, adminMw, ec.GetReports())
	api.DELETE("/reports/:id", authMw, adminMw, ec.DeleteReport())
}

func statsRoutes(api *gin.RouterGroup, sc *container.ServiceContainer) {
	stc := sc.StatsController

	authMw := middleware.Auth(sc.TokenVerifier)

	api.GET("/admin-stats", authMw, middleware.AdminOnly(sc.UserService), stc.GetAdminStats())
	api.GET("/agent-stats", authMw, middleware.AgentOnly(sc.UserService), stc.GetAgentStats())
	api.GET("/user-stats", authMw, stc.GetUserStats())
}
