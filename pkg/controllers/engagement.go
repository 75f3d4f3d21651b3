package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/internal/helpers"
	"brickbase-api-io/api/internal/middleware"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

type EngagementController struct {
	engagementService services.EngagementService
	userService       services.UserService
}

func InitEngagementController(engagementService services.EngagementService, userService services.UserService) *EngagementController {
	return &EngagementController{
		engagementService: engagementService,
		userService:       userService,
	}
}

// CreateReview handles POST /reviews
func (ec *EngagementController) CreateReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		var req models.ReviewRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		reviewerName := session.Name
		if user, err := ec.userService.GetUserByEmail(ctx, session.Email); err == nil && user.Name != "" {
			reviewerName = user.Name
		}

		reviewID, err := ec.engagementService.CreateReview(ctx, session.Email, reviewerName, req)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "Review added successfully", gin.H{
			"reviewId": reviewID.Hex(),
		})
	}
}

// GetReviews handles GET /reviews, optionally scoped to a property
// via ?propertyId=.
func (ec *EngagementController) GetReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		propertyID := c.Query("property_id")
		if propertyID == "" {
			propertyID = c.Query("propertyId")
		}
		paginationArgs := helpers.GetPaginationArgs(c)

		reviews, count, err := ec.engagementService.GetPropertyReviews(ctx, propertyID, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", reviews, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// GetMyReviews handles GET /reviews/mine
func (ec *EngagementController) GetMyReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		reviews, err := ec.engagementService.GetMyReviews(ctx, session.Email)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", reviews)
	}
}

// GetLatestReviews handles GET /reviews/latest — the homepage strip.
func (ec *EngagementController) GetLatestReviews() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		limit := helpers.GetLimitArg(c, 3)

		reviews, err := ec.engagementService.GetLatestReviews(ctx, limit)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", reviews)
	}
}

// DeleteReview handles DELETE /reviews/:id (author or admin)
func (ec *EngagementController) DeleteReview() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		reviewID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		isAdmin := middleware.IsAdmin(c, ec.userService)

		if err := ec.engagementService.DeleteReview(ctx, reviewID, session.Email, isAdmin); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("review not found or not owned by caller"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Review deleted successfully", gin.H{
			"reviewId": reviewID.Hex(),
		})
	}
}

// AddToWishlist handles POST /wishlist
func (ec *EngagementController) AddToWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		var req models.WishlistRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		entryID, err := ec.engagementService.AddToWishlist(ctx, session.Email, req)
		if err != nil {
			if err == services.ErrAlreadyWishlisted {
				util.HandleError(c, http.StatusConflict, errors.New("property already in wishlist"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "Added to wishlist", gin.H{
			"wishlistId": entryID.Hex(),
		})
	}
}

// GetWishlist handles GET /wishlist
func (ec *EngagementController) GetWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		entries, err := ec.engagementService.GetWishlist(ctx, session.Email)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", entries)
	}
}

// RemoveFromWishlist handles DELETE /wishlist/:id
func (ec *EngagementController) RemoveFromWishlist() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		entryID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		if err := ec.engagementService.RemoveFromWishlist(ctx, entryID, session.Email); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("wishlist entry not found"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Removed from wishlist", gin.H{
			"wishlistId": entryID.Hex(),
		})
	}
}

// CreateReport handles POST /reports
func (ec *EngagementController) CreateReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		var req models.ReportRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		reportID, err := ec.engagementService.CreateReport(ctx, session.Email, req)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "Report submitted", gin.H{
			"reportId": reportID.Hex(),
		})
	}
}

// GetReports handles GET /reports (admin)
func (ec *EngagementController) GetReports() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		paginationArgs := helpers.GetPaginationArgs(c)

		reports, count, err := ec.engagementService.GetReports(ctx, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", reports, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// DeleteReport handles DELETE /reports/:id (admin)
func (ec *EngagementController) DeleteReport() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		reportID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		if err := ec.engagementService.DeleteReport(ctx, reportID); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("report not found"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Report dismissed", gin.H{
			"reportId": reportID.Hex(),
		})
	}
}
