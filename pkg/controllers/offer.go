package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/internal/helpers"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

type OfferController struct {
	offerService services.OfferService
}

func InitOfferController(offerService services.OfferService) *OfferController {
	return &OfferController{offerService: offerService}
}

// CreateOffer handles POST /offers. The buyer identity always comes
// from the verified session, whatever the payload claims.
func (oc *OfferController) CreateOffer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		var req models.OfferRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		req.BuyerEmail = session.Email
		if session.Name != "" {
			req.BuyerName = session.Name
		}

		offerID, err := oc.offerService.CreateOffer(ctx, req)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "Offer submitted successfully", gin.H{
			"offerId": offerID.Hex(),
		})
	}
}

// GetMyOffers handles GET /offers — offers placed by the caller.
func (oc *OfferController) GetMyOffers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		paginationArgs := helpers.GetPaginationArgs(c)

		offers, count, err := oc.offerService.GetBuyerOffers(ctx, session.Email, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", offers, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// GetRequestedOffers handles GET /offers/agent — offers against the
// agent's own listings.
func (oc *OfferController) GetRequestedOffers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		paginationArgs := helpers.GetPaginationArgs(c)

		offers, count, err := oc.offerService.GetAgentOffers(ctx, session.Email, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", offers, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// GetOffersByProperty handles GET /offers/by-property/:propertyId —
// the narrow summary projection used on listing pages.
func (oc *OfferController) GetOffersByProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		propertyID := c.Param("propertyId")
		if propertyID == "" {
			util.HandleError(c, http.StatusBadRequest, errors.New("propertyId is required"))
			return
		}

		summaries, err := oc.offerService.GetOffersByProperty(ctx, propertyID)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", summaries)
	}
}

// GetAcceptedOffer handles GET /offers/accepted/:propertyId — the
// accepted or paid offer on a property, used to gate payment.
func (oc *OfferController) GetAcceptedOffer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		propertyID := c.Param("propertyId")
		if propertyID == "" {
			util.HandleError(c, http.StatusBadRequest, errors.New("propertyId is required"))
			return
		}

		offer, err := oc.offerService.GetAcceptedOffer(ctx, propertyID)
		if err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("no accepted offer for this property"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", offer)
	}
}

// AcceptOffer handles PATCH /offers/:id/accept (agent). Accepting an
// offer rejects every sibling offer and removes the listing with its
// reviews, reports, wishlist entries and advertisement in one go.
func (oc *OfferController) AcceptOffer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		offerID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		cascade, err := oc.offerService.AcceptOffer(ctx, offerID)
		if err != nil {
			switch err {
			case services.ErrNotFound:
				util.HandleError(c, http.StatusNotFound, errors.New("offer or property not found"))
			case services.ErrAlreadySettled:
				util.HandleError(c, http.StatusNotFound, errors.New("offer not found or already settled"))
			default:
				util.HandleError(c, http.StatusInternalServerError, err)
			}
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Offer accepted successfully", cascade)
	}
}

// RejectOffer handles PATCH /offers/:id/reject (agent)
func (oc *OfferController) RejectOffer() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		offerID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		if err := oc.offerService.RejectOffer(ctx, offerID); err != nil {
			if err == services.ErrAlreadySettled {
				util.HandleError(c, http.StatusNotFound, errors.New("offer not found or already settled"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Offer rejected", gin.H{
			"offerId": offerID.Hex(),
		})
	}
}

// GetSoldProperties handles GET /offers/sold (agent)
func (oc *OfferController) GetSoldProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		sold, err := oc.offerService.GetSoldProperties(ctx, session.Email)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", sold)
	}
}
