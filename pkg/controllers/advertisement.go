package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"brickbase-api-io/api/internal/helpers"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

type AdvertisementController struct {
	advertisementService services.AdvertisementService
}

func InitAdvertisementController(advertisementService services.AdvertisementService) *AdvertisementController {
	return &AdvertisementController{advertisementService: advertisementService}
}

// AdvertiseProperty handles POST /properties/advertise/:propertyId
// (admin).
// Only verified listings with an installment plan qualify, and a
// listing can carry at most one advertisement.
func (ac *AdvertisementController) AdvertiseProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		propertyID, ok := ParseObjectIDParam(c, "propertyId")
		if !ok {
			return
		}

		adID, err := ac.advertisementService.AdvertiseProperty(ctx, propertyID)
		if err != nil {
			switch err {
			case services.ErrNotFound:
				util.HandleError(c, http.StatusNotFound, errors.New("property not found"))
			case services.ErrNotVerified:
				util.HandleError(c, http.StatusNotFound, errors.New("property is not verified"))
			case services.ErrAlreadyAdvertised:
				util.HandleError(c, http.StatusConflict, errors.New("property is already advertised"))
			default:
				util.HandleError(c, http.StatusInternalServerError, err)
			}
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "Property advertised successfully", gin.H{
			"advertisementId": adID.Hex(),
		})
	}
}

// GetAdvertisedProperties handles GET /properties/advertised
func (ac *AdvertisementController) GetAdvertisedProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		paginationArgs := helpers.GetPaginationArgs(c)

		ads, count, err := ac.advertisementService.GetAdvertisedProperties(ctx, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", ads, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// GetAdvertisableProperties handles GET /properties/advertisable
// (admin) — verified, installment-backed listings not yet advertised.
func (ac *AdvertisementController) GetAdvertisableProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		properties, err := ac.advertisementService.GetAdvertisableProperties(ctx)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", properties)
	}
}

// RemoveAdvertisement handles DELETE /properties/advertise/:propertyId
// (admin)
func (ac *AdvertisementController) RemoveAdvertisement() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		propertyID := c.Param("propertyId")
		if propertyID == "" {
			util.HandleError(c, http.StatusBadRequest, errors.New("propertyId is required"))
			return
		}

		if err := ac.advertisementService.RemoveAdvertisement(ctx, propertyID); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("advertisement not found"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Advertisement removed", gin.H{
			"propertyId": propertyID,
		})
	}
}
