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

const maxUploadSize = 10 << 20

type PropertyController struct {
	propertyService services.PropertyService
	userService     services.UserService
}

func InitPropertyController(propertyService services.PropertyService, userService services.UserService) *PropertyController {
	return &PropertyController{
		propertyService: propertyService,
		userService:     userService,
	}
}

// CreateProperty handles POST /addProperties (agent)
func (pc *PropertyController) CreateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		var req models.PropertyRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		agent := models.Agent{Name: session.Name, Email: session.Email}
		if user, err := pc.userService.GetUserByEmail(ctx, session.Email); err == nil {
			agent.Name = user.Name
			agent.Photo = user.Photo
		}

		propertyID, err := pc.propertyService.CreateProperty(ctx, agent, req)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "Property added successfully", gin.H{
			"propertyId": propertyID.Hex(),
		})
	}
}

// GetProperties handles GET /properties, with optional ?status= or
// ?verified=true filters.
func (pc *PropertyController) GetProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		status := c.Query("status")
		if c.Query("verified") == "true" {
			status = string(models.PropertyStatusVerified)
		}

		paginationArgs := helpers.GetPaginationArgs(c)

		properties, count, err := pc.propertyService.GetProperties(ctx, status, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", properties, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// GetProperty handles GET /properties/:id
func (pc *PropertyController) GetProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		propertyID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		property, err := pc.propertyService.GetProperty(ctx, propertyID)
		if err != nil {
			util.HandleError(c, http.StatusNotFound, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "success", property)
	}
}

// GetAgentProperties handles GET /properties/agent (agent)
func (pc *PropertyController) GetAgentProperties() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		paginationArgs := helpers.GetPaginationArgs(c)

		properties, count, err := pc.propertyService.GetAgentProperties(ctx, session.Email, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", properties, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}

// UpdateProperty handles PATCH /properties/:id (agent owner)
func (pc *PropertyController) UpdateProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		propertyID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		var req models.PropertyUpdateRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		if err := pc.propertyService.UpdateProperty(ctx, propertyID, session.Email, req); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("property not found or not owned by caller"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Property updated successfully", gin.H{
			"propertyId": propertyID.Hex(),
		})
	}
}

// VerifyProperty handles PATCH /properties/verify/:id (admin)
func (pc *PropertyController) VerifyProperty() gin.HandlerFunc {
	return pc.setStatus(models.PropertyStatusVerified, "Property verified successfully")
}

// RejectProperty handles PATCH /properties/reject/:id (admin)
func (pc *PropertyController) RejectProperty() gin.HandlerFunc {
	return pc.setStatus(models.PropertyStatusRejected, "Property rejected")
}

func (pc *PropertyController) setStatus(status models.PropertyStatus, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		propertyID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		if err := pc.propertyService.SetPropertyStatus(ctx, propertyID, status); err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("property not found or not awaiting verification"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, message, gin.H{
			"propertyId": propertyID.Hex(),
			"status":     status,
		})
	}
}

// DeleteProperty handles DELETE /properties/:id (agent owner or admin)
func (pc *PropertyController) DeleteProperty() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		propertyID, ok := ParseObjectIDParam(c, "id")
		if !ok {
			return
		}

		isAdmin := middleware.IsAdmin(c, pc.userService)

		cascade, err := pc.propertyService.DeleteProperty(ctx, propertyID, session.Email, isAdmin)
		if err != nil {
			if err == services.ErrNotFound {
				util.HandleError(c, http.StatusNotFound, errors.New("property not found or not owned by caller"))
				return
			}
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Property deleted successfully", cascade)
	}
}

// UploadMedia handles POST /properties/media (agent). The image lands
// on Cloudinary; only the hosted URL comes back.
func (pc *PropertyController) UploadMedia() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
			util.HandleError(c, http.StatusBadRequest, errors.Wrap(err, "failed to parse multipart form"))
			return
		}

		file, _, err := c.Request.FormFile("image")
		if err != nil {
			util.HandleError(c, http.StatusBadRequest, errors.Wrap(err, "image file is required"))
			return
		}
		defer file.Close()

		result, err := util.ImageUpload(file)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccess(c, http.StatusOK, "Image uploaded successfully", gin.H{
			"url":      result.SecureURL,
			"publicId": result.PublicID,
		})
	}
}
