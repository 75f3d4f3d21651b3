package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/pkg/util"
)

// WithTimeout creates a context with the standard request timeout
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), common.REQUEST_TIMEOUT_SECS)
}

// ParseObjectIDParam parses an ObjectID from URL parameter and handles errors
func ParseObjectIDParam(c *gin.Context, paramName string) (primitive.ObjectID, bool) {
	idString := c.Param(paramName)
	if idString == "" {
		util.HandleError(c, http.StatusBadRequest, errors.New("missing "+paramName+" parameter"))
		return primitive.NilObjectID, false
	}

	objectID, err := primitive.ObjectIDFromHex(idString)
	if err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return primitive.NilObjectID, false
	}

	return objectID, true
}

// BindJSONAndValidate binds JSON and handles validation errors
func BindJSONAndValidate(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	if err := common.Validate.Struct(obj); err != nil {
		util.HandleError(c, http.StatusBadRequest, err)
		return false
	}

	return true
}
