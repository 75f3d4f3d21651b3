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

type PaymentController struct {
	paymentService services.PaymentService
	userService    services.UserService
}

func InitPaymentController(paymentService services.PaymentService, userService services.UserService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		userService:    userService,
	}
}

// RecordPayment handles POST /payments. The settlement only goes
// through when the caller holds the accepted offer on the property.
func (pc *PaymentController) RecordPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		var req models.PaymentRequest
		if !BindJSONAndValidate(c, &req) {
			return
		}

		req.Email = session.Email

		paymentID, err := pc.paymentService.RecordPayment(ctx, req)
		if err != nil {
			switch errors.Cause(err) {
			case services.ErrNotFound:
				util.HandleError(c, http.StatusNotFound, errors.New("no accepted offer to settle for this property"))
			case services.ErrInvalidCard:
				util.HandleError(c, http.StatusBadRequest, err)
			default:
				util.HandleError(c, http.StatusInternalServerError, err)
			}
			return
		}

		util.HandleSuccess(c, http.StatusCreated, "Payment recorded successfully", gin.H{
			"paymentId": paymentID.Hex(),
		})
	}
}

// GetPayments handles GET /payments. Regular callers see their own
// history; admins can pass ?all=true for the full ledger.
func (pc *PaymentController) GetPayments() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		session, err := auth.GetSession(c)
		if err != nil {
			util.HandleError(c, http.StatusUnauthorized, err)
			return
		}

		all := c.Query("all") == "true" && middleware.IsAdmin(c, pc.userService)

		paginationArgs := helpers.GetPaginationArgs(c)

		payments, count, err := pc.paymentService.GetPayments(ctx, session.Email, all, paginationArgs)
		if err != nil {
			util.HandleError(c, http.StatusInternalServerError, err)
			return
		}

		util.HandleSuccessMeta(c, http.StatusOK, "success", payments, gin.H{
			"pagination": util.Pagination{
				Limit: paginationArgs.Limit,
				Skip:  paginationArgs.Skip,
				Count: count,
			},
		})
	}
}
