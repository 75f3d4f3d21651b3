package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/internal/auth"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

type stubPaymentService struct {
	recordErr error
}

func (s *stubPaymentService) RecordPayment(context.Context, models.PaymentRequest) (primitive.ObjectID, error) {
	if s.recordErr != nil {
		return primitive.NilObjectID, s.recordErr
	}
	return primitive.NewObjectID(), nil
}
func (s *stubPaymentService) GetPayments(context.Context, string, bool, util.PaginationArgs) ([]models.Payment, int64, error) {
	return nil, 0, nil
}

func newPaymentTestRouter(svc services.PaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	pc := InitPaymentController(svc, nil)

	router := gin.New()
	router.POST("/payments", func(c *gin.Context) {
		c.Set(auth.ContextEmailKey, "ada@example.com")
	}, pc.RecordPayment())
	return router
}

const paymentBody = `{"propertyId":"abc123","email":"ada@example.com",` +
	`"transactionId":"txn-1","method":"card","amount":100000}`

// Card validation is the caller's fault; anything else that goes wrong
// past binding is a server-side failure.
func TestRecordPaymentStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"payment recorded", nil, http.StatusCreated},
		{"no accepted offer", services.ErrNotFound, http.StatusNotFound},
		{"card rejected", errors.Wrap(services.ErrInvalidCard, "invalid number"), http.StatusBadRequest},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newPaymentTestRouter(&stubPaymentService{recordErr: tc.err})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/payments", strings.NewReader(paymentBody))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}
