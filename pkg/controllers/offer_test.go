package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/services"
	"brickbase-api-io/api/pkg/util"
)

// stubOfferService answers accept/reject with canned errors; the read
// paths are unused by these tests.
type stubOfferService struct {
	acceptErr error
	rejectErr error
}

func (s *stubOfferService) AcceptOffer(context.Context, primitive.ObjectID) (*models.CascadeResult, error) {
	if s.acceptErr != nil {
		return nil, s.acceptErr
	}
	return &models.CascadeResult{}, nil
}
func (s *stubOfferService) RejectOffer(context.Context, primitive.ObjectID) error {
	return s.rejectErr
}

func (s *stubOfferService) CreateOffer(context.Context, models.OfferRequest) (primitive.ObjectID, error) {
	return primitive.NilObjectID, nil
}
func (s *stubOfferService) GetBuyerOffers(context.Context, string, util.PaginationArgs) ([]models.Offer, int64, error) {
	return nil, 0, nil
}
func (s *stubOfferService) GetAgentOffers(context.Context, string, util.PaginationArgs) ([]models.Offer, int64, error) {
	return nil, 0, nil
}
func (s *stubOfferService) GetOffersByProperty(context.Context, string) ([]models.OfferSummary, error) {
	return nil, nil
}
func (s *stubOfferService) GetAcceptedOffer(context.Context, string) (*models.Offer, error) {
	return nil, services.ErrNotFound
}
func (s *stubOfferService) GetSoldProperties(context.Context, string) ([]models.SoldProperty, error) {
	return nil, nil
}

func newOfferTestRouter(svc services.OfferService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	oc := InitOfferController(svc)

	router := gin.New()
	router.PATCH("/offers/:id/accept", oc.AcceptOffer())
	router.PATCH("/offers/:id/reject", oc.RejectOffer())
	return router
}

// A settled or unknown offer reads as absent to the caller, so both
// accept and reject answer 404 rather than a conflict.
func TestAcceptOfferStatusMapping(t *testing.T) {
	offerID := primitive.NewObjectID().Hex()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"pending offer accepted", nil, http.StatusOK},
		{"unknown offer", services.ErrNotFound, http.StatusNotFound},
		{"already settled offer", services.ErrAlreadySettled, http.StatusNotFound},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newOfferTestRouter(&stubOfferService{acceptErr: tc.err})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPatch, "/offers/"+offerID+"/accept", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestRejectOfferStatusMapping(t *testing.T) {
	offerID := primitive.NewObjectID().Hex()

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"pending offer rejected", nil, http.StatusOK},
		{"already settled offer", services.ErrAlreadySettled, http.StatusNotFound},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newOfferTestRouter(&stubOfferService{rejectErr: tc.err})

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPatch, "/offers/"+offerID+"/reject", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}
