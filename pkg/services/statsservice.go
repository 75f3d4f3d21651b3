package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"brickbase-api-io/api/internal/common"
	"brickbase-api-io/api/pkg/models"
	"brickbase-api-io/api/pkg/util"
)

type statsService struct {
	rdb                *redis.Client
	userCollection     *mongo.Collection
	propertyCollection *mongo.Collection
	offerCollection    *mongo.Collection
	paymentCollection  *mongo.Collection
	wishlistCollection *mongo.Collection
	reviewCollection   *mongo.Collection
}

// NewStatsService builds the dashboard aggregator. rdb may be nil, in
// which case every read goes straight to the store.
func NewStatsService(db *mongo.Database, rdb *redis.Client) StatsService {
	return &statsService{
		rdb:                rdb,
		userCollection:     util.GetCollection(db, common.UserCollection),
		propertyCollection: util.GetCollection(db, common.PropertyCollection),
		offerCollection:    util.GetCollection(db, common.OfferCollection),
		paymentCollection:  util.GetCollection(db, common.PaymentCollection),
		wishlistCollection: util.GetCollection(db, common.WishlistCollection),
		reviewCollection:   util.GetCollection(db, common.ReviewCollection),
	}
}

func (s *statsService) getCached(ctx context.Context, key string, out any) bool {
	if s.rdb == nil {
		return false
	}

	payload, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			util.LogWarning(fmt.Sprintf("stats cache read failed for %s: %v", key, err))
		}
		return false
	}

	return json.Unmarshal([]byte(payload), out) == nil
}

func (s *statsService) putCached(ctx context.Context, key string, value any) {
	if s.rdb == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, key, payload, common.STATS_CACHE_TTL).Err(); err != nil {
		util.LogWarning(fmt.Sprintf("stats cache write failed for %s: %v", key, err))
	}
}

func (s *statsService) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	const cacheKey = "stats:admin"

	var cached models.AdminStats
	if s.getCached(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	stats := &models.AdminStats{}
	var err error

	if stats.TotalUsers, err = CountByFilter(ctx, s.userCollection, bson.M{}); err != nil {
		return nil, err
	}
	if stats.TotalAgents, err = CountByFilter(ctx, s.userCollection, bson.M{"role": models.RoleAgent}); err != nil {
		return nil, err
	}
	if stats.TotalProperties, err = CountByFilter(ctx, s.propertyCollection, bson.M{}); err != nil {
		return nil, err
	}
	if stats.VerifiedProperties, err = CountByFilter(ctx, s.propertyCollection, bson.M{"status": models.PropertyStatusVerified}); err != nil {
		return nil, err
	}
	if stats.AvailableProperties, err = CountByFilter(ctx, s.propertyCollection, bson.M{"status": models.PropertyStatusAvailable}); err != nil {
		return nil, err
	}
	if stats.RejectedProperties, err = CountByFilter(ctx, s.propertyCollection, bson.M{"status": models.PropertyStatusRejected}); err != nil {
		return nil, err
	}
	if stats.TotalOffers, err = CountByFilter(ctx, s.offerCollection, bson.M{}); err != nil {
		return nil, err
	}
	if stats.PendingOffers, err = CountByFilter(ctx, s.offerCollection, bson.M{"status": models.OfferStatusPending}); err != nil {
		return nil, err
	}
	if stats.PaidOffers, err = CountByFilter(ctx, s.offerCollection, bson.M{"status": models.OfferStatusPaid}); err != nil {
		return nil, err
	}
	if stats.TotalPayments, err = CountByFilter(ctx, s.paymentCollection, bson.M{}); err != nil {
		return nil, err
	}

	stats.TotalPaidVolume, err = s.sumAmount(ctx, s.paymentCollection, bson.M{})
	if err != nil {
		return nil, err
	}

	s.putCached(ctx, cacheKey, stats)

	return stats, nil
}

func (s *statsService) GetAgentStats(ctx context.Context, agentEmail string) (*models.AgentStats, error) {
	cacheKey := "stats:agent:" + agentEmail

	var cached models.AgentStats
	if s.getCached(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	stats := &models.AgentStats{}
	var err error

	byAgent := bson.M{"agent.email": agentEmail}

	if stats.TotalProperties, err = CountByFilter(ctx, s.propertyCollection, byAgent); err != nil {
		return nil, err
	}
	if stats.VerifiedProperties, err = CountByFilter(ctx, s.propertyCollection, bson.M{"agent.email": agentEmail, "status": models.PropertyStatusVerified}); err != nil {
		return nil, err
	}
	if stats.AvailableProperties, err = CountByFilter(ctx, s.propertyCollection, bson.M{"agent.email": agentEmail, "status": models.PropertyStatusAvailable}); err != nil {
		return nil, err
	}
	if stats.RejectedProperties, err = CountByFilter(ctx, s.propertyCollection, bson.M{"agent.email": agentEmail, "status": models.PropertyStatusRejected}); err != nil {
		return nil, err
	}
	if stats.TotalOffers, err = CountByFilter(ctx, s.offerCollection, byAgent); err != nil {
		return nil, err
	}
	if stats.SoldProperties, err = CountByFilter(ctx, s.offerCollection, bson.M{"agent.email": agentEmail, "status": models.OfferStatusPaid}); err != nil {
		return nil, err
	}

	stats.Revenue, err = s.sumAmount(ctx, s.offerCollection, bson.M{"agent.email": agentEmail, "status": models.OfferStatusPaid})
	if err != nil {
		return nil, err
	}

	s.putCached(ctx, cacheKey, stats)

	return stats, nil
}

func (s *statsService) GetUserStats(ctx context.Context, email string) (*models.UserStats, error) {
	cacheKey := "stats:user:" + email

	var cached models.UserStats
	if s.getCached(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	stats := &models.UserStats{}
	var err error

	byBuyer := bson.M{"buyer.email": email}

	if stats.TotalOffers, err = CountByFilter(ctx, s.offerCollection, byBuyer); err != nil {
		return nil, err
	}
	if stats.PendingOffers, err = CountByFilter(ctx, s.offerCollection, bson.M{"buyer.email": email, "status": models.OfferStatusPending}); err != nil {
		return nil, err
	}
	if stats.AcceptedOffers, err = CountByFilter(ctx, s.offerCollection, bson.M{"buyer.email": email, "status": models.OfferStatusAccepted}); err != nil {
		return nil, err
	}
	if stats.RejectedOffers, err = CountByFilter(ctx, s.offerCollection, bson.M{"buyer.email": email, "status": models.OfferStatusRejected}); err != nil {
		return nil, err
	}
	if stats.PaidOffers, err = CountByFilter(ctx, s.offerCollection, bson.M{"buyer.email": email, "status": models.OfferStatusPaid}); err != nil {
		return nil, err
	}
	if stats.WishlistCount, err = CountByFilter(ctx, s.wishlistCollection, bson.M{"email": email}); err != nil {
		return nil, err
	}
	if stats.ReviewCount, err = CountByFilter(ctx, s.reviewCollection, bson.M{"email": email}); err != nil {
		return nil, err
	}

	stats.TotalSpent, err = s.sumAmount(ctx, s.paymentCollection, bson.M{"email": email})
	if err != nil {
		return nil, err
	}

	s.putCached(ctx, cacheKey, stats)

	return stats, nil
}

func (s *statsService) sumAmount(ctx context.Context, collection *mongo.Collection, match bson.M) (float64, error) {
	pipeline := []bson.M{
		{"$match": match},
		{
			"$group": bson.M{
				"_id":   nil,
				"total": bson.M{"$sum": "$amount"},
			},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result struct {
		Total float64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}

	return result.Total, nil
}
