package indexer

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Definitions returns the index set for the marketplace collections.
// The unique index on advertisements.property_id is the backstop for
// the one-advertisement-per-property rule; everything else serves the
// hot query paths.
func Definitions() []IndexDefinition {
	return []IndexDefinition{
		{
			Collection: "users",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("users_email_unique").SetUnique(true),
			},
		},
		{
			Collection: "properties",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("properties_status_created"),
			},
		},
		{
			Collection: "properties",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "agent.email", Value: 1}},
				Options: options.Index().SetName("properties_agent_email"),
			},
		},
		{
			Collection: "offers",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "property_id", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("offers_property_status"),
			},
		},
		{
			Collection: "offers",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "buyer.email", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("offers_buyer_created"),
			},
		},
		{
			Collection: "offers",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "agent.email", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("offers_agent_created"),
			},
		},
		{
			Collection: "payments",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}, {Key: "paid_at", Value: -1}},
				Options: options.Index().SetName("payments_email_paid"),
			},
		},
		{
			Collection: "reviews",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "property_id", Value: 1}},
				Options: options.Index().SetName("reviews_property"),
			},
		},
		{
			Collection: "wishlists",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}, {Key: "property_id", Value: 1}},
				Options: options.Index().SetName("wishlists_email_property").SetUnique(true),
			},
		},
		{
			Collection: "reports",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "property_id", Value: 1}},
				Options: options.Index().SetName("reports_property"),
			},
		},
		{
			Collection: "advertisements",
			Index: mongo.IndexModel{
				Keys:    bson.D{{Key: "property_id", Value: 1}},
				Options: options.Index().SetName("advertisements_property_unique").SetUnique(true),
			},
		},
	}
}
