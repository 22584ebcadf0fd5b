package apptRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary conflict-check query: staff + start instant.
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("staff_date_idx"),
		},
		// Capacity headcount query: service + start instant.
		{
			Keys:    bson.D{{Key: "serviceId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("service_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("business_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "customerId", Value: 1}, {Key: "date", Value: -1}},
			Options: options.Index().SetName("customer_date_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
