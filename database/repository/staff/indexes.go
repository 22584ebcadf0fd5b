package staffRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the staff and
// availability_windows collections. The unique (staffId, dayOfWeek) index
// makes the one-window-per-weekday invariant structural: a duplicate is a
// write error, never a silently shadowed record.
func (repo *MongoStaffRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	staffIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}},
			Options: options.Index().SetName("business_idx"),
		},
	}
	if _, err := repo.staffColl.Indexes().CreateMany(ctx, staffIndexes); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}

	windowIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "staffId", Value: 1}, {Key: "dayOfWeek", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_staff_day"),
		},
	}
	if _, err := repo.windowsColl.Indexes().CreateMany(ctx, windowIndexes); err != nil {
		return fmt.Errorf("failed to create availability window indexes: %w", err)
	}
	return nil
}
