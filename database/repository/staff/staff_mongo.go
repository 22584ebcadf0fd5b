package staffRepo

import (
	"context"
	"fmt"
	"time"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	staffColl   *mongo.Collection
	windowsColl *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() StaffRepository {
	db := database.DB()
	return &MongoStaffRepo{
		staffColl:   db.Collection("staff"),
		windowsColl: db.Collection("availability_windows"),
	}
}

func (repo *MongoStaffRepo) CreateStaff(staff *models.Staff) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.staffColl.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("error inserting staff: %w", err)
	}
	return nil
}

func (repo *MongoStaffRepo) GetStaff(id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := repo.staffColl.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("error fetching staff with id %s: %w", id, err)
	}
	return &staff, nil
}

func (repo *MongoStaffRepo) ListStaffByBusiness(businessID string) ([]models.Staff, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.staffColl.Find(ctx, bson.M{"businessId": businessID},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching staff roster: %w", err)
	}
	defer cursor.Close(ctx)

	var roster []models.Staff
	for cursor.Next(ctx) {
		var s models.Staff
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding staff: %w", err)
		}
		roster = append(roster, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return roster, nil
}

func (repo *MongoStaffRepo) SetStaffActive(id string, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.staffColl.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("error updating staff: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("staff %s not found", id)
	}
	return nil
}

func (repo *MongoStaffRepo) CreateWindow(window *models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.windowsColl.InsertOne(ctx, window); err != nil {
		return fmt.Errorf("error inserting availability window: %w", err)
	}
	return nil
}

func (repo *MongoStaffRepo) UpdateWindow(window *models.AvailabilityWindow) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"startTime":   window.StartTime,
		"endTime":     window.EndTime,
		"isAvailable": window.IsAvailable,
		"breaks":      window.Breaks,
	}}
	res, err := repo.windowsColl.UpdateOne(ctx, bson.M{"id": window.ID}, update)
	if err != nil {
		return fmt.Errorf("error updating availability window: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("availability window %s not found", window.ID)
	}
	return nil
}

func (repo *MongoStaffRepo) DeleteWindow(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.windowsColl.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting availability window: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("availability window %s not found", id)
	}
	return nil
}

func (repo *MongoStaffRepo) GetWindowsByStaff(staffID string) ([]models.AvailabilityWindow, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.windowsColl.Find(ctx, bson.M{"staffId": staffID},
		options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching availability windows: %w", err)
	}
	defer cursor.Close(ctx)

	var windows []models.AvailabilityWindow
	for cursor.Next(ctx) {
		var w models.AvailabilityWindow
		if err := cursor.Decode(&w); err != nil {
			return nil, fmt.Errorf("error decoding availability window: %w", err)
		}
		windows = append(windows, w)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return windows, nil
}
