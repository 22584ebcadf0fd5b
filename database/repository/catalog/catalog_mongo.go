package catalogRepo

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

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		coll: database.DB().Collection("services"),
	}
}

func (repo *MongoCatalogRepo) CreateService(service *models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("error inserting service: %w", err)
	}
	return nil
}

func (repo *MongoCatalogRepo) GetService(id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var service models.Service
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &service, nil
}

func (repo *MongoCatalogRepo) ListServicesByBusiness(businessID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"businessId": businessID},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return services, nil
}

func (repo *MongoCatalogRepo) UpdateService(service *models.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":        service.Name,
		"description": service.Description,
		"duration":    service.Duration,
		"priceCents":  service.PriceCents,
		"model":       service.Model,
		"capacity":    service.Capacity,
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": service.ID}, update)
	if err != nil {
		return fmt.Errorf("error updating service: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", service.ID)
	}
	return nil
}

func (repo *MongoCatalogRepo) SetServiceActive(id string, active bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"active": active}})
	if err != nil {
		return fmt.Errorf("error updating service: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %s not found", id)
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the services collection.
func (repo *MongoCatalogRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "active", Value: 1}},
			Options: options.Index().SetName("business_active_idx"),
		},
	}
	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}
