package businessRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"glowdesk/database"
	"glowdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	businessColl *mongo.Collection
	customerColl *mongo.Collection
}

// NewMongoBusinessRepo constructs a new instance of MongoBusinessRepo.
func NewMongoBusinessRepo() BusinessRepository {
	db := database.DB()
	return &MongoBusinessRepo{
		businessColl: db.Collection("businesses"),
		customerColl: db.Collection("customers"),
	}
}

func (repo *MongoBusinessRepo) CreateBusiness(business *models.Business) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.businessColl.InsertOne(ctx, business); err != nil {
		return fmt.Errorf("error inserting business: %w", err)
	}
	return nil
}

func (repo *MongoBusinessRepo) GetBusiness(id string) (*models.Business, error) {
	return repo.findBusiness(bson.M{"id": id})
}

func (repo *MongoBusinessRepo) GetBusinessBySlug(slug string) (*models.Business, error) {
	return repo.findBusiness(bson.M{"slug": slug})
}

func (repo *MongoBusinessRepo) GetBusinessByOwnerEmail(email string) (*models.Business, error) {
	return repo.findBusiness(bson.M{"ownerEmail": email})
}

func (repo *MongoBusinessRepo) findBusiness(filter bson.M) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var business models.Business
	if err := repo.businessColl.FindOne(ctx, filter).Decode(&business); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching business: %w", err)
	}
	return &business, nil
}

func (repo *MongoBusinessRepo) CreateCustomer(customer *models.Customer) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.customerColl.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("error inserting customer: %w", err)
	}
	return nil
}

func (repo *MongoBusinessRepo) GetCustomer(id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var customer models.Customer
	if err := repo.customerColl.FindOne(ctx, bson.M{"id": id}).Decode(&customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching customer with id %s: %w", id, err)
	}
	return &customer, nil
}

func (repo *MongoBusinessRepo) FindCustomerByEmail(businessID, email string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var customer models.Customer
	filter := bson.M{"businessId": businessID, "email": email}
	if err := repo.customerColl.FindOne(ctx, filter).Decode(&customer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching customer by email: %w", err)
	}
	return &customer, nil
}

// EnsureIndexes creates the necessary indexes on the businesses and
// customers collections.
func (repo *MongoBusinessRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	businessIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_slug"),
		},
		{
			Keys:    bson.D{{Key: "ownerEmail", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_owner_email"),
		},
	}
	if _, err := repo.businessColl.Indexes().CreateMany(ctx, businessIndexes); err != nil {
		return fmt.Errorf("failed to create business indexes: %w", err)
	}

	customerIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "businessId", Value: 1}, {Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_business_email"),
		},
	}
	if _, err := repo.customerColl.Indexes().CreateMany(ctx, customerIndexes); err != nil {
		return fmt.Errorf("failed to create customer indexes: %w", err)
	}
	return nil
}
