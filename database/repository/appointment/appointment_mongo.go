package apptRepo

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

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &MongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

func (repo *MongoAppointmentRepo) Create(appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("error inserting appointment: %w", err)
	}
	return nil
}

func (repo *MongoAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("error fetching appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

func (repo *MongoAppointmentRepo) GetByStaffBetween(staffID string, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"staffId": staffID,
		"date":    bson.M{"$gte": from, "$lt": to},
	}
	return repo.find(filter)
}

func (repo *MongoAppointmentRepo) GetByServiceBetween(serviceID string, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"serviceId": serviceID,
		"date":      bson.M{"$gte": from, "$lt": to},
	}
	return repo.find(filter)
}

func (repo *MongoAppointmentRepo) ListByBusinessBetween(businessID string, from, to time.Time) ([]models.Appointment, error) {
	filter := bson.M{
		"businessId": businessID,
		"date":       bson.M{"$gte": from, "$lt": to},
	}
	return repo.find(filter)
}

func (repo *MongoAppointmentRepo) ListByCustomer(customerID string, limit int64) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := repo.coll.Find(ctx, bson.M{"customerId": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching customer appointments: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAppointments(ctx, cursor)
}

func (repo *MongoAppointmentRepo) find(filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error fetching appointments: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeAppointments(ctx, cursor)
}

func decodeAppointments(ctx context.Context, cursor *mongo.Cursor) ([]models.Appointment, error) {
	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("error decoding appointment: %w", err)
		}
		appts = append(appts, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return appts, nil
}

func (repo *MongoAppointmentRepo) UpdateStatus(id, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating appointment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}

func (repo *MongoAppointmentRepo) Reschedule(id string, date time.Time, duration int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"date": date, "duration": duration, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error rescheduling appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}
