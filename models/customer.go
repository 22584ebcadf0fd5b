package models

import "time"

// Customer is a client of one business, created on first booking through
// the customer portal.
type Customer struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	Name       string    `bson:"name" json:"name"`
	Email      string    `bson:"email" json:"email"`
	Phone      string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
