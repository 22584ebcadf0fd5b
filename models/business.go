package models

import "time"

// Business is a tenant on the platform: a salon or similar service business.
// All staff, services, customers and appointments are scoped to one business.
type Business struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Slug         string    `bson:"slug" json:"slug"`
	OwnerEmail   string    `bson:"ownerEmail" json:"ownerEmail"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string    `bson:"address,omitempty" json:"address,omitempty"`
	Timezone     string    `bson:"timezone" json:"timezone"` // IANA name, e.g. "Europe/Berlin"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// Location resolves the business's IANA timezone, falling back to UTC.
func (b *Business) Location() *time.Location {
	if b.Timezone != "" {
		if loc, err := time.LoadLocation(b.Timezone); err == nil {
			return loc
		}
	}
	return time.UTC
}
