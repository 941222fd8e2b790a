package models

import "time"

// Service is a bookable menu item. A service with an empty LocationID is
// offered chain-wide. Read-only during booking.
type Service struct {
	ID              string    `bson:"id" json:"id"`
	LocationID      string    `bson:"location_id,omitempty" json:"locationId,omitempty"`
	Name            string    `bson:"name" json:"name"`
	Category        string    `bson:"category,omitempty" json:"category,omitempty"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int       `bson:"duration_minutes" json:"durationMinutes"`
	PriceCents      int64     `bson:"price_cents" json:"priceCents"`
	Special         bool      `bson:"special,omitempty" json:"special,omitempty"`
	IsActive        bool      `bson:"is_active" json:"isActive"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
