package models

import "time"

// Location represents a shop in the chain. Immutable during a booking session.
type Location struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Address   string    `bson:"address" json:"address"`
	City      string    `bson:"city" json:"city"`
	State     string    `bson:"state,omitempty" json:"state,omitempty"`
	Zip       string    `bson:"zip,omitempty" json:"zip,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Timezone  string    `bson:"timezone" json:"timezone"`
	PhotoID   string    `bson:"photo_id,omitempty" json:"photoId,omitempty"`
	IsActive  bool      `bson:"is_active" json:"isActive"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
