package models

import "time"

// Roles a profile can carry. Staff roles cover everyone who appears on the
// staff surface; barbers are additionally bookable.
const (
	RoleClient  = "client"
	RoleBarber  = "barber"
	RoleManager = "manager"
	RoleOwner   = "owner"
	RoleAdmin   = "admin"
)

// StaffRoles lists the roles shown on the staff management surface.
var StaffRoles = []string{RoleBarber, RoleManager, RoleOwner, RoleAdmin}

// Profile links an authenticated identity (UserID is the auth subject) to a
// role and an optional home location.
type Profile struct {
	ID                string    `bson:"id" json:"id"`
	UserID            string    `bson:"user_id" json:"userId"`
	Email             string    `bson:"email" json:"email"`
	Name              string    `bson:"name" json:"name"`
	Phone             string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role              string    `bson:"role" json:"role"`
	LocationID        string    `bson:"location_id,omitempty" json:"locationId,omitempty"`
	PreferredBarberID string    `bson:"preferred_barber_id,omitempty" json:"preferredBarberId,omitempty"`
	PortraitID        string    `bson:"portrait_id,omitempty" json:"portraitId,omitempty"`
	DeviceTokens      []string  `bson:"device_tokens,omitempty" json:"-"`
	IsActive          bool      `bson:"is_active" json:"isActive"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsStaff reports whether the profile belongs to the staff surface.
func (p *Profile) IsStaff() bool {
	for _, r := range StaffRoles {
		if p.Role == r {
			return true
		}
	}
	return false
}
