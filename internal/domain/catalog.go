package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a bookable service of a salon (or any business)
type Service struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID      primitive.ObjectID `bson:"businessId"`
	BusinessType    BusinessType       `bson:"businessType"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description,omitempty"`
	Category        string             `bson:"category,omitempty"`
	Price           float64            `bson:"price"`
	DurationMinutes int                `bson:"duration"`
	IsActive        bool               `bson:"isActive"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// Staff is a member of a business's personnel
type Staff struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID   primitive.ObjectID `bson:"businessId"`
	BusinessType BusinessType       `bson:"businessType"`
	Name         string             `bson:"name"`
	Role         string             `bson:"role,omitempty"`
	Email        string             `bson:"email,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	Specialties  []string           `bson:"specialties,omitempty"`
	IsActive     bool               `bson:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// Table is a physical table of a restaurant
type Table struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID   primitive.ObjectID `bson:"businessId"`
	BusinessType BusinessType       `bson:"businessType"`
	Number       string             `bson:"number"`
	Capacity     int                `bson:"capacity"`
	Location     string             `bson:"location,omitempty"`
	IsActive     bool               `bson:"isActive"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// Room is a hotel room
type Room struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	BusinessID    primitive.ObjectID `bson:"businessId"`
	BusinessType  BusinessType       `bson:"businessType"`
	Number        string             `bson:"number"`
	Type          string             `bson:"type,omitempty"`
	Capacity      int                `bson:"capacity"`
	PricePerNight float64            `bson:"pricePerNight"`
	Amenities     []string           `bson:"amenities,omitempty"`
	IsActive      bool               `bson:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

// Owner returns the business the service belongs to
func (s Service) Owner() primitive.ObjectID { return s.BusinessID }

// Validate checks the service before it is persisted
func (s Service) Validate() error {
	if s.Name == "" || len(s.Name) > MaxNameLength {
		return NewValidationError("name", "name must be between 1 and 200 characters")
	}
	if s.Price < 0 {
		return NewValidationError("price", "price must not be negative")
	}
	if s.DurationMinutes < 0 {
		return NewValidationError("duration", "duration must not be negative")
	}
	return nil
}

// Owner returns the business the staff member works for
func (s Staff) Owner() primitive.ObjectID { return s.BusinessID }

// Validate checks the staff member before it is persisted
func (s Staff) Validate() error {
	if s.Name == "" || len(s.Name) > MaxNameLength {
		return NewValidationError("name", "name must be between 1 and 200 characters")
	}
	return nil
}

// Owner returns the restaurant the table belongs to
func (t Table) Owner() primitive.ObjectID { return t.BusinessID }

// Validate checks the table before it is persisted
func (t Table) Validate() error {
	if t.Number == "" {
		return NewValidationError("number", "number is required")
	}
	if t.Capacity <= 0 {
		return NewValidationError("capacity", "capacity must be positive")
	}
	return nil
}

// Owner returns the hotel the room belongs to
func (r Room) Owner() primitive.ObjectID { return r.BusinessID }

// Validate checks the room before it is persisted
func (r Room) Validate() error {
	if r.Number == "" {
		return NewValidationError("number", "number is required")
	}
	if r.Capacity <= 0 {
		return NewValidationError("capacity", "capacity must be positive")
	}
	if r.PricePerNight < 0 {
		return NewValidationError("pricePerNight", "price must not be negative")
	}
	return nil
}
