package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessType discriminates tenants stored in the businesses collection
type BusinessType string

const (
	BusinessTypeHotel      BusinessType = "hotel"
	BusinessTypeRestaurant BusinessType = "restaurant"
	BusinessTypeSalon      BusinessType = "salon"
)

// ParseBusinessType parses a business type case-insensitively
func ParseBusinessType(s string) (BusinessType, error) {
	switch t := BusinessType(strings.ToLower(strings.TrimSpace(s))); t {
	case BusinessTypeHotel, BusinessTypeRestaurant, BusinessTypeSalon:
		return t, nil
	default:
		return "", NewValidationError("businessType", fmt.Sprintf("unknown business type %q", s))
	}
}

// Address of a business
type Address struct {
	Street  string `bson:"street,omitempty"`
	City    string `bson:"city,omitempty"`
	State   string `bson:"state,omitempty"`
	ZipCode string `bson:"zipCode,omitempty"`
	Country string `bson:"country,omitempty"`
}

// Contact of a business
type Contact struct {
	Phone   string `bson:"phone,omitempty"`
	Email   string `bson:"email,omitempty"`
	Website string `bson:"website,omitempty"`
}

// Business is a hotel, restaurant or salon tenant.
// Type-specific data lives in the optional blocks below.
type Business struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Type        BusinessType       `bson:"businessType"`
	OwnerID     string             `bson:"ownerId,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description,omitempty"`
	Address     Address            `bson:"address"`
	Contact     Contact            `bson:"contact"`
	Images      []string           `bson:"images,omitempty"`
	IsActive    bool               `bson:"isActive"`

	// Restaurant
	Settings *RestaurantSettings `bson:"settings,omitempty"`
	Cuisine  []string            `bson:"cuisine,omitempty"`

	// Hotel
	OpeningPeriods []OpeningPeriod `bson:"openingPeriods,omitempty"`
	Amenities      []string        `bson:"amenities,omitempty"`
	StarRating     int             `bson:"starRating,omitempty"`

	// Salon
	Specialties []string `bson:"specialties,omitempty"`

	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// RestaurantSettings returns the restaurant settings, never nil
func (b *Business) RestaurantSettings() RestaurantSettings {
	if b.Settings == nil {
		return DefaultRestaurantSettings()
	}
	return *b.Settings
}

// OpeningPeriod is a date range during which a hotel accepts stays
type OpeningPeriod struct {
	StartDate time.Time `bson:"startDate"`
	EndDate   time.Time `bson:"endDate"`
}

// Contains reports whether the stay [checkIn, checkOut] lies fully inside the period
func (p OpeningPeriod) Contains(checkIn, checkOut time.Time) bool {
	return !checkIn.Before(p.StartDate) && !checkOut.After(p.EndDate)
}
