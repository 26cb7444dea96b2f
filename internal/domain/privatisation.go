package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GroupMenu is a named menu offered with a privatisation
type GroupMenu struct {
	Name        string  `bson:"nom"`
	Description string  `bson:"description,omitempty"`
	Price       float64 `bson:"prix"`
}

// PrivatisationOption describes an exclusive-use product of a restaurant.
// Tariff is informational: privatisation totals use the flat per-guest rate.
type PrivatisationOption struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantID     primitive.ObjectID `bson:"restaurantId"`
	Name             string             `bson:"nom"`
	Description      string             `bson:"description,omitempty"`
	Type             string             `bson:"type"`
	MaxCapacity      int                `bson:"capaciteMaximale"`
	MaxDurationHours int                `bson:"dureeMaximaleHeures"`
	GroupMenus       []string           `bson:"menusDeGroupe,omitempty"`
	MenuDetails      []GroupMenu        `bson:"menusDetails,omitempty"`
	Tariff           *float64           `bson:"tarif,omitempty"`
	Conditions       string             `bson:"conditions,omitempty"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}
