package create_privatisation_v2

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// Request модель запроса на приватизацию ресторана.
// Опция приватизации указывается по имени (type), а не по ID.
type Request struct {
	RestaurantID  primitive.ObjectID
	PartySize     int              // personnes
	Time          types.TimeString // heure
	Date          time.Time
	Type          string
	Space         string // espace
	Menu          string
	DurationHours int // dureeHeures
	Customer      *domain.CustomerInfo
	CustomerID    string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
}
