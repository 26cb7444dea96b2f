package create_reservation_v2

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// Request модель запроса на бронирование стола в ресторане
type Request struct {
	RestaurantID primitive.ObjectID
	PartySize    int              // personnes
	Time         types.TimeString // heure
	Date         time.Time
	Seating      string // emplacement
	Customer     *domain.CustomerInfo
	CustomerID   string
	Notes        string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
}
