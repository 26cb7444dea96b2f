package get_availability

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// Request модель запроса на получение слотов ресторана
type Request struct {
	RestaurantID primitive.ObjectID
	Date         time.Time // Дата (без времени)
	PartySize    int
}

// Response модель ответа со списком слотов
type Response struct {
	RestaurantID primitive.ObjectID
	Date         time.Time
	Slots        []domain.SlotAvailability
}
