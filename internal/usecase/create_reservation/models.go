package create_reservation

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// Request модель запроса на создание бронирования любого типа бизнеса
type Request struct {
	BusinessID   primitive.ObjectID
	BusinessType string // hotel | restaurant | salon, без учета регистра
	CustomerID   string
	Customer     *domain.CustomerInfo

	PartySize int
	Date      time.Time
	Time      types.TimeString // обязательно для ресторана и салона
	Duration  int              // часы
	CheckIn   *time.Time
	CheckOut  *time.Time
	Seating   string

	RoomID    *primitive.ObjectID
	TableID   *primitive.ObjectID
	ServiceID *primitive.ObjectID
	StaffID   *primitive.ObjectID

	Notes           string
	SpecialRequests string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation *domain.Reservation
}
