package graphql

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_privatisation_v2"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation_v2"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/update_restaurant"
)

type BusinessService interface {
	Create(ctx context.Context, b *domain.Business, settings *domain.SettingsPatch) (*domain.Business, error)
	Get(ctx context.Context, businessType domain.BusinessType, id primitive.ObjectID) (*domain.Business, error)
	List(ctx context.Context, businessType domain.BusinessType) ([]*domain.Business, error)
	Update(ctx context.Context, businessType domain.BusinessType, id primitive.ObjectID, patch domain.BusinessPatch) (*domain.Business, error)
	Delete(ctx context.Context, businessType domain.BusinessType, id primitive.ObjectID) error
}

type ReservationService interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error)
	Update(ctx context.Context, id primitive.ObjectID, patch domain.ReservationPatch) (*domain.Reservation, error)
	Cancel(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PrivatisationService interface {
	ListByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]*domain.PrivatisationOption, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.PrivatisationOption, error)
	Create(ctx context.Context, opt *domain.PrivatisationOption) (*domain.PrivatisationOption, error)
	Update(ctx context.Context, id primitive.ObjectID, input *domain.PrivatisationOption) (*domain.PrivatisationOption, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CatalogService CRUD одного вида элементов каталога
type CatalogService[T any] interface {
	List(ctx context.Context, businessID primitive.ObjectID, businessType *domain.BusinessType) ([]*T, error)
	Get(ctx context.Context, id primitive.ObjectID) (*T, error)
	Create(ctx context.Context, item *T) (*T, error)
	Update(ctx context.Context, id primitive.ObjectID, input *T) (*T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type InvoiceService interface {
	GetByID(ctx context.Context, id int64) (*domain.Invoice, error)
	GetByReservationID(ctx context.Context, reservationID string) (*domain.Invoice, error)
	ListByBusiness(ctx context.Context, businessID primitive.ObjectID) ([]*domain.Invoice, error)
	RenderPDF(ctx context.Context, id int64) ([]byte, *domain.Invoice, error)
}

type UpdateRestaurantUseCase interface {
	Execute(ctx context.Context, req *update_restaurant.Request) (*update_restaurant.Response, error)
}

type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *create_reservation.Request) (*create_reservation.Response, error)
}

type CreateReservationV2UseCase interface {
	Execute(ctx context.Context, req *create_reservation_v2.Request) (*create_reservation_v2.Response, error)
}

type CreatePrivatisationV2UseCase interface {
	Execute(ctx context.Context, req *create_privatisation_v2.Request) (*create_privatisation_v2.Response, error)
}

type GetAvailabilityUseCase interface {
	Execute(ctx context.Context, req *get_availability.Request) (*get_availability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
