package graphql

import (
	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// Dependencies сервисы и usecases, которые обслуживает схема
type Dependencies struct {
	Businesses    BusinessService
	Reservations  ReservationService
	Privatisation PrivatisationService
	Invoices      InvoiceService

	Services CatalogService[domain.Service]
	Staff    CatalogService[domain.Staff]
	Tables   CatalogService[domain.Table]
	Rooms    CatalogService[domain.Room]

	UpdateRestaurant      UpdateRestaurantUseCase
	CreateReservation     CreateReservationUseCase
	CreateReservationV2   CreateReservationV2UseCase
	CreatePrivatisationV2 CreatePrivatisationV2UseCase
	GetAvailability       GetAvailabilityUseCase
}

// Resolver корневой резолвер Query и Mutation
type Resolver struct {
	deps   Dependencies
	logger Logger
}

func NewResolver(deps Dependencies, logger Logger) *Resolver {
	return &Resolver{
		deps:   deps,
		logger: logger,
	}
}
