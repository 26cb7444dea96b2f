package graphql

import (
	"context"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/service/reservations"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_privatisation_v2"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/create_reservation_v2"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/get_availability"
)

type reservationsArgs struct {
	BusinessID   graphql.ID
	BusinessType string
	Status       *string
	Date         *string
}

func (r *Resolver) Reservations(ctx context.Context, args reservationsArgs) ([]*reservationDTO, error) {
	const op = "reservations"

	businessID, err := parseObjectID("businessId", args.BusinessID)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	bt, err := domain.ParseBusinessType(args.BusinessType)
	if err != nil {
		return nil, r.mapError(op, err)
	}

	filter := domain.ReservationFilter{BusinessID: businessID, BusinessType: &bt, IncludeInactive: true}
	if args.Status != nil && *args.Status != "" {
		st, err := domain.ParseReservationStatus(*args.Status)
		if err != nil {
			return nil, r.mapError(op, err)
		}
		filter.Status = &st
	}
	if filter.Date, err = parseOptDate("date", args.Date); err != nil {
		return nil, r.mapError(op, err)
	}

	list, err := r.deps.Reservations.List(ctx, filter)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return toReservations(list), nil
}

func (r *Resolver) Reservation(ctx context.Context, args idArgs) (*reservationDTO, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return nil, r.mapError("reservation", err)
	}
	res, err := r.deps.Reservations.Get(ctx, id)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			return nil, nil
		}
		return nil, r.mapError("reservation", err)
	}
	return toReservation(res), nil
}

type reservationInputArgs struct {
	Input reservationInput
}

// CreateReservation бронирование любого типа бизнеса
func (r *Resolver) CreateReservation(ctx context.Context, args reservationInputArgs) (*reservationDTO, error) {
	const op = "createReservation"
	in := args.Input

	req := &create_reservation.Request{
		BusinessType:    in.BusinessType,
		CustomerID:      deref(in.CustomerID),
		Customer:        in.CustomerInfo.toDomain(),
		PartySize:       int(in.PartySize),
		Time:            timeArg(deref(in.Time)),
		Duration:        derefInt(in.Duration),
		Seating:         deref(in.Emplacement),
		Notes:           deref(in.Notes),
		SpecialRequests: deref(in.SpecialRequests),
	}

	var err error
	if req.BusinessID, err = parseObjectID("businessId", in.BusinessID); err != nil {
		return nil, r.mapError(op, err)
	}
	if req.Date, err = parseDate("date", deref(in.Date)); err != nil {
		return nil, r.mapError(op, err)
	}
	if req.CheckIn, err = parseOptDate("checkIn", in.CheckIn); err != nil {
		return nil, r.mapError(op, err)
	}
	if req.CheckOut, err = parseOptDate("checkOut", in.CheckOut); err != nil {
		return nil, r.mapError(op, err)
	}
	if req.RoomID, err = parseOptObjectID("roomId", in.RoomID); err != nil {
		return nil, r.mapError(op, err)
	}
	if req.TableID, err = parseOptObjectID("tableId", in.TableID); err != nil {
		return nil, r.mapError(op, err)
	}
	if req.ServiceID, err = parseOptObjectID("serviceId", in.ServiceID); err != nil {
		return nil, r.mapError(op, err)
	}
	if req.StaffID, err = parseOptObjectID("staffId", in.StaffID); err != nil {
		return nil, r.mapError(op, err)
	}

	resp, err := r.deps.CreateReservation.Execute(ctx, req)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return toReservation(resp.Reservation), nil
}

type reservationV2Args struct {
	Input reservationV2Input
}

// CreateReservationV2 бронирование стола с ценой по временному окну
func (r *Resolver) CreateReservationV2(ctx context.Context, args reservationV2Args) (*reservationDTO, error) {
	const op = "createReservationV2"
	in := args.Input

	restaurantID, err := parseObjectID("restaurantId", in.RestaurantID)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, r.mapError(op, err)
	}

	resp, err := r.deps.CreateReservationV2.Execute(ctx, &create_reservation_v2.Request{
		RestaurantID: restaurantID,
		PartySize:    int(in.Personnes),
		Time:         timeArg(in.Heure),
		Date:         date,
		Seating:      deref(in.Emplacement),
		Customer:     in.CustomerInfo.toDomain(),
		CustomerID:   deref(in.CustomerID),
		Notes:        deref(in.Notes),
	})
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return toReservation(resp.Reservation), nil
}

type privatisationV2Args struct {
	Input privatisationV2Input
}

// CreatePrivatisationV2 приватизация ресторана по фиксированному тарифу
func (r *Resolver) CreatePrivatisationV2(ctx context.Context, args privatisationV2Args) (*reservationDTO, error) {
	const op = "createPrivatisationV2"
	in := args.Input

	restaurantID, err := parseObjectID("restaurantId", in.RestaurantID)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	date, err := parseDate("date", in.Date)
	if err != nil {
		return nil, r.mapError(op, err)
	}

	resp, err := r.deps.CreatePrivatisationV2.Execute(ctx, &create_privatisation_v2.Request{
		RestaurantID:  restaurantID,
		PartySize:     int(in.Personnes),
		Time:          timeArg(in.Heure),
		Date:          date,
		Type:          in.Type,
		Space:         deref(in.Espace),
		Menu:          deref(in.Menu),
		DurationHours: derefInt(in.DureeHeures),
		Customer:      in.CustomerInfo.toDomain(),
		CustomerID:    deref(in.CustomerID),
	})
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return toReservation(resp.Reservation), nil
}

type reservationUpdateArgs struct {
	ID    graphql.ID
	Input reservationUpdateInput
}

// UpdateReservation частичное обновление; сумма всегда считается сервером
func (r *Resolver) UpdateReservation(ctx context.Context, args reservationUpdateArgs) (*reservationDTO, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return nil, r.mapError("updateReservation", err)
	}
	patch, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("updateReservation", err)
	}

	updated, err := r.deps.Reservations.Update(ctx, id, patch)
	if err != nil {
		return nil, r.mapError("updateReservation", err)
	}
	return toReservation(updated), nil
}

func (r *Resolver) CancelReservation(ctx context.Context, args idArgs) (*reservationDTO, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return nil, r.mapError("cancelReservation", err)
	}
	cancelled, err := r.deps.Reservations.Cancel(ctx, id)
	if err != nil {
		return nil, r.mapError("cancelReservation", err)
	}
	return toReservation(cancelled), nil
}

func (r *Resolver) DeleteReservation(ctx context.Context, args idArgs) (bool, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return false, r.mapError("deleteReservation", err)
	}
	if err := r.deps.Reservations.Delete(ctx, id); err != nil {
		return false, r.mapError("deleteReservation", err)
	}
	return true, nil
}

type availabilityArgs struct {
	RestaurantID graphql.ID
	Date         string
	PartySize    int32
}

// Availability слоты ресторана на дату
func (r *Resolver) Availability(ctx context.Context, args availabilityArgs) ([]*slotDTO, error) {
	restaurantID, err := parseObjectID("restaurantId", args.RestaurantID)
	if err != nil {
		return nil, r.mapError("availability", err)
	}
	date, err := parseDate("date", args.Date)
	if err != nil {
		return nil, r.mapError("availability", err)
	}

	resp, err := r.deps.GetAvailability.Execute(ctx, &get_availability.Request{
		RestaurantID: restaurantID,
		Date:         date,
		PartySize:    int(args.PartySize),
	})
	if err != nil {
		return nil, r.mapError("availability", err)
	}
	return toSlots(resp.Slots), nil
}
