package graphql

import (
	"context"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/service/businesses"
	"github.com/m04kA/SMC-HospitalityService/internal/usecase/update_restaurant"
)

type idArgs struct {
	ID graphql.ID
}

type businessInputArgs struct {
	Input businessInput
}

type businessUpdateArgs struct {
	ID    graphql.ID
	Input businessUpdateInput
}

func (r *Resolver) Hotels(ctx context.Context) ([]*businessDTO, error) {
	return r.listBusinesses(ctx, domain.BusinessTypeHotel)
}

func (r *Resolver) Hotel(ctx context.Context, args idArgs) (*businessDTO, error) {
	return r.getBusiness(ctx, domain.BusinessTypeHotel, args.ID)
}

func (r *Resolver) Restaurants(ctx context.Context) ([]*businessDTO, error) {
	return r.listBusinesses(ctx, domain.BusinessTypeRestaurant)
}

func (r *Resolver) Restaurant(ctx context.Context, args idArgs) (*businessDTO, error) {
	return r.getBusiness(ctx, domain.BusinessTypeRestaurant, args.ID)
}

func (r *Resolver) Salons(ctx context.Context) ([]*businessDTO, error) {
	return r.listBusinesses(ctx, domain.BusinessTypeSalon)
}

func (r *Resolver) Salon(ctx context.Context, args idArgs) (*businessDTO, error) {
	return r.getBusiness(ctx, domain.BusinessTypeSalon, args.ID)
}

func (r *Resolver) CreateHotel(ctx context.Context, args businessInputArgs) (*businessDTO, error) {
	return r.createBusiness(ctx, domain.BusinessTypeHotel, args.Input)
}

func (r *Resolver) CreateRestaurant(ctx context.Context, args businessInputArgs) (*businessDTO, error) {
	return r.createBusiness(ctx, domain.BusinessTypeRestaurant, args.Input)
}

func (r *Resolver) CreateSalon(ctx context.Context, args businessInputArgs) (*businessDTO, error) {
	return r.createBusiness(ctx, domain.BusinessTypeSalon, args.Input)
}

func (r *Resolver) UpdateHotel(ctx context.Context, args businessUpdateArgs) (*businessDTO, error) {
	return r.updateBusiness(ctx, domain.BusinessTypeHotel, args)
}

func (r *Resolver) UpdateSalon(ctx context.Context, args businessUpdateArgs) (*businessDTO, error) {
	return r.updateBusiness(ctx, domain.BusinessTypeSalon, args)
}

// UpdateRestaurant обновляет ресторан вместе с настройками одной записью
func (r *Resolver) UpdateRestaurant(ctx context.Context, args businessUpdateArgs) (*businessDTO, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return nil, r.mapError("updateRestaurant", err)
	}
	patch, settings, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("updateRestaurant", err)
	}

	resp, err := r.deps.UpdateRestaurant.Execute(ctx, &update_restaurant.Request{
		ID:       id,
		Patch:    patch,
		Settings: settings,
	})
	if err != nil {
		return nil, r.mapError("updateRestaurant", err)
	}
	return toBusiness(resp.Restaurant), nil
}

func (r *Resolver) DeleteHotel(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteBusiness(ctx, domain.BusinessTypeHotel, args.ID)
}

func (r *Resolver) DeleteRestaurant(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteBusiness(ctx, domain.BusinessTypeRestaurant, args.ID)
}

func (r *Resolver) DeleteSalon(ctx context.Context, args idArgs) (bool, error) {
	return r.deleteBusiness(ctx, domain.BusinessTypeSalon, args.ID)
}

type theoreticalCapacityArgs struct {
	Tables       *tableInventoryInput
	CustomTables *[]*customTableInput
}

// TheoreticalCapacity считает места по инвентарю без сохранения
func (r *Resolver) TheoreticalCapacity(args theoreticalCapacityArgs) int32 {
	return int32(domain.TheoreticalCapacity(args.Tables.toDomain(), customTablesToDomain(args.CustomTables)))
}

func (r *Resolver) listBusinesses(ctx context.Context, bt domain.BusinessType) ([]*businessDTO, error) {
	list, err := r.deps.Businesses.List(ctx, bt)
	if err != nil {
		return nil, r.mapError("list "+string(bt), err)
	}
	return toBusinesses(list), nil
}

func (r *Resolver) getBusiness(ctx context.Context, bt domain.BusinessType, rawID graphql.ID) (*businessDTO, error) {
	id, err := parseObjectID("id", rawID)
	if err != nil {
		return nil, r.mapError("get "+string(bt), err)
	}
	b, err := r.deps.Businesses.Get(ctx, bt, id)
	if err != nil {
		if errors.Is(err, businesses.ErrBusinessNotFound) {
			return nil, nil
		}
		return nil, r.mapError("get "+string(bt), err)
	}
	return toBusiness(b), nil
}

func (r *Resolver) createBusiness(ctx context.Context, bt domain.BusinessType, in businessInput) (*businessDTO, error) {
	b, settings, err := in.toDomain()
	if err != nil {
		return nil, r.mapError("create "+string(bt), err)
	}
	if bt != domain.BusinessTypeRestaurant && settings != nil {
		return nil, r.mapError("create "+string(bt), domain.NewValidationError("settings", "settings apply to restaurants only"))
	}
	b.Type = bt

	created, err := r.deps.Businesses.Create(ctx, b, settings)
	if err != nil {
		return nil, r.mapError("create "+string(bt), err)
	}
	return toBusiness(created), nil
}

func (r *Resolver) updateBusiness(ctx context.Context, bt domain.BusinessType, args businessUpdateArgs) (*businessDTO, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return nil, r.mapError("update "+string(bt), err)
	}
	patch, settings, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("update "+string(bt), err)
	}
	if settings != nil {
		return nil, r.mapError("update "+string(bt), domain.NewValidationError("settings", "settings apply to restaurants only"))
	}

	updated, err := r.deps.Businesses.Update(ctx, bt, id, patch)
	if err != nil {
		return nil, r.mapError("update "+string(bt), err)
	}
	return toBusiness(updated), nil
}

func (r *Resolver) deleteBusiness(ctx context.Context, bt domain.BusinessType, rawID graphql.ID) (bool, error) {
	id, err := parseObjectID("id", rawID)
	if err != nil {
		return false, r.mapError("delete "+string(bt), err)
	}
	if err := r.deps.Businesses.Delete(ctx, bt, id); err != nil {
		return false, r.mapError("delete "+string(bt), err)
	}
	return true, nil
}
