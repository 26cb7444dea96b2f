package graphql

import (
	"context"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/service/catalog"
)

type businessItemsArgs struct {
	BusinessID   graphql.ID
	BusinessType *string
}

type hotelArgs struct {
	HotelID graphql.ID
}

func (r *Resolver) Services(ctx context.Context, args businessItemsArgs) ([]*serviceDTO, error) {
	bt, err := optBusinessType(args.BusinessType)
	if err != nil {
		return nil, r.mapError("services", err)
	}
	return listItems(ctx, r, "services", r.deps.Services, "businessId", args.BusinessID, bt, toService)
}

func (r *Resolver) Service(ctx context.Context, args idArgs) (*serviceDTO, error) {
	return getItem(ctx, r, "service", r.deps.Services, args.ID, toService)
}

func (r *Resolver) Staff(ctx context.Context, args businessItemsArgs) ([]*staffDTO, error) {
	bt, err := optBusinessType(args.BusinessType)
	if err != nil {
		return nil, r.mapError("staff", err)
	}
	return listItems(ctx, r, "staff", r.deps.Staff, "businessId", args.BusinessID, bt, toStaff)
}

func (r *Resolver) StaffMember(ctx context.Context, args idArgs) (*staffDTO, error) {
	return getItem(ctx, r, "staffMember", r.deps.Staff, args.ID, toStaff)
}

func (r *Resolver) Tables(ctx context.Context, args restaurantArgs) ([]*tableDTO, error) {
	return listItems(ctx, r, "tables", r.deps.Tables, "restaurantId", args.RestaurantID, "", toTable)
}

func (r *Resolver) Table(ctx context.Context, args idArgs) (*tableDTO, error) {
	return getItem(ctx, r, "table", r.deps.Tables, args.ID, toTable)
}

func (r *Resolver) Rooms(ctx context.Context, args hotelArgs) ([]*roomDTO, error) {
	return listItems(ctx, r, "rooms", r.deps.Rooms, "hotelId", args.HotelID, "", toRoom)
}

func (r *Resolver) Room(ctx context.Context, args idArgs) (*roomDTO, error) {
	return getItem(ctx, r, "room", r.deps.Rooms, args.ID, toRoom)
}

type serviceArgs struct {
	ID    graphql.ID
	Input serviceInput
}

func (r *Resolver) CreateService(ctx context.Context, args struct{ Input serviceInput }) (*serviceDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("createService", err)
	}
	return createItem(ctx, r, "createService", r.deps.Services, item, toService)
}

func (r *Resolver) UpdateService(ctx context.Context, args serviceArgs) (*serviceDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("updateService", err)
	}
	return updateItem(ctx, r, "updateService", r.deps.Services, args.ID, item, toService)
}

func (r *Resolver) DeleteService(ctx context.Context, args idArgs) (bool, error) {
	return deleteItem(ctx, r, "deleteService", r.deps.Services, args.ID)
}

type staffArgs struct {
	ID    graphql.ID
	Input staffInput
}

func (r *Resolver) CreateStaff(ctx context.Context, args struct{ Input staffInput }) (*staffDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("createStaff", err)
	}
	return createItem(ctx, r, "createStaff", r.deps.Staff, item, toStaff)
}

func (r *Resolver) UpdateStaff(ctx context.Context, args staffArgs) (*staffDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("updateStaff", err)
	}
	return updateItem(ctx, r, "updateStaff", r.deps.Staff, args.ID, item, toStaff)
}

func (r *Resolver) DeleteStaff(ctx context.Context, args idArgs) (bool, error) {
	return deleteItem(ctx, r, "deleteStaff", r.deps.Staff, args.ID)
}

type tableArgs struct {
	ID    graphql.ID
	Input tableInput
}

func (r *Resolver) CreateTable(ctx context.Context, args struct{ Input tableInput }) (*tableDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("createTable", err)
	}
	return createItem(ctx, r, "createTable", r.deps.Tables, item, toTable)
}

func (r *Resolver) UpdateTable(ctx context.Context, args tableArgs) (*tableDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("updateTable", err)
	}
	return updateItem(ctx, r, "updateTable", r.deps.Tables, args.ID, item, toTable)
}

func (r *Resolver) DeleteTable(ctx context.Context, args idArgs) (bool, error) {
	return deleteItem(ctx, r, "deleteTable", r.deps.Tables, args.ID)
}

type roomArgs struct {
	ID    graphql.ID
	Input roomInput
}

func (r *Resolver) CreateRoom(ctx context.Context, args struct{ Input roomInput }) (*roomDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("createRoom", err)
	}
	return createItem(ctx, r, "createRoom", r.deps.Rooms, item, toRoom)
}

func (r *Resolver) UpdateRoom(ctx context.Context, args roomArgs) (*roomDTO, error) {
	item, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError("updateRoom", err)
	}
	return updateItem(ctx, r, "updateRoom", r.deps.Rooms, args.ID, item, toRoom)
}

func (r *Resolver) DeleteRoom(ctx context.Context, args idArgs) (bool, error) {
	return deleteItem(ctx, r, "deleteRoom", r.deps.Rooms, args.ID)
}

func listItems[T, D any](
	ctx context.Context,
	r *Resolver,
	op string,
	svc CatalogService[T],
	field string,
	rawID graphql.ID,
	bt domain.BusinessType,
	conv func(*T) D,
) ([]D, error) {
	businessID, err := parseObjectID(field, rawID)
	if err != nil {
		return nil, r.mapError(op, err)
	}

	var btFilter *domain.BusinessType
	if bt != "" {
		btFilter = &bt
	}

	items, err := svc.List(ctx, businessID, btFilter)
	if err != nil {
		return nil, r.mapError(op, err)
	}

	out := make([]D, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	return out, nil
}

// getItem возвращает nil без ошибки, если элемента нет
func getItem[T any, D any](ctx context.Context, r *Resolver, op string, svc CatalogService[T], rawID graphql.ID, conv func(*T) D) (D, error) {
	var zero D

	id, err := parseObjectID("id", rawID)
	if err != nil {
		return zero, r.mapError(op, err)
	}
	item, err := svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			return zero, nil
		}
		return zero, r.mapError(op, err)
	}
	return conv(item), nil
}

func createItem[T any, D any](ctx context.Context, r *Resolver, op string, svc CatalogService[T], item *T, conv func(*T) D) (D, error) {
	var zero D

	created, err := svc.Create(ctx, item)
	if err != nil {
		return zero, r.mapError(op, err)
	}
	return conv(created), nil
}

func updateItem[T any, D any](ctx context.Context, r *Resolver, op string, svc CatalogService[T], rawID graphql.ID, item *T, conv func(*T) D) (D, error) {
	var zero D

	id, err := parseObjectID("id", rawID)
	if err != nil {
		return zero, r.mapError(op, err)
	}
	updated, err := svc.Update(ctx, id, item)
	if err != nil {
		return zero, r.mapError(op, err)
	}
	return conv(updated), nil
}

func deleteItem[T any](ctx context.Context, r *Resolver, op string, svc CatalogService[T], rawID graphql.ID) (bool, error) {
	id, err := parseObjectID("id", rawID)
	if err != nil {
		return false, r.mapError(op, err)
	}
	if err := svc.Delete(ctx, id); err != nil {
		return false, r.mapError(op, err)
	}
	return true, nil
}

