package graphql

import (
	"context"
	"errors"

	"github.com/graph-gophers/graphql-go"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/service/privatisation"
)

type restaurantArgs struct {
	RestaurantID graphql.ID
}

type privatisationOptionArgs struct {
	Input privatisationOptionInput
}

type privatisationOptionUpdateArgs struct {
	ID    graphql.ID
	Input privatisationOptionInput
}

func (r *Resolver) PrivatisationOptionsByRestaurant(ctx context.Context, args restaurantArgs) ([]*privatisationOptionDTO, error) {
	restaurantID, err := parseObjectID("restaurantId", args.RestaurantID)
	if err != nil {
		return nil, r.mapError("privatisationOptionsByRestaurant", err)
	}
	list, err := r.deps.Privatisation.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, r.mapError("privatisationOptionsByRestaurant", err)
	}

	out := make([]*privatisationOptionDTO, 0, len(list))
	for _, o := range list {
		out = append(out, toPrivatisationOption(o))
	}
	return out, nil
}

func (r *Resolver) PrivatisationOption(ctx context.Context, args idArgs) (*privatisationOptionDTO, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return nil, r.mapError("privatisationOption", err)
	}
	opt, err := r.deps.Privatisation.Get(ctx, id)
	if err != nil {
		if errors.Is(err, privatisation.ErrOptionNotFound) {
			return nil, nil
		}
		return nil, r.mapError("privatisationOption", err)
	}
	return toPrivatisationOption(opt), nil
}

func (r *Resolver) CreatePrivatisationOption(ctx context.Context, args privatisationOptionArgs) (*privatisationOptionDTO, error) {
	const op = "createPrivatisationOption"

	opt, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError(op, err)
	}
	if opt.RestaurantID.IsZero() {
		return nil, r.mapError(op, domain.NewValidationError("restaurantId", "restaurantId is required"))
	}

	created, err := r.deps.Privatisation.Create(ctx, opt)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return toPrivatisationOption(created), nil
}

func (r *Resolver) UpdatePrivatisationOption(ctx context.Context, args privatisationOptionUpdateArgs) (*privatisationOptionDTO, error) {
	const op = "updatePrivatisationOption"

	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	opt, err := args.Input.toDomain()
	if err != nil {
		return nil, r.mapError(op, err)
	}

	updated, err := r.deps.Privatisation.Update(ctx, id, opt)
	if err != nil {
		return nil, r.mapError(op, err)
	}
	return toPrivatisationOption(updated), nil
}

func (r *Resolver) DeletePrivatisationOption(ctx context.Context, args idArgs) (bool, error) {
	id, err := parseObjectID("id", args.ID)
	if err != nil {
		return false, r.mapError("deletePrivatisationOption", err)
	}
	if err := r.deps.Privatisation.Delete(ctx, id); err != nil {
		return false, r.mapError("deletePrivatisationOption", err)
	}
	return true, nil
}
