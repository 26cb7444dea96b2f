package privatisation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	optionRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/privatisation"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
	"github.com/m04kA/SMC-HospitalityService/pkg/ptr"
)

type fakeOptions struct {
	items map[primitive.ObjectID]*domain.PrivatisationOption
}

func (f *fakeOptions) Create(_ context.Context, o *domain.PrivatisationOption) (*domain.PrivatisationOption, error) {
	o.ID = primitive.NewObjectID()
	f.items[o.ID] = o
	return o, nil
}

func (f *fakeOptions) GetByID(_ context.Context, id primitive.ObjectID) (*domain.PrivatisationOption, error) {
	o, ok := f.items[id]
	if !ok {
		return nil, optionRepo.ErrOptionNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOptions) ListByRestaurant(_ context.Context, rid primitive.ObjectID) ([]*domain.PrivatisationOption, error) {
	var out []*domain.PrivatisationOption
	for _, o := range f.items {
		if o.RestaurantID == rid {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOptions) Update(_ context.Context, o *domain.PrivatisationOption) (*domain.PrivatisationOption, error) {
	if _, ok := f.items[o.ID]; !ok {
		return nil, optionRepo.ErrOptionNotFound
	}
	f.items[o.ID] = o
	return o, nil
}

func (f *fakeOptions) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return optionRepo.ErrOptionNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeBusinesses struct {
	restaurantID primitive.ObjectID
}

func (f *fakeBusinesses) GetByID(_ context.Context, id primitive.ObjectID, bt domain.BusinessType) (*domain.Business, error) {
	if id != f.restaurantID || bt != domain.BusinessTypeRestaurant {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return &domain.Business{ID: id, Type: bt}, nil
}

func validOption(restaurantID primitive.ObjectID) *domain.PrivatisationOption {
	return &domain.PrivatisationOption{
		RestaurantID:     restaurantID,
		Name:             "Salle entière",
		Type:             "full",
		MaxCapacity:      40,
		MaxDurationHours: 4,
		Tariff:           ptr.Ptr(1500.0),
	}
}

func TestService_CRUD(t *testing.T) {
	rid := primitive.NewObjectID()
	opts := &fakeOptions{items: map[primitive.ObjectID]*domain.PrivatisationOption{}}
	svc := NewService(opts, &fakeBusinesses{restaurantID: rid}, logger.Nop{})
	ctx := domain.WithPrincipal(context.Background(), &domain.Principal{BusinessID: rid.Hex(), Role: domain.RoleOwner})

	created, err := svc.Create(ctx, validOption(rid))
	require.NoError(t, err)

	list, err := svc.ListByRestaurant(context.Background(), rid)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	input := validOption(primitive.NewObjectID())
	input.Name = "Terrasse"
	updated, err := svc.Update(ctx, created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Terrasse", updated.Name)
	assert.Equal(t, rid, updated.RestaurantID)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrOptionNotFound)
}

func TestService_CreateValidation(t *testing.T) {
	rid := primitive.NewObjectID()
	svc := NewService(&fakeOptions{items: map[primitive.ObjectID]*domain.PrivatisationOption{}}, &fakeBusinesses{restaurantID: rid}, logger.Nop{})
	ctx := domain.WithPrincipal(context.Background(), &domain.Principal{Role: domain.RoleAdmin})

	tests := []struct {
		name  string
		edit  func(o *domain.PrivatisationOption)
		field string
	}{
		{name: "empty name", edit: func(o *domain.PrivatisationOption) { o.Name = "" }, field: "nom"},
		{name: "empty type", edit: func(o *domain.PrivatisationOption) { o.Type = "" }, field: "type"},
		{name: "zero capacity", edit: func(o *domain.PrivatisationOption) { o.MaxCapacity = 0 }, field: "capaciteMaximale"},
		{name: "zero duration", edit: func(o *domain.PrivatisationOption) { o.MaxDurationHours = 0 }, field: "dureeMaximaleHeures"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := validOption(rid)
			tt.edit(o)
			_, err := svc.Create(ctx, o)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestService_CreateUnknownRestaurant(t *testing.T) {
	svc := NewService(&fakeOptions{items: map[primitive.ObjectID]*domain.PrivatisationOption{}}, &fakeBusinesses{}, logger.Nop{})
	ctx := domain.WithPrincipal(context.Background(), &domain.Principal{Role: domain.RoleAdmin})

	_, err := svc.Create(ctx, validOption(primitive.NewObjectID()))
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
}
