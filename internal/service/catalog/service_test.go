package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
)

type fakeRooms struct {
	items map[primitive.ObjectID]*domain.Room
}

func (f *fakeRooms) Create(_ context.Context, r *domain.Room) (*domain.Room, error) {
	r.ID = primitive.NewObjectID()
	r.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cp := *r
	f.items[r.ID] = &cp
	return r, nil
}

func (f *fakeRooms) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Room, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, catalogRepo.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRooms) ListByBusiness(_ context.Context, bid primitive.ObjectID, bt *domain.BusinessType) ([]*domain.Room, error) {
	var out []*domain.Room
	for _, r := range f.items {
		if r.BusinessID == bid && (bt == nil || r.BusinessType == *bt) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRooms) Replace(_ context.Context, r *domain.Room) (*domain.Room, error) {
	if _, ok := f.items[r.ID]; !ok {
		return nil, catalogRepo.ErrNotFound
	}
	cp := *r
	f.items[r.ID] = &cp
	return r, nil
}

func (f *fakeRooms) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return catalogRepo.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

func TestRooms_CRUD(t *testing.T) {
	hotelID := primitive.NewObjectID()
	repo := &fakeRooms{items: map[primitive.ObjectID]*domain.Room{}}
	svc := NewRoomsService(repo, logger.Nop{})
	ctx := domain.WithPrincipal(context.Background(), &domain.Principal{BusinessID: hotelID.Hex(), Role: domain.RoleOwner})

	created, err := svc.Create(ctx, &domain.Room{BusinessID: hotelID, Number: "101", Capacity: 2, PricePerNight: 120})
	require.NoError(t, err)
	assert.Equal(t, domain.BusinessTypeHotel, created.BusinessType)

	list, err := svc.List(context.Background(), hotelID, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// Попытка перенести номер в другой отель игнорируется
	updated, err := svc.Update(ctx, created.ID, &domain.Room{BusinessID: primitive.NewObjectID(), Number: "102", Capacity: 3})
	require.NoError(t, err)
	assert.Equal(t, hotelID, updated.BusinessID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "102", updated.Number)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRooms_ValidationAndAccess(t *testing.T) {
	hotelID := primitive.NewObjectID()
	svc := NewRoomsService(&fakeRooms{items: map[primitive.ObjectID]*domain.Room{}}, logger.Nop{})
	owner := domain.WithPrincipal(context.Background(), &domain.Principal{BusinessID: hotelID.Hex()})

	_, err := svc.Create(owner, &domain.Room{BusinessID: hotelID, Number: "101", Capacity: 0})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "capacity", ve.Field)

	_, err = svc.Create(context.Background(), &domain.Room{BusinessID: hotelID, Number: "101", Capacity: 2})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	stranger := domain.WithPrincipal(context.Background(), &domain.Principal{BusinessID: primitive.NewObjectID().Hex()})
	_, err = svc.Create(stranger, &domain.Room{BusinessID: hotelID, Number: "101", Capacity: 2})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
