package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
	"github.com/m04kA/SMC-HospitalityService/pkg/ptr"
)

type fakeRepo struct {
	items map[primitive.ObjectID]*domain.Reservation
}

func (f *fakeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range f.items {
		if r.BusinessID == filter.BusinessID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, id primitive.ObjectID, p domain.ReservationPatch) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	if p.PartySize != nil {
		r.PartySize = *p.PartySize
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	r, ok := f.items[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	if !r.CanBeCancelled() {
		return nil, reservationRepo.ErrCannotCancel
	}
	r.Status = domain.StatusCancelled
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.items[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Invalidate(_ context.Context, businessID string, date time.Time) error {
	f.invalidated = append(f.invalidated, businessID+":"+date.Format(domain.DateFormat))
	return nil
}

func setup(t *testing.T) (*Service, *fakeRepo, *fakeCache, *domain.Reservation) {
	t.Helper()
	r := &domain.Reservation{
		ID:           primitive.NewObjectID(),
		BusinessID:   primitive.NewObjectID(),
		BusinessType: domain.BusinessTypeRestaurant,
		PartySize:    2,
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:       domain.StatusConfirmed,
		TotalAmount:  150,
	}
	repo := &fakeRepo{items: map[primitive.ObjectID]*domain.Reservation{r.ID: r}}
	cache := &fakeCache{}
	return NewService(repo, cache, logger.Nop{}), repo, cache, r
}

func ownerCtx(r *domain.Reservation) context.Context {
	return domain.WithPrincipal(context.Background(), &domain.Principal{BusinessID: r.BusinessID.Hex(), Role: domain.RoleOwner})
}

func TestUpdate_KeepsTotalAndInvalidatesBothDates(t *testing.T) {
	svc, _, cache, r := setup(t)
	newDate := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	updated, err := svc.Update(ownerCtx(r), r.ID, domain.ReservationPatch{PartySize: ptr.Ptr(6), Date: &newDate})
	require.NoError(t, err)

	assert.Equal(t, 6, updated.PartySize)
	assert.Equal(t, 150.0, updated.TotalAmount)
	assert.Equal(t, []string{
		r.BusinessID.Hex() + ":2025-06-01",
		r.BusinessID.Hex() + ":2025-06-02",
	}, cache.invalidated)
}

func TestUpdate_Validation(t *testing.T) {
	svc, _, _, r := setup(t)

	_, err := svc.Update(ownerCtx(r), r.ID, domain.ReservationPatch{PartySize: ptr.Ptr(0)})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "partySize", ve.Field)
}

func TestUpdate_Forbidden(t *testing.T) {
	svc, _, _, r := setup(t)
	other := domain.WithPrincipal(context.Background(), &domain.Principal{BusinessID: primitive.NewObjectID().Hex()})

	_, err := svc.Update(other, r.ID, domain.ReservationPatch{PartySize: ptr.Ptr(3)})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCancel(t *testing.T) {
	svc, _, cache, r := setup(t)

	cancelled, err := svc.Cancel(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	assert.Len(t, cache.invalidated, 1)

	_, err = svc.Cancel(context.Background(), r.ID)
	assert.ErrorIs(t, err, ErrCannotCancel)

	_, err = svc.Cancel(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete(t *testing.T) {
	svc, repo, _, r := setup(t)

	err := svc.Delete(context.Background(), r.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	require.NoError(t, svc.Delete(ownerCtx(r), r.ID))
	assert.Empty(t, repo.items)
}

func TestList_OwnerOnly(t *testing.T) {
	svc, _, _, r := setup(t)

	_, err := svc.List(context.Background(), domain.ReservationFilter{BusinessID: r.BusinessID})
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	list, err := svc.List(ownerCtx(r), domain.ReservationFilter{BusinessID: r.BusinessID})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
