package create_reservation_v2

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	"github.com/m04kA/SMC-HospitalityService/internal/service/pricing"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

type fakeReservations struct {
	created []*domain.Reservation
	err     error
}

func (f *fakeReservations) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	r.ID = primitive.NewObjectID()
	f.created = append(f.created, r)
	return r, nil
}

type fakeBusinesses struct {
	restaurant *domain.Business
}

func (f *fakeBusinesses) GetByID(_ context.Context, id primitive.ObjectID, bt domain.BusinessType) (*domain.Business, error) {
	if f.restaurant == nil || f.restaurant.ID != id || bt != domain.BusinessTypeRestaurant {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return f.restaurant, nil
}

type recordingHooks struct {
	ran []*domain.Reservation
}

func (h *recordingHooks) Run(_ context.Context, r *domain.Reservation) {
	h.ran = append(h.ran, r)
}

func newUseCase(restaurant *domain.Business) (*UseCase, *fakeReservations, *recordingHooks) {
	reservations := &fakeReservations{}
	hooks := &recordingHooks{}
	uc := NewUseCase(
		reservations,
		&fakeBusinesses{restaurant: restaurant},
		pricing.NewResolver(domain.DefaultPricePerGuest, logger.Nop{}),
		pricing.NewCalculator(domain.DefaultPrivatisationRatePerGuest),
		hooks,
		logger.Nop{},
	)
	return uc, reservations, hooks
}

func restaurantWithWindows() *domain.Business {
	return &domain.Business{
		ID:   primitive.NewObjectID(),
		Type: domain.BusinessTypeRestaurant,
		Settings: &domain.RestaurantSettings{TimeWindows: []domain.TimeWindow{
			{Open: "09:00", Close: "12:00", PricePerGuest: 50},
			{Open: "12:00", Close: "18:00", PricePerGuest: 70},
		}},
	}
}

func TestExecute_PriceByWindow(t *testing.T) {
	tests := []struct {
		name      string
		at        string
		party     int
		wantTotal float64
	}{
		{name: "morning window", at: "11:30", party: 2, wantTotal: 100},
		{name: "afternoon window", at: "12:00", party: 4, wantTotal: 280},
		{name: "no window uses default", at: "18:30", party: 2, wantTotal: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restaurant := restaurantWithWindows()
			uc, reservations, hooks := newUseCase(restaurant)

			resp, err := uc.Execute(context.Background(), &Request{
				RestaurantID: restaurant.ID,
				PartySize:    tt.party,
				Time:         types.TimeString(tt.at),
				Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantTotal, resp.Reservation.TotalAmount)
			assert.Equal(t, domain.StatusConfirmed, resp.Reservation.Status)
			assert.Equal(t, domain.KindStandard, resp.Reservation.Kind)
			assert.Len(t, reservations.created, 1)
			assert.Len(t, hooks.ran, 1)
		})
	}
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	uc, reservations, hooks := newUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: primitive.NewObjectID(),
		PartySize:    2,
		Time:         "12:00",
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.Empty(t, reservations.created)
	assert.Empty(t, hooks.ran)
}

func TestExecute_StoreFailureSkipsHooks(t *testing.T) {
	restaurant := restaurantWithWindows()
	uc, reservations, hooks := newUseCase(restaurant)
	reservations.err = errors.New("mongo: timeout")

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: restaurant.ID,
		PartySize:    2,
		Time:         "12:00",
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, hooks.ran)
}

func TestExecute_Validation(t *testing.T) {
	uc, _, _ := newUseCase(nil)

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: primitive.NewObjectID(),
		PartySize:    2,
		Time:         "midi",
		Date:         time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "heure", ve.Field)
}
