package create_privatisation_v2

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	businessRepo "github.com/m04kA/SMC-HospitalityService/internal/infra/storage/business"
	"github.com/m04kA/SMC-HospitalityService/internal/service/pricing"
	"github.com/m04kA/SMC-HospitalityService/pkg/logger"
)

type fakeReservations struct {
	created []*domain.Reservation
}

func (f *fakeReservations) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	r.ID = primitive.NewObjectID()
	f.created = append(f.created, r)
	return r, nil
}

type fakeBusinesses struct {
	restaurant *domain.Business
}

func (f *fakeBusinesses) GetByID(_ context.Context, id primitive.ObjectID, _ domain.BusinessType) (*domain.Business, error) {
	if f.restaurant == nil || f.restaurant.ID != id {
		return nil, businessRepo.ErrBusinessNotFound
	}
	return f.restaurant, nil
}

type countingHooks struct {
	runs int
}

func (h *countingHooks) Run(context.Context, *domain.Reservation) { h.runs++ }

func TestExecute_FlatRateIgnoresTariff(t *testing.T) {
	restaurant := &domain.Business{ID: primitive.NewObjectID(), Type: domain.BusinessTypeRestaurant}
	reservations := &fakeReservations{}
	hooks := &countingHooks{}
	uc := NewUseCase(reservations, &fakeBusinesses{restaurant: restaurant},
		pricing.NewCalculator(domain.DefaultPrivatisationRatePerGuest), hooks, logger.Nop{})

	resp, err := uc.Execute(context.Background(), &Request{
		RestaurantID:  restaurant.ID,
		PartySize:     10,
		Time:          "19:00",
		Date:          time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC),
		Type:          "Salle entière",
		Space:         "Terrasse",
		Menu:          "Menu Prestige",
		DurationHours: 4,
	})
	require.NoError(t, err)

	r := resp.Reservation
	assert.Equal(t, 1000.0, r.TotalAmount)
	assert.Equal(t, domain.KindPrivatisation, r.Kind)
	assert.Equal(t, domain.StatusConfirmed, r.Status)
	assert.Equal(t, "Privatisation: Salle entière - Terrasse, Menu: Menu Prestige", r.Notes)
	assert.Equal(t, "Privatisation event for 10 guests.", r.SpecialRequests)
	require.NotNil(t, r.Privatisation)
	assert.Equal(t, "Terrasse", r.Privatisation.Space)
	assert.Equal(t, 1, hooks.runs)
}

func TestExecute_RestaurantNotFound(t *testing.T) {
	reservations := &fakeReservations{}
	uc := NewUseCase(reservations, &fakeBusinesses{},
		pricing.NewCalculator(0), &countingHooks{}, logger.Nop{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: primitive.NewObjectID(),
		PartySize:    10,
		Time:         "19:00",
		Date:         time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC),
		Type:         "full",
	})
	assert.ErrorIs(t, err, ErrRestaurantNotFound)
	assert.Empty(t, reservations.created)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeReservations{}, &fakeBusinesses{},
		pricing.NewCalculator(0), &countingHooks{}, logger.Nop{})

	_, err := uc.Execute(context.Background(), &Request{
		RestaurantID: primitive.NewObjectID(),
		PartySize:    0,
		Time:         "19:00",
		Date:         time.Date(2024, 9, 14, 0, 0, 0, 0, time.UTC),
		Type:         "full",
	})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "personnes", ve.Field)
}
