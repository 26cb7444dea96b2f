package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

func TestBuildFilter_Defaults(t *testing.T) {
	id := primitive.NewObjectID()

	filter := buildFilter(domain.ReservationFilter{BusinessID: id})

	assert.Equal(t, id, filter["businessId"])
	assert.Equal(t, bson.M{"$nin": domain.InactiveStatuses}, filter["status"])
	assert.NotContains(t, filter, "date")
	assert.NotContains(t, filter, "businessType")
}

func TestBuildFilter_StatusTypeAndDate(t *testing.T) {
	id := primitive.NewObjectID()
	bt := domain.BusinessTypeRestaurant
	status := domain.StatusCancelled
	date := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)

	filter := buildFilter(domain.ReservationFilter{
		BusinessID:   id,
		BusinessType: &bt,
		Status:       &status,
		Date:         &date,
	})

	assert.Equal(t, bt, filter["businessType"])
	assert.Equal(t, status, filter["status"])
	assert.Equal(t, bson.M{
		"$gte": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		"$lt":  time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}, filter["date"])
}

func TestBuildFilter_IncludeInactive(t *testing.T) {
	filter := buildFilter(domain.ReservationFilter{BusinessID: primitive.NewObjectID(), IncludeInactive: true})
	assert.NotContains(t, filter, "status")
}
