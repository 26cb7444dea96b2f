package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

func TestStamp_NewAndExisting(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := created.Add(time.Hour)

	room := &domain.Room{Number: "101"}
	stamp(room, created, true)
	assert.False(t, room.ID.IsZero())
	assert.Equal(t, created, room.CreatedAt)
	assert.Equal(t, created, room.UpdatedAt)

	id := room.ID
	stamp(room, later, false)
	assert.Equal(t, id, room.ID)
	assert.Equal(t, created, room.CreatedAt)
	assert.Equal(t, later, room.UpdatedAt)
	assert.Equal(t, id, idOf(room))
}

func TestIdOf_AllKinds(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, idOf(&domain.Service{ID: id}))
	assert.Equal(t, id, idOf(&domain.Staff{ID: id}))
	assert.Equal(t, id, idOf(&domain.Table{ID: id}))
}
