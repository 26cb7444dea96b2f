package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
)

// Item ограничение для документов каталога: услуги, персонал, столы, номера
type Item interface {
	domain.Service | domain.Staff | domain.Table | domain.Room
}

// stamp проставляет ID и временные метки; T передается по указателю
func stamp[T Item](item *T, now time.Time, isNew bool) {
	switch v := any(item).(type) {
	case *domain.Service:
		stampFields(&v.ID, &v.CreatedAt, &v.UpdatedAt, now, isNew)
	case *domain.Staff:
		stampFields(&v.ID, &v.CreatedAt, &v.UpdatedAt, now, isNew)
	case *domain.Table:
		stampFields(&v.ID, &v.CreatedAt, &v.UpdatedAt, now, isNew)
	case *domain.Room:
		stampFields(&v.ID, &v.CreatedAt, &v.UpdatedAt, now, isNew)
	}
}

func stampFields(id *primitive.ObjectID, createdAt, updatedAt *time.Time, now time.Time, isNew bool) {
	if isNew {
		*id = primitive.NewObjectID()
		*createdAt = now
	}
	*updatedAt = now
}

func idOf[T Item](item *T) primitive.ObjectID {
	switch v := any(item).(type) {
	case *domain.Service:
		return v.ID
	case *domain.Staff:
		return v.ID
	case *domain.Table:
		return v.ID
	case *domain.Room:
		return v.ID
	}
	return primitive.NilObjectID
}
