package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-HospitalityService/internal/domain"
	"github.com/m04kA/SMC-HospitalityService/internal/infra/storage/mongodb"
)

// Repository репозиторий одной коллекции каталога
type Repository[T Item] struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewServiceRepository репозиторий услуг
func NewServiceRepository(db *mongo.Database) *Repository[domain.Service] {
	return newRepository[domain.Service](db, mongodb.CollectionServices)
}

// NewStaffRepository репозиторий персонала
func NewStaffRepository(db *mongo.Database) *Repository[domain.Staff] {
	return newRepository[domain.Staff](db, mongodb.CollectionStaff)
}

// NewTableRepository репозиторий столов
func NewTableRepository(db *mongo.Database) *Repository[domain.Table] {
	return newRepository[domain.Table](db, mongodb.CollectionTables)
}

// NewRoomRepository репозиторий номеров
func NewRoomRepository(db *mongo.Database) *Repository[domain.Room] {
	return newRepository[domain.Room](db, mongodb.CollectionRooms)
}

func newRepository[T Item](db *mongo.Database, collection string) *Repository[T] {
	return &Repository[T]{
		coll: db.Collection(collection),
		now:  time.Now,
	}
}

// Create сохраняет новый элемент
func (r *Repository[T]) Create(ctx context.Context, item *T) (*T, error) {
	stamp(item, r.now().UTC(), true)

	if _, err := r.coll.InsertOne(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrInsert, err)
	}
	return item, nil
}

// GetByID получает элемент по ID
func (r *Repository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var item T
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - find one: %v", ErrFind, err)
	}
	return &item, nil
}

// ListByBusiness возвращает элементы бизнеса; businessType nil - любой тип
func (r *Repository[T]) ListByBusiness(ctx context.Context, businessID primitive.ObjectID, businessType *domain.BusinessType) ([]*T, error) {
	filter := bson.M{"businessId": businessID}
	if businessType != nil {
		filter["businessType"] = *businessType
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - find: %v", ErrFind, err)
	}

	items := make([]*T, 0)
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: ListByBusiness - decode: %v", ErrFind, err)
	}
	return items, nil
}

// Replace перезаписывает документ целиком, сохраняя createdAt
func (r *Repository[T]) Replace(ctx context.Context, item *T) (*T, error) {
	stamp(item, r.now().UTC(), false)

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": idOf(item)}, item)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - replace one: %v", ErrUpdate, err)
	}
	if res.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return item, nil
}

// Delete удаляет элемент
func (r *Repository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete one: %v", ErrDelete, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
