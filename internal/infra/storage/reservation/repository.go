package reservation

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
	"github.com/m04kA/SMC-HospitalityService/pkg/types"
)

// Repository репозиторий бронирований
type Repository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		coll: db.Collection(mongodb.CollectionReservations),
		now:  time.Now,
	}
}

// Create сохраняет бронирование; ID и временные метки проставляются здесь
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	now := r.now().UTC()
	res.ID = primitive.NewObjectID()
	res.CreatedAt = now
	res.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, res); err != nil {
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrInsert, err)
	}
	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - find one: %v", ErrDecode, err)
	}
	return &res, nil
}

// List возвращает бронирования бизнеса, отсортированные по дате (новые первыми)
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	cur, err := r.coll.Find(ctx, buildFilter(filter), options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "time", Value: -1},
	}))
	if err != nil {
		return nil, fmt.Errorf("%w: List - find: %v", ErrFind, err)
	}

	reservations := make([]*domain.Reservation, 0)
	if err := cur.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("%w: List - decode: %v", ErrDecode, err)
	}
	return reservations, nil
}

// CountBySlot считает активные бронирования бизнеса на дату, сгруппированные по времени начала
func (r *Repository) CountBySlot(ctx context.Context, businessID primitive.ObjectID, date time.Time) (map[types.TimeString]int, error) {
	match := buildFilter(domain.ReservationFilter{
		BusinessID: businessID,
		Date:       &date,
	})

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$time"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - aggregate: %v", ErrFind, err)
	}

	var rows []struct {
		Time  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: CountBySlot - decode: %v", ErrDecode, err)
	}

	counts := make(map[types.TimeString]int, len(rows))
	for _, row := range rows {
		ts, err := types.NewTimeStringFromString(row.Time)
		if err != nil {
			// Бронирования без времени (отели) слоты не занимают
			continue
		}
		counts[ts] += row.Count
	}
	return counts, nil
}

// Update применяет частичное обновление и возвращает обновленный документ
func (r *Repository) Update(ctx context.Context, id primitive.ObjectID, patch domain.ReservationPatch) (*domain.Reservation, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Date != nil {
		set["date"] = *patch.Date
	}
	if patch.Time != nil {
		set["time"] = *patch.Time
	}
	if patch.PartySize != nil {
		set["partySize"] = *patch.PartySize
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.SpecialRequests != nil {
		set["specialRequests"] = *patch.SpecialRequests
	}
	if patch.Customer != nil {
		set["customerInfo"] = patch.Customer
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Reservation
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: Update - find one and update: %v", ErrUpdate, err)
	}
	return &updated, nil
}

// Cancel переводит бронирование в статус cancelled, если оно еще активно.
// Проверка статуса выполняется в том же запросе, что и обновление.
func (r *Repository) Cancel(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": domain.CancellableStatuses},
	}
	update := bson.M{"$set": bson.M{
		"status":    domain.StatusCancelled,
		"updatedAt": r.now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Reservation
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: Cancel - find one and update: %v", ErrUpdate, err)
	}

	// Различаем "нет такого" и "нельзя отменить"
	count, err := r.coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - count: %v", ErrFind, err)
	}
	if count == 0 {
		return nil, ErrReservationNotFound
	}
	return nil, ErrCannotCancel
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete one: %v", ErrDelete, err)
	}
	if res.DeletedCount == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// buildFilter строит фильтр MongoDB; дата матчится на интервал [date, date+1d)
func buildFilter(f domain.ReservationFilter) bson.M {
	filter := bson.M{"businessId": f.BusinessID}

	if f.BusinessType != nil {
		filter["businessType"] = *f.BusinessType
	}

	switch {
	case f.Status != nil:
		filter["status"] = *f.Status
	case !f.IncludeInactive:
		filter["status"] = bson.M{"$nin": domain.InactiveStatuses}
	}

	if f.Date != nil {
		y, m, d := f.Date.Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		filter["date"] = bson.M{"$gte": start, "$lt": start.AddDate(0, 0, 1)}
	}

	return filter
}
