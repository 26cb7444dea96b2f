package business

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

// Repository репозиторий бизнесов (отели, рестораны, салоны) в одной коллекции
type Repository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		coll: db.Collection(mongodb.CollectionBusinesses),
		now:  time.Now,
	}
}

// Create сохраняет новый бизнес
func (r *Repository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	now := r.now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrInsert, err)
	}
	return b, nil
}

// GetByID получает бизнес заданного типа по ID (включая деактивированные)
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) (*domain.Business, error) {
	filter := bson.M{"_id": id, "businessType": businessType}

	var b domain.Business
	if err := r.coll.FindOne(ctx, filter).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - find one: %v", ErrDecode, err)
	}
	return &b, nil
}

// List возвращает бизнесы заданного типа; activeOnly отбрасывает деактивированные
func (r *Repository) List(ctx context.Context, businessType domain.BusinessType, activeOnly bool) ([]*domain.Business, error) {
	filter := bson.M{"businessType": businessType}
	if activeOnly {
		filter["isActive"] = true
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: List - find: %v", ErrFind, err)
	}

	businesses := make([]*domain.Business, 0)
	if err := cur.All(ctx, &businesses); err != nil {
		return nil, fmt.Errorf("%w: List - decode: %v", ErrDecode, err)
	}
	return businesses, nil
}

// Update перезаписывает изменяемые поля бизнеса и возвращает обновленный документ
func (r *Repository) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	b.UpdatedAt = r.now().UTC()

	update := bson.M{"$set": bson.M{
		"name":           b.Name,
		"description":    b.Description,
		"address":        b.Address,
		"contact":        b.Contact,
		"images":         b.Images,
		"isActive":       b.IsActive,
		"settings":       b.Settings,
		"cuisine":        b.Cuisine,
		"openingPeriods": b.OpeningPeriods,
		"amenities":      b.Amenities,
		"starRating":     b.StarRating,
		"specialties":    b.Specialties,
		"updatedAt":      b.UpdatedAt,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Business
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": b.ID, "businessType": b.Type}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("%w: Update - find one and update: %v", ErrUpdate, err)
	}
	return &updated, nil
}

// Deactivate выполняет мягкое удаление (isActive=false)
func (r *Repository) Deactivate(ctx context.Context, id primitive.ObjectID, businessType domain.BusinessType) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "businessType": businessType},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": r.now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - update one: %v", ErrUpdate, err)
	}
	if res.MatchedCount == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
