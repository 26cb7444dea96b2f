package privatisation

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

// Repository репозиторий опций приватизации ресторанов
type Repository struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewRepository создает новый экземпляр репозитория опций приватизации
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		coll: db.Collection(mongodb.CollectionPrivatisationOptions),
		now:  time.Now,
	}
}

// Create сохраняет новую опцию
func (r *Repository) Create(ctx context.Context, opt *domain.PrivatisationOption) (*domain.PrivatisationOption, error) {
	now := r.now().UTC()
	opt.ID = primitive.NewObjectID()
	opt.CreatedAt = now
	opt.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, opt); err != nil {
		return nil, fmt.Errorf("%w: Create - insert: %v", ErrInsert, err)
	}
	return opt, nil
}

// GetByID получает опцию по ID
func (r *Repository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.PrivatisationOption, error) {
	var opt domain.PrivatisationOption
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&opt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOptionNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - find one: %v", ErrFind, err)
	}
	return &opt, nil
}

// ListByRestaurant возвращает опции ресторана
func (r *Repository) ListByRestaurant(ctx context.Context, restaurantID primitive.ObjectID) ([]*domain.PrivatisationOption, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"restaurantId": restaurantID},
		options.Find().SetSort(bson.D{{Key: "nom", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - find: %v", ErrFind, err)
	}

	opts := make([]*domain.PrivatisationOption, 0)
	if err := cur.All(ctx, &opts); err != nil {
		return nil, fmt.Errorf("%w: ListByRestaurant - decode: %v", ErrFind, err)
	}
	return opts, nil
}

// Update перезаписывает изменяемые поля опции
func (r *Repository) Update(ctx context.Context, opt *domain.PrivatisationOption) (*domain.PrivatisationOption, error) {
	opt.UpdatedAt = r.now().UTC()

	update := bson.M{"$set": bson.M{
		"nom":                 opt.Name,
		"description":         opt.Description,
		"type":                opt.Type,
		"capaciteMaximale":    opt.MaxCapacity,
		"dureeMaximaleHeures": opt.MaxDurationHours,
		"menusDeGroupe":       opt.GroupMenus,
		"menusDetails":        opt.MenuDetails,
		"tarif":               opt.Tariff,
		"conditions":          opt.Conditions,
		"updatedAt":           opt.UpdatedAt,
	}}

	var updated domain.PrivatisationOption
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": opt.ID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOptionNotFound
		}
		return nil, fmt.Errorf("%w: Update - find one and update: %v", ErrUpdate, err)
	}
	return &updated, nil
}

// Delete удаляет опцию
func (r *Repository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete one: %v", ErrDelete, err)
	}
	if res.DeletedCount == 0 {
		return ErrOptionNotFound
	}
	return nil
}
