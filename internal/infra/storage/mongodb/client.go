package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Имена коллекций
const (
	CollectionBusinesses           = "businesses"
	CollectionReservations         = "reservations"
	CollectionPrivatisationOptions = "privatisationOptions"
	CollectionServices             = "services"
	CollectionStaff                = "staff"
	CollectionTables               = "tables"
	CollectionRooms                = "rooms"
)

// Options параметры подключения
type Options struct {
	URI            string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
	Monitor        *event.CommandMonitor // nil - без метрик
}

// Connect подключается к MongoDB и проверяет соединение
func Connect(ctx context.Context, opts Options) (*mongo.Client, error) {
	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(opts.ConnectTimeout)
	if opts.MaxPoolSize > 0 {
		clientOpts.SetMaxPoolSize(opts.MaxPoolSize)
	}
	if opts.Monitor != nil {
		clientOpts.SetMonitor(opts.Monitor)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return client, nil
}

// EnsureIndexes создает индексы, используемые репозиториями
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		CollectionBusinesses: {
			{Keys: bson.D{{Key: "businessType", Value: 1}, {Key: "isActive", Value: 1}}},
		},
		CollectionReservations: {
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "businessType", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "businessId", Value: 1}, {Key: "date", Value: 1}, {Key: "time", Value: 1}}},
		},
		CollectionPrivatisationOptions: {
			{Keys: bson.D{{Key: "restaurantId", Value: 1}}},
		},
		CollectionServices: {{Keys: bson.D{{Key: "businessId", Value: 1}}}},
		CollectionStaff:    {{Keys: bson.D{{Key: "businessId", Value: 1}}}},
		CollectionTables:   {{Keys: bson.D{{Key: "businessId", Value: 1}}}},
		CollectionRooms:    {{Keys: bson.D{{Key: "businessId", Value: 1}}}},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("mongodb: create indexes on %s: %w", name, err)
		}
	}
	return nil
}
