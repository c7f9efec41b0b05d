// Package mongodb хранилище пользователей, заказов и заявок в MongoDB.
// Коллекции и индексы заводятся в ensureIndexes.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	ColUsers        = "users"
	ColOrders       = "orders"
	ColApplications = "courier_applications"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore подключение создается в internal/pkg/mongodb, здесь только индексы.
func NewStore(ctx context.Context, client *mongo.Client, dbName string) (*Store, error) {
	s := &Store{
		client: client,
		db:     client.Database(dbName),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("mongodb: ensure indexes failed: %w", err)
	}

	return s, nil
}

// Client нужен менеджеру транзакций.
func (s *Store) Client() *mongo.Client {
	return s.client
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		ColUsers: {
			// email хранится в нижнем регистре
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "deleted_at", Value: 1}}},
		},
		ColOrders: {
			{Keys: bson.D{{Key: "tracking_number", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "courier_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		ColApplications: {
			// не больше одной заявки на рассмотрении на пользователя
			{
				Keys: bson.D{{Key: "user_id", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetName("pending_per_user").
					SetPartialFilterExpression(bson.D{{Key: "status", Value: "pending"}}),
			},
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
	}

	for name, models := range indexes {
		if _, err := s.col(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %w", name, err)
		}
	}
	return nil
}

// Drop удаляет базу целиком, используется в тестах.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}
