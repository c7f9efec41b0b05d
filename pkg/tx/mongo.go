package tx

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// MongoManager открывает транзакцию через сессию MongoDB.
// Standalone инстанс транзакции не поддерживает, поэтому при enabled=false
// fn выполняется как есть.
type MongoManager struct {
	client  *mongo.Client
	enabled bool
}

func NewMongo(client *mongo.Client, enabled bool) *MongoManager {
	return &MongoManager{
		client:  client,
		enabled: enabled,
	}
}

func (m *MongoManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if !m.enabled {
		return fn(ctx)
	}

	// уже внутри транзакции
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("start mongo session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx context.Context) (any, error) {
		return nil, fn(sessCtx)
	})
	return err
}
