// Package authctx хранит аутентифицированного пользователя в контексте запроса.
package authctx

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/internal/pkg/apperr"
)

type ctxKey struct{}

var ErrNoActor = apperr.Unauthenticated("not authorized, no token")

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

func Actor(ctx context.Context) (entities.Actor, error) {
	actor, ok := ctx.Value(ctxKey{}).(entities.Actor)
	if !ok || actor.ID == "" {
		return entities.Actor{}, ErrNoActor
	}
	return actor, nil
}
