package auth

import (
	"net/http"
	"strings"

	"courier-network/internal/entities"
	"courier-network/internal/pkg/apperr"
	"courier-network/internal/pkg/authctx"
	"courier-network/internal/pkg/httpresponse"
)

var ErrRoleNotAllowed = apperr.Forbidden("not authorized to access this route")

// Middleware требует заголовок Authorization: Bearer <token> и кладет
// пользователя в контекст запроса.
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				httpresponse.Error(w, log, authctx.ErrNoActor)
				return
			}

			actor, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				httpresponse.Error(w, log, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(authctx.WithActor(r.Context(), *actor)))
		})
	}
}

// RequireRoles пропускает только перечисленные роли. Ставится после Middleware.
func RequireRoles(log handlerLogger, roles ...entities.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := authctx.Actor(r.Context())
			if err != nil {
				httpresponse.Error(w, log, err)
				return
			}

			if !actor.Is(roles...) {
				httpresponse.Error(w, log, ErrRoleNotAllowed.Withf("user role %s is not authorized to access this route", actor.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
