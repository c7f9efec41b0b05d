package main

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	application "courier-network/internal/app"
	"courier-network/internal/entities"
	"courier-network/internal/handlers/rest/application_approve_put"
	"courier-network/internal/handlers/rest/application_get"
	"courier-network/internal/handlers/rest/application_reject_put"
	"courier-network/internal/handlers/rest/applications_get"
	"courier-network/internal/handlers/rest/applications_mine_get"
	"courier-network/internal/handlers/rest/applications_post"
	"courier-network/internal/handlers/rest/auth_change_password_put"
	"courier-network/internal/handlers/rest/auth_login_post"
	"courier-network/internal/handlers/rest/auth_me_get"
	"courier-network/internal/handlers/rest/auth_profile_put"
	"courier-network/internal/handlers/rest/auth_register_post"
	"courier-network/internal/handlers/rest/healthcheck_head"
	"courier-network/internal/handlers/rest/order_assign_put"
	"courier-network/internal/handlers/rest/order_delete"
	"courier-network/internal/handlers/rest/order_get"
	"courier-network/internal/handlers/rest/order_put"
	"courier-network/internal/handlers/rest/order_status_put"
	"courier-network/internal/handlers/rest/orders_estimate_post"
	"courier-network/internal/handlers/rest/orders_get"
	"courier-network/internal/handlers/rest/orders_post"
	"courier-network/internal/handlers/rest/orders_track_get"
	"courier-network/internal/handlers/rest/ping_get"
	"courier-network/internal/handlers/rest/upload_image_delete"
	"courier-network/internal/handlers/rest/upload_image_post"
	"courier-network/internal/handlers/rest/user_delete"
	"courier-network/internal/handlers/rest/user_get"
	"courier-network/internal/handlers/rest/user_put"
	"courier-network/internal/handlers/rest/user_restore_put"
	"courier-network/internal/handlers/rest/user_role_put"
	"courier-network/internal/handlers/rest/user_toggle_active_put"
	"courier-network/internal/handlers/rest/users_couriers_get"
	"courier-network/internal/handlers/rest/users_get"
	"courier-network/internal/handlers/rest/users_stats_get"
	"courier-network/internal/pkg/config"
	"courier-network/internal/pkg/middlewares/auth"
	"courier-network/internal/pkg/middlewares/cors"
	"courier-network/internal/pkg/middlewares/graceful_shutdown"
	"courier-network/internal/pkg/middlewares/metrics"
	"courier-network/internal/pkg/middlewares/rate_limiter"
	"courier-network/internal/pkg/middlewares/timeout"
	"courier-network/pkg/logger"
	"courier-network/pkg/token_bucket"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const authLimiterCleanupPeriod = 10 * time.Minute

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	storage healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, storage)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	authLimited := rate_limiter.PerClientMiddleware(log, cfg.AuthRateLimitPerMinute, cfg.TrustedProxies, token_bucket.NewKeyedLimiter(
		cfg.AuthRateLimitPerMinute,
		float64(cfg.AuthRateLimitPerMinute)/60,
		authLimiterCleanupPeriod,
	))
	authenticated := auth.Middleware(log, app.ServiceAuth)
	adminOnly := func(h http.Handler) http.Handler {
		return authenticated(auth.RequireRoles(log, entities.RoleAdmin)(h))
	}

	api := router.PathPrefix("/api").Subrouter()

	authRouter := api.PathPrefix("/auth").Subrouter()
	authRouter.Handle("/register", authLimited(auth_register_post.New(log, app.ServiceAuth))).Methods("POST")
	authRouter.Handle("/login", authLimited(auth_login_post.New(log, app.ServiceAuth))).Methods("POST")
	authRouter.Handle("/me", authenticated(auth_me_get.New(log, app.ServiceAuth))).Methods("GET")
	authRouter.Handle("/profile", authenticated(auth_profile_put.New(log, app.ServiceAuth))).Methods("PUT")
	authRouter.Handle("/change-password", authenticated(auth_change_password_put.New(log, app.ServiceAuth))).Methods("PUT")

	// фиксированные пути регистрируются раньше /{id}
	ordersRouter := api.PathPrefix("/orders").Subrouter()
	ordersRouter.Handle("/track/{trackingNumber}", orders_track_get.New(log, app.ServiceOrder)).Methods("GET")
	ordersRouter.Handle("/estimate", authenticated(orders_estimate_post.New(log, app.ServiceOrder))).Methods("POST")
	ordersRouter.Handle("", authenticated(orders_get.New(log, app.ServiceOrder))).Methods("GET")
	ordersRouter.Handle("", authenticated(orders_post.New(log, app.ServiceOrder))).Methods("POST")
	ordersRouter.Handle("/{id}", authenticated(order_get.New(log, app.ServiceOrder))).Methods("GET")
	ordersRouter.Handle("/{id}", authenticated(order_put.New(log, app.ServiceOrder))).Methods("PUT")
	ordersRouter.Handle("/{id}", authenticated(order_delete.New(log, app.ServiceOrder))).Methods("DELETE")
	ordersRouter.Handle("/{id}/status", authenticated(order_status_put.New(log, app.ServiceOrder))).Methods("PUT")
	ordersRouter.Handle("/{id}/assign", adminOnly(order_assign_put.New(log, app.ServiceOrder))).Methods("PUT")

	usersRouter := api.PathPrefix("/users").Subrouter()
	usersRouter.Handle("", adminOnly(users_get.New(log, app.ServiceUser))).Methods("GET")
	usersRouter.Handle("/couriers", adminOnly(users_couriers_get.New(log, app.ServiceUser))).Methods("GET")
	usersRouter.Handle("/stats/summary", adminOnly(users_stats_get.New(log, app.ServiceUser))).Methods("GET")
	usersRouter.Handle("/{id}", adminOnly(user_get.New(log, app.ServiceUser))).Methods("GET")
	usersRouter.Handle("/{id}", adminOnly(user_put.New(log, app.ServiceUser))).Methods("PUT")
	usersRouter.Handle("/{id}", adminOnly(user_delete.New(log, app.ServiceUser))).Methods("DELETE")
	usersRouter.Handle("/{id}/role", adminOnly(user_role_put.New(log, app.ServiceUser))).Methods("PUT")
	usersRouter.Handle("/{id}/toggle-active", adminOnly(user_toggle_active_put.New(log, app.ServiceUser))).Methods("PUT")
	usersRouter.Handle("/{id}/restore", adminOnly(user_restore_put.New(log, app.ServiceUser))).Methods("PUT")

	applicationsRouter := api.PathPrefix("/applications").Subrouter()
	applicationsRouter.Handle("", adminOnly(applications_get.New(log, app.ServiceApplication))).Methods("GET")
	applicationsRouter.Handle("", authenticated(applications_post.New(log, app.ServiceApplication))).Methods("POST")
	applicationsRouter.Handle("/my-applications", authenticated(applications_mine_get.New(log, app.ServiceApplication))).Methods("GET")
	applicationsRouter.Handle("/{id}", authenticated(application_get.New(log, app.ServiceApplication))).Methods("GET")
	applicationsRouter.Handle("/{id}/approve", adminOnly(application_approve_put.New(log, app.ServiceApplication))).Methods("PUT")
	applicationsRouter.Handle("/{id}/reject", adminOnly(application_reject_put.New(log, app.ServiceApplication))).Methods("PUT")

	uploadRouter := api.PathPrefix("/upload").Subrouter()
	uploadRouter.Handle("/image", authenticated(upload_image_post.New(log, app.ServiceUpload))).Methods("POST")
	uploadRouter.Handle("/image", authenticated(upload_image_delete.New(log, app.ServiceUpload))).Methods("DELETE")

	// preflight OPTIONS не совпадает ни с одним маршрутом, поэтому CORS снаружи роутера
	return cors.Middleware(cfg.ClientURL)(router)
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, nil)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
