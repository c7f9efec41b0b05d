package app

import (
	"time"

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
	"courier-network/internal/handlers/rest/order_assign_put"
	"courier-network/internal/handlers/rest/order_delete"
	"courier-network/internal/handlers/rest/order_get"
	"courier-network/internal/handlers/rest/order_put"
	"courier-network/internal/handlers/rest/order_status_put"
	"courier-network/internal/handlers/rest/orders_estimate_post"
	"courier-network/internal/handlers/rest/orders_get"
	"courier-network/internal/handlers/rest/orders_post"
	"courier-network/internal/handlers/rest/orders_track_get"
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
	"courier-network/internal/handlers/tasks/stats_gauges"
	authMiddleware "courier-network/internal/pkg/middlewares/auth"
	notificationService "courier-network/internal/service/notification"
	"courier-network/pkg/background"
)

type StatsRefreshInterval time.Duration

// Application сервисы HTTP API и фоновые задачи (cmd/service).
type Application struct {
	ServiceAuth        ServiceAuth
	ServiceOrder       ServiceOrder
	ServiceUser        ServiceUser
	ServiceApplication ServiceApplication
	ServiceUpload      ServiceUpload
	BackgroundWorkers  *background.Worker
}

// KafkaWorkerApp зависимости воркера уведомлений (cmd/worker-order-status-changed).
type KafkaWorkerApp struct {
	NotificationService *notificationService.Service
}

type ServiceAuth interface {
	authMiddleware.Authenticator
	auth_register_post.Service
	auth_login_post.Service
	auth_me_get.Service
	auth_profile_put.Service
	auth_change_password_put.Service
}

type ServiceOrder interface {
	orders_post.Service
	orders_get.Service
	orders_estimate_post.Service
	orders_track_get.Service
	order_get.Service
	order_put.Service
	order_delete.Service
	order_status_put.Service
	order_assign_put.Service
}

type ServiceUser interface {
	users_get.Service
	users_couriers_get.Service
	users_stats_get.Service
	user_get.Service
	user_put.Service
	user_delete.Service
	user_role_put.Service
	user_toggle_active_put.Service
	user_restore_put.Service
	stats_gauges.Service
}

type ServiceApplication interface {
	applications_get.Service
	applications_post.Service
	applications_mine_get.Service
	application_get.Service
	application_approve_put.Service
	application_reject_put.Service
}

type ServiceUpload interface {
	upload_image_post.Service
	upload_image_delete.Service
}
