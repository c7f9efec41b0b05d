package order

import (
	"context"
	"errors"
	"fmt"

	"courier-network/internal/entities"
	"courier-network/internal/repository"
	"courier-network/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `o.id::text, o.tracking_number, o.user_id::text, COALESCE(o.courier_id::text, ''),
	o.sender_name, o.sender_phone, o.receiver_name, o.receiver_phone,
	o.pickup_address, o.delivery_address, o.package_type, o.weight, o.description,
	o.distance, o.price, o.eta_minutes, o.eta_source, o.estimated_delivery_time, o.actual_delivery_time,
	o.status, o.created_at, o.updated_at,
	u.name, u.email, u.phone,
	COALESCE(c.name, ''), COALESCE(c.email, ''), COALESCE(c.phone, '')`

const fromJoined = `orders o
	JOIN users u ON u.id = o.user_id
	LEFT JOIN users c ON c.id = o.courier_id`

// терминальные статусы, заказ в них уже не активен
var terminalStatuses = []string{
	entities.OrderDelivered.String(),
	entities.OrderCancelled.String(),
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create заказ и первая запись истории пишутся одним выражением.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	if len(orderEntity.StatusHistory) == 0 {
		return nil, fmt.Errorf("unexpected order repository create error: order has no status history")
	}
	orderModel := FromDomain(&orderEntity)
	first := orderModel.History[len(orderModel.History)-1]

	query := `WITH inserted AS (
			INSERT INTO orders (tracking_number, user_id, sender_name, sender_phone, receiver_name, receiver_phone,
				pickup_address, delivery_address, package_type, weight, description, distance, price,
				eta_minutes, eta_source, estimated_delivery_time, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
			RETURNING id
		)
		INSERT INTO order_status_history (order_id, status, note, updated_by, created_at)
		SELECT id, $17, $19, NULLIF($20, '')::uuid, $18 FROM inserted
		RETURNING order_id::text`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModel.TrackingNumber,
		orderModel.UserID,
		orderModel.SenderName,
		orderModel.SenderPhone,
		orderModel.ReceiverName,
		orderModel.ReceiverPhone,
		orderModel.PickupAddress,
		orderModel.DeliveryAddress,
		orderModel.PackageType,
		orderModel.Weight,
		orderModel.Description,
		orderModel.Distance,
		orderModel.Price,
		orderModel.ETAMinutes,
		orderModel.ETASource,
		orderModel.EstimatedDeliveryTime,
		first.Status,
		first.CreatedAt,
		first.Note,
		first.UpdatedBy,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrTrackingNumberUsed
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	if uuid.Validate(id) != nil {
		return nil, order.ErrOrderNotFound
	}
	return r.getOne(ctx, sq.Eq{"o.id": id})
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Order, error) {
	return r.getOne(ctx, sq.Eq{"o.tracking_number": trackingNumber})
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)
	if orderModifyModel.ID == nil || uuid.Validate(*orderModifyModel.ID) != nil {
		return nil, order.ErrOrderNotFound
	}

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.SenderName != nil {
		builder = builder.Set("sender_name", orderModifyModel.SenderName)
	}
	if orderModifyModel.SenderPhone != nil {
		builder = builder.Set("sender_phone", orderModifyModel.SenderPhone)
	}
	if orderModifyModel.ReceiverName != nil {
		builder = builder.Set("receiver_name", orderModifyModel.ReceiverName)
	}
	if orderModifyModel.ReceiverPhone != nil {
		builder = builder.Set("receiver_phone", orderModifyModel.ReceiverPhone)
	}
	if orderModifyModel.PickupAddress != nil {
		builder = builder.Set("pickup_address", *orderModifyModel.PickupAddress)
	}
	if orderModifyModel.DeliveryAddress != nil {
		builder = builder.Set("delivery_address", *orderModifyModel.DeliveryAddress)
	}
	if orderModifyModel.PackageType != nil {
		builder = builder.Set("package_type", orderModifyModel.PackageType)
	}
	if orderModifyModel.Weight != nil {
		builder = builder.Set("weight", orderModifyModel.Weight)
	}
	if orderModifyModel.Description != nil {
		builder = builder.Set("description", orderModifyModel.Description)
	}
	if orderModifyModel.Distance != nil {
		builder = builder.Set("distance", orderModifyModel.Distance)
	}
	if orderModifyModel.Price != nil {
		builder = builder.Set("price", orderModifyModel.Price)
	}
	if orderModifyModel.ETAMinutes != nil {
		builder = builder.Set("eta_minutes", orderModifyModel.ETAMinutes)
	}
	if orderModifyModel.ETASource != nil {
		builder = builder.Set("eta_source", orderModifyModel.ETASource)
	}
	if orderModifyModel.EstimatedDeliveryTime != nil {
		builder = builder.Set("estimated_delivery_time", orderModifyModel.EstimatedDeliveryTime)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING id::text")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var id string
	err = r.querier.QueryRow(ctx, query, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return r.GetByID(ctx, id)
}

// AppendStatus единственная запись, меняющая статус: статус заказа и новая
// запись истории пишутся одним выражением.
func (r *Repository) AppendStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error) {
	if uuid.Validate(update.OrderID) != nil {
		return nil, order.ErrOrderNotFound
	}

	setCourier := update.CourierID != nil
	courierID := ""
	if setCourier {
		courierID = *update.CourierID
	}

	query := `WITH updated AS (
			UPDATE orders SET
				status = $2,
				updated_at = $3,
				courier_id = CASE WHEN $4::boolean THEN NULLIF($5::text, '')::uuid ELSE courier_id END,
				actual_delivery_time = COALESCE($6::timestamptz, actual_delivery_time)
			WHERE id = $1
			RETURNING id
		)
		INSERT INTO order_status_history (order_id, status, note, updated_by, created_at)
		SELECT id, $2, $7, NULLIF($8::text, '')::uuid, $3 FROM updated
		RETURNING order_id::text`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		update.OrderID,
		update.Entry.Status.String(),
		update.Entry.Timestamp,
		setCourier,
		courierID,
		update.ActualDeliveryTime,
		update.Entry.Note,
		update.Entry.UpdatedBy,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, order.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected order repository appendstatus error: %w", err)
	}

	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return order.ErrOrderNotFound
	}

	result, err := r.querier.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	conditions := sq.And{}
	if filter.UserID != "" {
		conditions = append(conditions, sq.Eq{"o.user_id": filter.UserID})
	}
	if filter.CourierID != "" {
		conditions = append(conditions, sq.Eq{"o.courier_id": filter.CourierID})
	}
	if filter.Status != nil {
		conditions = append(conditions, sq.Eq{"o.status": filter.Status.String()})
	}

	orderModels, err := r.selectOrders(ctx, conditions)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) CountActiveByUser(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM orders
		WHERE user_id = $1 AND status <> ALL($2)`

	var count int64
	err := r.querier.QueryRow(ctx, query, userID, terminalStatuses).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository countactivebyuser error: %w", err)
	}
	return count, nil
}

// UnassignCourier снимает курьера с незавершенных заказов, возвращает их в
// статус entry.Status и пишет по записи истории на каждый заказ.
func (r *Repository) UnassignCourier(ctx context.Context, courierID string, entry entities.StatusHistoryEntry) (int64, error) {
	query := `WITH affected AS (
			UPDATE orders SET courier_id = NULL, status = $2, updated_at = $3
			WHERE courier_id = $1 AND status <> ALL($6)
			RETURNING id
		)
		INSERT INTO order_status_history (order_id, status, note, updated_by, created_at)
		SELECT id, $2, $4, NULLIF($5::text, '')::uuid, $3 FROM affected`

	result, err := r.querier.Exec(
		ctx,
		query,
		courierID,
		entry.Status.String(),
		entry.Timestamp,
		entry.Note,
		entry.UpdatedBy,
		terminalStatuses,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository unassigncourier error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) Stats(ctx context.Context) (*entities.OrderStats, error) {
	query := `SELECT status, COUNT(*), COALESCE(SUM(price), 0)
		FROM orders
		GROUP BY status`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}
	defer rows.Close()

	stats := &entities.OrderStats{
		ByStatus: make(map[entities.OrderStatus]int64, len(entities.OrderStatuses)),
	}
	for rows.Next() {
		var (
			status  string
			count   int64
			revenue float64
		)
		if err := rows.Scan(&status, &count, &revenue); err != nil {
			return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
		}
		stats.ByStatus[entities.OrderStatus(status)] = count
		stats.Total += count
		if entities.OrderStatus(status) == entities.OrderDelivered {
			stats.DeliveredRevenue = revenue
		}
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository stats error: %w", err)
	}
	return stats, nil
}

func (r *Repository) getOne(ctx context.Context, where sq.Sqlizer) (*entities.Order, error) {
	orderModels, err := r.selectOrders(ctx, where)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}
	if len(orderModels) == 0 {
		return nil, order.ErrOrderNotFound
	}
	return ToDomain(&orderModels[0]), nil
}

func (r *Repository) selectOrders(ctx context.Context, where sq.Sqlizer) ([]OrderDB, error) {
	query, args, err := qb.
		Select(selectColumns).
		From(fromJoined).
		Where(where).
		OrderBy("o.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var o OrderDB
		err := rows.Scan(
			&o.ID,
			&o.TrackingNumber,
			&o.UserID,
			&o.CourierID,
			&o.SenderName,
			&o.SenderPhone,
			&o.ReceiverName,
			&o.ReceiverPhone,
			&o.PickupAddress,
			&o.DeliveryAddress,
			&o.PackageType,
			&o.Weight,
			&o.Description,
			&o.Distance,
			&o.Price,
			&o.ETAMinutes,
			&o.ETASource,
			&o.EstimatedDeliveryTime,
			&o.ActualDeliveryTime,
			&o.Status,
			&o.CreatedAt,
			&o.UpdatedAt,
			&o.UserName,
			&o.UserEmail,
			&o.UserPhone,
			&o.CourierName,
			&o.CourierEmail,
			&o.CourierPhone,
		)
		if err != nil {
			return nil, err
		}
		orderModels = append(orderModels, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadHistory(ctx, orderModels); err != nil {
		return nil, err
	}
	return orderModels, nil
}

// loadHistory история всех заказов выборки одним запросом, по порядку записи.
func (r *Repository) loadHistory(ctx context.Context, orderModels []OrderDB) error {
	if len(orderModels) == 0 {
		return nil
	}

	ids := make([]string, len(orderModels))
	index := make(map[string]int, len(orderModels))
	for i := range orderModels {
		ids[i] = orderModels[i].ID
		index[orderModels[i].ID] = i
	}

	query := `SELECT order_id::text, status, note, COALESCE(updated_by::text, ''), created_at
		FROM order_status_history
		WHERE order_id = ANY($1::uuid[])
		ORDER BY order_id, id`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var h StatusHistoryDB
		if err := rows.Scan(&h.OrderID, &h.Status, &h.Note, &h.UpdatedBy, &h.CreatedAt); err != nil {
			return err
		}
		i := index[h.OrderID]
		orderModels[i].History = append(orderModels[i].History, h)
	}
	return rows.Err()
}
