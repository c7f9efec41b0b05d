package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/service/user"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

const (
	noteCreated  = "Order created"
	noteAssigned = "Courier assigned"
)

type Service struct {
	repository     Repository
	userRepository UserRepository
	estimator      Estimator
	publisher      EventPublisher
	now            func() time.Time
	newTracking    func(time.Time) string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithTrackingGenerator(gen func(time.Time) string) Option {
	return func(s *Service) {
		s.newTracking = gen
	}
}

func New(
	repository Repository,
	userRepository UserRepository,
	estimator Estimator,
	publisher EventPublisher,
	opts ...Option,
) *Service {
	s := &Service{
		repository:     repository,
		userRepository: userRepository,
		estimator:      estimator,
		publisher:      publisher,
		now:            time.Now,
		newTracking:    NewTrackingNumber,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Create(ctx context.Context, actor entities.Actor, order entities.Order) (*entities.Order, error) {
	if !actor.Is(entities.RoleUser, entities.RoleAdmin) {
		return nil, ErrCreateForbidden
	}
	if strings.TrimSpace(order.SenderName) == "" ||
		strings.TrimSpace(order.ReceiverName) == "" ||
		!hasLocation(order.PickupAddress) ||
		!hasLocation(order.DeliveryAddress) {
		return nil, ErrMissingFields
	}
	if order.Weight <= 0 {
		return nil, ErrInvalidWeight
	}
	if !user.IsValidPhone(order.SenderPhone) || !user.IsValidPhone(order.ReceiverPhone) {
		return nil, ErrInvalidPhone
	}

	quote, err := s.estimator.Quote(ctx, entities.QuoteRequest{
		Pickup:   order.PickupAddress,
		Delivery: order.DeliveryAddress,
		Weight:   order.Weight,
	})
	if err != nil {
		return nil, fmt.Errorf("estimate order: %w", err)
	}

	now := s.now()
	order.ID = ""
	order.UserID = actor.ID
	order.CourierID = ""
	order.SenderName = strings.TrimSpace(order.SenderName)
	order.ReceiverName = strings.TrimSpace(order.ReceiverName)
	order.Distance = quote.Distance
	order.Price = quote.Price
	order.ETAMinutes = quote.ETAMinutes
	order.ETASource = quote.ETASource
	order.EstimatedDeliveryTime = pointer.To(quote.EstimatedDeliveryTime)
	order.ActualDeliveryTime = nil
	order.StatusHistory = nil
	order.AppendStatus(entities.StatusHistoryEntry{
		Status:    entities.OrderPending,
		Timestamp: now,
		Note:      noteCreated,
		UpdatedBy: actor.ID,
	})
	order.CreatedAt = now

	var created *entities.Order
	for attempt := 0; attempt < trackingAttempts; attempt++ {
		order.TrackingNumber = s.newTracking(now)
		created, err = s.repository.Create(ctx, order)
		if !errors.Is(err, ErrTrackingNumberUsed) {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, created, actor.ID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, actor entities.Actor, id string) (*entities.Order, error) {
	order, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(actor, order) {
		return nil, ErrAccessDenied
	}
	return order, nil
}

// Track публичный поиск по трек-номеру.
func (s *Service) Track(ctx context.Context, trackingNumber string) (*entities.Tracking, error) {
	trackingNumber = strings.ToUpper(strings.TrimSpace(trackingNumber))
	if trackingNumber == "" {
		return nil, ErrMissingTrackingNo
	}

	order, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if errors.Is(err, ErrOrderNotFound) {
		return nil, ErrTrackingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order by tracking number: %w", err)
	}

	history := make([]entities.StatusHistoryEntry, 0, len(order.StatusHistory))
	for _, entry := range order.StatusHistory {
		history = append(history, entities.StatusHistoryEntry{
			Status:    entry.Status,
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
		})
	}

	return &entities.Tracking{
		TrackingNumber:        order.TrackingNumber,
		Status:                order.Status,
		StatusHistory:         history,
		PickupCity:            order.PickupAddress.City,
		DeliveryCity:          order.DeliveryAddress.City,
		EstimatedDeliveryTime: order.EstimatedDeliveryTime,
		ActualDeliveryTime:    order.ActualDeliveryTime,
		CreatedAt:             order.CreatedAt,
	}, nil
}

// Update правка полей заказа. Статус и история здесь не меняются.
// Смена адреса пересчитывает расстояние, цену и ETA, смена веса только цену.
func (s *Service) Update(ctx context.Context, actor entities.Actor, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil {
		return nil, ErrInvalidOrderID
	}
	if orderModify.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	patch := entities.OrderModify{
		ID:              orderModify.ID,
		SenderName:      orderModify.SenderName,
		SenderPhone:     orderModify.SenderPhone,
		ReceiverName:    orderModify.ReceiverName,
		ReceiverPhone:   orderModify.ReceiverPhone,
		PickupAddress:   orderModify.PickupAddress,
		DeliveryAddress: orderModify.DeliveryAddress,
		PackageType:     orderModify.PackageType,
		Weight:          orderModify.Weight,
		Description:     orderModify.Description,
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	current, err := s.get(ctx, *patch.ID)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.Is(entities.RoleAdmin):
	case actor.Is(entities.RoleUser) && current.UserID == actor.ID:
		if current.Status != entities.OrderPending {
			return nil, ErrOrderConfirmed
		}
	default:
		return nil, ErrAccessDenied
	}

	weight := current.Weight
	if patch.Weight != nil {
		weight = *patch.Weight
	}

	if patch.PickupAddress != nil || patch.DeliveryAddress != nil {
		pickup, delivery := current.PickupAddress, current.DeliveryAddress
		if patch.PickupAddress != nil {
			pickup = *patch.PickupAddress
		}
		if patch.DeliveryAddress != nil {
			delivery = *patch.DeliveryAddress
		}

		quote, err := s.estimator.Quote(ctx, entities.QuoteRequest{
			Pickup:   pickup,
			Delivery: delivery,
			Weight:   weight,
		})
		if err != nil {
			return nil, fmt.Errorf("estimate order: %w", err)
		}
		patch.Distance = pointer.To(quote.Distance)
		patch.Price = pointer.To(quote.Price)
		patch.ETAMinutes = pointer.To(quote.ETAMinutes)
		patch.ETASource = pointer.To(quote.ETASource)
		patch.EstimatedDeliveryTime = pointer.To(quote.EstimatedDeliveryTime)
	} else if patch.Weight != nil {
		patch.Price = pointer.To(s.estimator.CalculatePrice(weight, current.Distance))
	}

	updated, err := s.repository.Update(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return updated, nil
}

func (s *Service) UpdateStatus(ctx context.Context, actor entities.Actor, id string, status entities.OrderStatus, note string) (*entities.Order, error) {
	if !actor.Is(entities.RoleAdmin, entities.RoleCourier) {
		return nil, ErrStatusForbidden
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus.Withf("invalid status %q", status)
	}

	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	note = strings.TrimSpace(note)
	if note == "" {
		note = "Status updated to " + status.String()
	}

	now := s.now()
	update := entities.StatusUpdate{
		OrderID: id,
		Entry: entities.StatusHistoryEntry{
			Status:    status,
			Timestamp: now,
			Note:      note,
			UpdatedBy: actor.ID,
		},
	}
	if status == entities.OrderDelivered {
		update.ActualDeliveryTime = &now
	}

	updated, err := s.repository.AppendStatus(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("append status: %w", err)
	}

	s.publish(ctx, updated, actor.ID)
	return updated, nil
}

// AssignCourier назначает курьера и переводит заказ в Confirmed.
func (s *Service) AssignCourier(ctx context.Context, actor entities.Actor, id, courierID string) (*entities.Order, error) {
	if !actor.Is(entities.RoleAdmin) {
		return nil, ErrAssignForbidden
	}
	if uuid.Validate(courierID) != nil {
		return nil, ErrInvalidCourierID
	}

	if _, err := s.get(ctx, id); err != nil {
		return nil, err
	}

	courier, err := s.userRepository.GetByID(ctx, courierID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrCourierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get courier: %w", err)
	}
	switch {
	case courier.IsDeleted():
		return nil, ErrCourierNotFound
	case courier.Role != entities.RoleCourier:
		return nil, ErrNotCourier
	case !courier.IsActive:
		return nil, ErrCourierInactive
	}

	updated, err := s.repository.AppendStatus(ctx, entities.StatusUpdate{
		OrderID: id,
		Entry: entities.StatusHistoryEntry{
			Status:    entities.OrderConfirmed,
			Timestamp: s.now(),
			Note:      noteAssigned,
			UpdatedBy: actor.ID,
		},
		CourierID: &courierID,
	})
	if err != nil {
		return nil, fmt.Errorf("assign courier: %w", err)
	}

	s.publish(ctx, updated, actor.ID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, actor entities.Actor, id string) error {
	order, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	switch {
	case actor.Is(entities.RoleAdmin):
	case actor.Is(entities.RoleUser) && order.UserID == actor.ID:
		if order.Status != entities.OrderPending {
			return ErrDeleteNotPending
		}
	default:
		return ErrAccessDenied
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// List новые заказы первыми. Пользователь видит свои, курьер назначенные.
func (s *Service) List(ctx context.Context, actor entities.Actor, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus.Withf("invalid status %q", *filter.Status)
	}

	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleCourier:
		filter.UserID = ""
		filter.CourierID = actor.ID
	default:
		filter.UserID = actor.ID
		filter.CourierID = ""
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Estimate расчет без сохранения заказа.
func (s *Service) Estimate(ctx context.Context, req entities.QuoteRequest) (*entities.Quote, error) {
	if !hasLocation(req.Pickup) || !hasLocation(req.Delivery) {
		return nil, ErrMissingFields
	}
	if req.Weight <= 0 {
		return nil, ErrInvalidWeight
	}

	quote, err := s.estimator.Quote(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("estimate order: %w", err)
	}
	return quote, nil
}

func (s *Service) get(ctx context.Context, id string) (*entities.Order, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) publish(ctx context.Context, order *entities.Order, changedBy string) {
	if order == nil || len(order.StatusHistory) == 0 {
		return
	}
	last := order.StatusHistory[len(order.StatusHistory)-1]

	s.publisher.PublishStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID:        order.ID,
		TrackingNumber: order.TrackingNumber,
		UserID:         order.UserID,
		CourierID:      order.CourierID,
		Status:         order.Status,
		Note:           last.Note,
		ChangedBy:      changedBy,
		ChangedAt:      last.Timestamp,
	})
}

func canView(actor entities.Actor, order *entities.Order) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleCourier:
		return order.CourierID == actor.ID
	default:
		return order.UserID == actor.ID
	}
}

func hasLocation(a entities.Address) bool {
	return strings.TrimSpace(a.City) != "" || strings.TrimSpace(a.Street) != ""
}

func validatePatch(patch entities.OrderModify) error {
	if patch.SenderName != nil && strings.TrimSpace(*patch.SenderName) == "" {
		return ErrInvalidName
	}
	if patch.ReceiverName != nil && strings.TrimSpace(*patch.ReceiverName) == "" {
		return ErrInvalidName
	}
	if patch.Weight != nil && *patch.Weight <= 0 {
		return ErrInvalidWeight
	}
	if patch.SenderPhone != nil && !user.IsValidPhone(*patch.SenderPhone) {
		return ErrInvalidPhone
	}
	if patch.ReceiverPhone != nil && !user.IsValidPhone(*patch.ReceiverPhone) {
		return ErrInvalidPhone
	}
	if patch.PickupAddress != nil && !hasLocation(*patch.PickupAddress) {
		return ErrMissingFields
	}
	if patch.DeliveryAddress != nil && !hasLocation(*patch.DeliveryAddress) {
		return ErrMissingFields
	}
	return nil
}
