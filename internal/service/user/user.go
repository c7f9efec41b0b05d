package user

import (
	"context"
	"fmt"
	"time"

	"courier-network/internal/entities"

	"github.com/AlekSi/pointer"
)

const courierRemovedNote = "Courier removed - account deleted"

type User struct {
	repository      Repository
	orderRepository OrderRepository
	txManager       TxManager
	now             func() time.Time
}

type Option func(*User)

func WithClock(now func() time.Time) Option {
	return func(s *User) {
		s.now = now
	}
}

func New(repository Repository, orderRepository OrderRepository, txManager TxManager, opts ...Option) *User {
	s := &User{
		repository:      repository,
		orderRepository: orderRepository,
		txManager:       txManager,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *User) List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	users, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *User) Get(ctx context.Context, id string) (*entities.User, error) {
	if !IsValidID(id) {
		return nil, ErrInvalidUserID
	}

	user, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update правка профиля пользователя администратором. Роль, активность и
// удаление меняются отдельными операциями.
func (s *User) Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil || !IsValidID(*userModify.ID) {
		return nil, ErrInvalidUserID
	}

	patch := entities.UserModify{
		ID:          userModify.ID,
		Name:        userModify.Name,
		Email:       userModify.Email,
		Phone:       userModify.Phone,
		Address:     userModify.Address,
		AvatarURL:   userModify.AvatarURL,
		IsAvailable: userModify.IsAvailable,
	}
	if patch.IsEmpty() {
		return nil, ErrNoFieldsToUpdate
	}

	if patch.Name != nil && !IsValidName(*patch.Name) {
		return nil, ErrInvalidName
	}
	if patch.Email != nil {
		if !IsValidEmail(*patch.Email) {
			return nil, ErrInvalidEmail
		}
		patch.Email = pointer.To(NormalizeEmail(*patch.Email))
	}
	if patch.Phone != nil && !IsValidPhone(*patch.Phone) {
		return nil, ErrInvalidPhone
	}

	if patch.IsAvailable != nil {
		target, err := s.repository.GetByID(ctx, *patch.ID)
		if err != nil {
			return nil, fmt.Errorf("get user: %w", err)
		}
		if target.Role != entities.RoleCourier {
			return nil, ErrAvailabilityField
		}
	}

	user, err := s.repository.Update(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *User) ChangeRole(ctx context.Context, actor entities.Actor, id string, role entities.Role) (*entities.User, error) {
	if !IsValidID(id) {
		return nil, ErrInvalidUserID
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole.Withf("invalid role %q, must be one of user, courier, admin", role)
	}
	if id == actor.ID {
		return nil, ErrSelfRoleChange
	}

	user, err := s.repository.Update(ctx, entities.UserModify{
		ID:   &id,
		Role: &role,
	})
	if err != nil {
		return nil, fmt.Errorf("change role: %w", err)
	}
	return user, nil
}

func (s *User) ToggleActive(ctx context.Context, actor entities.Actor, id string) (*entities.User, error) {
	if !IsValidID(id) {
		return nil, ErrInvalidUserID
	}
	if id == actor.ID {
		return nil, ErrSelfDeactivate
	}

	target, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if target.IsDeleted() {
		return nil, ErrUserDeleted
	}

	user, err := s.repository.Update(ctx, entities.UserModify{
		ID:       &id,
		IsActive: pointer.To(!target.IsActive),
	})
	if err != nil {
		return nil, fmt.Errorf("toggle active: %w", err)
	}
	return user, nil
}

// Delete мягкое удаление с проверками и каскадом на заказы.
//
//  1. Нельзя удалить себя.
//  2. Нельзя удалить последнего активного администратора.
//  3. Пользователь с незавершенными заказами не удаляется.
//  4. С заказов удаляемого курьера курьер снимается, статус возвращается в Pending.
//  5. deletedAt = now, isActive = false.
//
// Шаги 2-5 выполняются в одной транзакции.
func (s *User) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if !IsValidID(id) {
		return ErrInvalidUserID
	}
	if id == actor.ID {
		return ErrSelfDelete
	}

	target, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if target.IsDeleted() {
		return ErrAlreadyDeleted
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		switch target.Role {
		case entities.RoleAdmin:
			admins, err := s.repository.CountActiveAdmins(ctx)
			if err != nil {
				return fmt.Errorf("count admins: %w", err)
			}
			if admins <= 1 {
				return ErrLastAdmin
			}

		case entities.RoleUser:
			active, err := s.orderRepository.CountActiveByUser(ctx, id)
			if err != nil {
				return fmt.Errorf("count active orders: %w", err)
			}
			if active > 0 {
				return ErrHasActiveOrders.Withf("cannot delete user with %d active orders", active)
			}

		case entities.RoleCourier:
			_, err := s.orderRepository.UnassignCourier(ctx, id, entities.StatusHistoryEntry{
				Status:    entities.OrderPending,
				Timestamp: s.now(),
				Note:      courierRemovedNote,
				UpdatedBy: actor.ID,
			})
			if err != nil {
				return fmt.Errorf("unassign courier orders: %w", err)
			}
		}

		err := s.repository.SoftDelete(ctx, id, s.now())
		if err != nil {
			return fmt.Errorf("soft delete user: %w", err)
		}
		return nil
	})
}

func (s *User) Restore(ctx context.Context, id string) (*entities.User, error) {
	if !IsValidID(id) {
		return nil, ErrInvalidUserID
	}

	target, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !target.IsDeleted() {
		return nil, ErrNotDeleted
	}

	user, err := s.repository.Restore(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("restore user: %w", err)
	}
	return user, nil
}

func (s *User) AvailableCouriers(ctx context.Context) ([]entities.User, error) {
	role := entities.RoleCourier
	couriers, err := s.repository.List(ctx, entities.UserFilter{
		Role:          &role,
		OnlyActive:    true,
		OnlyAvailable: true,
	})
	if err != nil {
		return nil, fmt.Errorf("list available couriers: %w", err)
	}
	return couriers, nil
}

func (s *User) Stats(ctx context.Context) (*entities.Summary, error) {
	byRole, err := s.repository.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}

	orders, err := s.orderRepository.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("order stats: %w", err)
	}

	if byRole == nil {
		byRole = make(map[entities.Role]int64, len(entities.Roles))
	}
	for _, role := range entities.Roles {
		if _, ok := byRole[role]; !ok {
			byRole[role] = 0
		}
	}

	return &entities.Summary{
		UsersByRole: byRole,
		Orders:      *orders,
	}, nil
}
