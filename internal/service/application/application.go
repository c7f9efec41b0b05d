package application

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"courier-network/internal/entities"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
)

type Service struct {
	repository     Repository
	userRepository UserRepository
	txManager      TxManager
	now            func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(repository Repository, userRepository UserRepository, txManager TxManager, opts ...Option) *Service {
	s := &Service{
		repository:     repository,
		userRepository: userRepository,
		txManager:      txManager,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit подача заявки. Одна заявка в ожидании на пользователя, после отказа
// действует ReapplyCooldown.
func (s *Service) Submit(ctx context.Context, actor entities.Actor, application entities.CourierApplication) (*entities.CourierApplication, error) {
	switch actor.Role {
	case entities.RoleCourier:
		return nil, ErrAlreadyCourier
	case entities.RoleAdmin:
		return nil, ErrAdminCannotApply
	}

	if err := validate(application); err != nil {
		return nil, err
	}

	previous, err := s.repository.List(ctx, entities.ApplicationFilter{UserID: actor.ID})
	if err != nil {
		return nil, fmt.Errorf("list previous applications: %w", err)
	}
	if err := s.checkPrevious(previous); err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, entities.CourierApplication{
		UserID:          actor.ID,
		VehicleType:     application.VehicleType,
		VehicleNumber:   strings.ToUpper(strings.TrimSpace(application.VehicleNumber)),
		LicenseNumber:   strings.ToUpper(strings.TrimSpace(application.LicenseNumber)),
		ExperienceYears: application.ExperienceYears,
		Availability:    application.Availability,
		Phone:           strings.TrimSpace(application.Phone),
		Address:         application.Address,
		Status:          entities.ApplicationPending,
		CreatedAt:       s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return created, nil
}

// checkPrevious previous отсортированы от новых к старым.
func (s *Service) checkPrevious(previous []entities.CourierApplication) error {
	for i := range previous {
		if previous[i].Status == entities.ApplicationPending {
			return ErrPendingExists
		}
	}

	for i := range previous {
		if previous[i].Status != entities.ApplicationRejected {
			continue
		}
		remaining := previous[i].CooldownRemaining(s.now())
		if remaining > 0 {
			days := int(math.Ceil(remaining.Hours() / 24))
			return ErrCooldown.Withf("you can reapply in %d day(s)", days)
		}
		break
	}
	return nil
}

func (s *Service) List(ctx context.Context, filter entities.ApplicationFilter) ([]entities.CourierApplication, error) {
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	applications, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}

func (s *Service) Mine(ctx context.Context, actor entities.Actor) ([]entities.CourierApplication, error) {
	applications, err := s.repository.List(ctx, entities.ApplicationFilter{UserID: actor.ID})
	if err != nil {
		return nil, fmt.Errorf("list own applications: %w", err)
	}
	return applications, nil
}

func (s *Service) Get(ctx context.Context, actor entities.Actor, id string) (*entities.CourierApplication, error) {
	application, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Is(entities.RoleAdmin) && application.UserID != actor.ID {
		return nil, ErrAccessDenied
	}
	return application, nil
}

// Approve одобрение и повышение заявителя до курьера одной транзакцией.
func (s *Service) Approve(ctx context.Context, actor entities.Actor, id, notes string) (*entities.CourierApplication, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidApplicationID
	}

	var approved *entities.CourierApplication
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		application, err := s.pending(ctx, id)
		if err != nil {
			return err
		}

		applicant, err := s.userRepository.GetByID(ctx, application.UserID)
		if err != nil {
			return fmt.Errorf("get applicant: %w", err)
		}
		if applicant.IsDeleted() {
			return ErrApplicantDeleted
		}

		approved, err = s.repository.Review(ctx, entities.ApplicationReview{
			ID:         id,
			Status:     entities.ApplicationApproved,
			AdminNotes: strings.TrimSpace(notes),
			ReviewedBy: actor.ID,
			ReviewedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("review application: %w", err)
		}

		_, err = s.userRepository.Update(ctx, entities.UserModify{
			ID:          &application.UserID,
			Role:        pointer.To(entities.RoleCourier),
			IsAvailable: pointer.To(true),
		})
		if err != nil {
			return fmt.Errorf("promote applicant: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

func (s *Service) Reject(ctx context.Context, actor entities.Actor, id, notes string) (*entities.CourierApplication, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidApplicationID
	}
	notes = strings.TrimSpace(notes)
	if notes == "" {
		return nil, ErrNotesRequired
	}

	if _, err := s.pending(ctx, id); err != nil {
		return nil, err
	}

	rejected, err := s.repository.Review(ctx, entities.ApplicationReview{
		ID:         id,
		Status:     entities.ApplicationRejected,
		AdminNotes: notes,
		ReviewedBy: actor.ID,
		ReviewedAt: s.now(),
	})
	if err != nil {
		return nil, fmt.Errorf("review application: %w", err)
	}
	return rejected, nil
}

func (s *Service) pending(ctx context.Context, id string) (*entities.CourierApplication, error) {
	application, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if application.Status != entities.ApplicationPending {
		return nil, ErrAlreadyReviewed.Withf("application already %s", application.Status)
	}
	return application, nil
}

func (s *Service) get(ctx context.Context, id string) (*entities.CourierApplication, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidApplicationID
	}

	application, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return application, nil
}
