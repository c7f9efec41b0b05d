package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courier-network/internal/entities"
	"courier-network/internal/service/user"
)

// ErrRecipientSkipped владельца заказа нет или он удален, письмо не отправляется.
var ErrRecipientSkipped = errors.New("recipient skipped")

type Service struct {
	users  UserRepository
	mailer Mailer
}

func New(users UserRepository, mailer Mailer) *Service {
	return &Service{
		users:  users,
		mailer: mailer,
	}
}

func (s *Service) NotifyStatusChanged(ctx context.Context, event entities.OrderStatusEvent) error {
	owner, err := s.users.GetByID(ctx, event.UserID)
	if errors.Is(err, user.ErrUserNotFound) {
		return ErrRecipientSkipped
	}
	if err != nil {
		return fmt.Errorf("get order owner: %w", err)
	}
	if owner.IsDeleted() || !owner.IsActive || owner.Email == "" {
		return ErrRecipientSkipped
	}

	err = s.mailer.Send(ctx, StatusChangedEmail(owner, event))
	if err != nil {
		return fmt.Errorf("send status email: %w", err)
	}
	return nil
}

func StatusChangedEmail(owner *entities.User, event entities.OrderStatusEvent) entities.Email {
	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\n\n", owner.Name)
	fmt.Fprintf(&body, "Your order %s is now %s.\n", event.TrackingNumber, event.Status)
	if event.Note != "" {
		fmt.Fprintf(&body, "Note: %s\n", event.Note)
	}
	fmt.Fprintf(&body, "Updated at: %s\n\n", event.ChangedAt.UTC().Format("02 Jan 2006 15:04 MST"))
	body.WriteString("Thank you for shipping with Courier Network.\n")

	return entities.Email{
		To:      owner.Email,
		Subject: fmt.Sprintf("Order %s: %s", event.TrackingNumber, event.Status),
		Body:    body.String(),
	}
}
