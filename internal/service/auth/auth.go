package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"courier-network/internal/entities"
	"courier-network/internal/service/user"

	"github.com/AlekSi/pointer"
)

const minPasswordLength = 6

type Auth struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenManager
}

func New(users UserRepository, hasher PasswordHasher, tokens TokenManager) *Auth {
	return &Auth{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register создает пользователя с ролью user и сразу выдает токен.
func (s *Auth) Register(ctx context.Context, registration entities.Registration) (*entities.Session, error) {
	created, err := s.createAccount(ctx, registration, entities.RoleUser)
	if err != nil {
		return nil, err
	}
	return s.session(created)
}

// CreateAdmin заводит первого администратора из CLI.
// Живой аккаунт с тем же email повышается до admin, пароль не меняется.
func (s *Auth) CreateAdmin(ctx context.Context, registration entities.Registration) (*entities.User, error) {
	existing, err := s.users.GetByEmail(ctx, user.NormalizeEmail(registration.Email))
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return s.createAccount(ctx, registration, entities.RoleAdmin)
	case err != nil:
		return nil, fmt.Errorf("get user by email: %w", err)
	case existing.IsDeleted():
		return nil, user.ErrUserDeleted
	}

	updated, err := s.users.Update(ctx, entities.UserModify{
		ID:       pointer.ToString(existing.ID),
		Role:     pointer.To(entities.RoleAdmin),
		IsActive: pointer.ToBool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("promote user: %w", err)
	}
	return updated, nil
}

func (s *Auth) createAccount(ctx context.Context, registration entities.Registration, role entities.Role) (*entities.User, error) {
	if !user.IsValidName(registration.Name) {
		return nil, user.ErrInvalidName
	}
	if !user.IsValidEmail(registration.Email) {
		return nil, user.ErrInvalidEmail
	}
	if len(registration.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !user.IsValidPhone(registration.Phone) {
		return nil, user.ErrInvalidPhone
	}

	email := user.NormalizeEmail(registration.Email)
	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, user.ErrEmailTaken
	case !errors.Is(err, user.ErrUserNotFound):
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	hash, err := s.hasher.Hash(registration.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, entities.User{
		Name:         strings.TrimSpace(registration.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        strings.TrimSpace(registration.Phone),
		Address:      registration.Address,
		IsActive:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *Auth) Login(ctx context.Context, credentials entities.Credentials) (*entities.Session, error) {
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		return nil, ErrMissingCredentials
	}

	found, err := s.users.GetByEmail(ctx, user.NormalizeEmail(credentials.Email))
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	ok, err := s.hasher.Compare(found.PasswordHash, credentials.Password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := checkAccount(found); err != nil {
		return nil, err
	}

	return s.session(found)
}

// Authenticate проверяет токен и состояние аккаунта на каждый запрос,
// поэтому удаление и деактивация действуют сразу, без ожидания истечения токена.
func (s *Auth) Authenticate(ctx context.Context, token string) (*entities.Actor, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	found, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrUserGone
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := checkAccount(found); err != nil {
		return nil, err
	}

	return &entities.Actor{ID: found.ID, Role: found.Role}, nil
}

func (s *Auth) Me(ctx context.Context, actor entities.Actor) (*entities.User, error) {
	found, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return found, nil
}

// UpdateProfile меняет только контактные данные владельца.
func (s *Auth) UpdateProfile(ctx context.Context, actor entities.Actor, userModify entities.UserModify) (*entities.User, error) {
	patch := entities.UserModify{
		ID:        &actor.ID,
		Name:      userModify.Name,
		Phone:     userModify.Phone,
		Address:   userModify.Address,
		AvatarURL: userModify.AvatarURL,
	}
	if patch.IsEmpty() {
		return nil, user.ErrNoFieldsToUpdate
	}
	if patch.Name != nil {
		if !user.IsValidName(*patch.Name) {
			return nil, user.ErrInvalidName
		}
		patch.Name = pointer.To(strings.TrimSpace(*patch.Name))
	}
	if patch.Phone != nil && !user.IsValidPhone(*patch.Phone) {
		return nil, user.ErrInvalidPhone
	}

	updated, err := s.users.Update(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

func (s *Auth) ChangePassword(ctx context.Context, actor entities.Actor, current, next string) error {
	if current == "" || next == "" {
		return ErrMissingPasswords
	}
	if len(next) < minPasswordLength {
		return ErrPasswordTooShort
	}

	found, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	ok, err := s.hasher.Compare(found.PasswordHash, current)
	if err != nil {
		return fmt.Errorf("compare password: %w", err)
	}
	if !ok {
		return ErrWrongPassword
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = s.users.Update(ctx, entities.UserModify{
		ID:           &actor.ID,
		PasswordHash: &hash,
	})
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

func (s *Auth) session(u *entities.User) (*entities.Session, error) {
	token, err := s.tokens.Issue(u.ID, u.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &entities.Session{Token: token, User: u}, nil
}

func checkAccount(u *entities.User) error {
	if u.IsDeleted() {
		return ErrAccountDeleted
	}
	if !u.IsActive {
		return ErrAccountDeactivated
	}
	return nil
}
