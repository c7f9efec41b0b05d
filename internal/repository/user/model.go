package user

import (
	"time"

	"courier-network/internal/repository"
)

type UserDB struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	Address      repository.AddressDB
	AvatarURL    string
	IsActive     bool
	IsAvailable  bool
	DeletedAt    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type UserModifyDB struct {
	ID           *string
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *string
	Phone        *string
	Address      *repository.AddressDB
	AvatarURL    *string
	IsActive     *bool
	IsAvailable  *bool
}
