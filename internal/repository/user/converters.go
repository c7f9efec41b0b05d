package user

import (
	"courier-network/internal/entities"
	"courier-network/internal/repository"

	"github.com/AlekSi/pointer"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entities.Role(u.Role),
		Phone:        u.Phone,
		Address:      repository.AddressToDomain(u.Address),
		AvatarURL:    u.AvatarURL,
		IsActive:     u.IsActive,
		IsAvailable:  u.IsAvailable,
		DeletedAt:    u.DeletedAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDomain(u *entities.User) *UserDB {
	if u == nil {
		return nil
	}

	return &UserDB{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role.String(),
		Phone:        u.Phone,
		Address:      repository.AddressFromDomain(u.Address),
		AvatarURL:    u.AvatarURL,
		IsActive:     u.IsActive,
		IsAvailable:  u.IsAvailable,
		DeletedAt:    u.DeletedAt,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}

	userDB := &UserModifyDB{
		ID:           userModify.ID,
		Name:         userModify.Name,
		Email:        userModify.Email,
		PasswordHash: userModify.PasswordHash,
		Phone:        userModify.Phone,
		AvatarURL:    userModify.AvatarURL,
		IsActive:     userModify.IsActive,
		IsAvailable:  userModify.IsAvailable,
	}
	if userModify.Role != nil {
		userDB.Role = pointer.To(userModify.Role.String())
	}
	if userModify.Address != nil {
		userDB.Address = pointer.To(repository.AddressFromDomain(*userModify.Address))
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i := range usersDB {
		result[i] = *ToDomain(&usersDB[i])
	}
	return result
}
