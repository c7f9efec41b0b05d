package user

import "courier-network/internal/pkg/apperr"

var (
	ErrInvalidUserID     = apperr.Validation("invalid user id")
	ErrInvalidName       = apperr.Validation("name is required and must be at most 100 characters")
	ErrInvalidEmail      = apperr.Validation("please provide a valid email")
	ErrInvalidPhone      = apperr.Validation("please provide a valid phone number")
	ErrInvalidRole       = apperr.Validation("invalid role")
	ErrNoFieldsToUpdate  = apperr.Validation("no fields to update")
	ErrAvailabilityField = apperr.Validation("availability can only be set for couriers")

	ErrUserNotFound = apperr.NotFound("user not found")

	ErrEmailTaken      = apperr.Conflict("user already exists with this email")
	ErrSelfDelete      = apperr.Conflict("you cannot delete your own account")
	ErrSelfRoleChange  = apperr.Conflict("you cannot change your own role")
	ErrSelfDeactivate  = apperr.Conflict("you cannot deactivate your own account")
	ErrLastAdmin       = apperr.Conflict("cannot delete the last admin")
	ErrHasActiveOrders = apperr.Conflict("cannot delete user with active orders")
	ErrAlreadyDeleted  = apperr.Conflict("user is already deleted")
	ErrNotDeleted      = apperr.Conflict("user is not deleted")
	ErrUserDeleted     = apperr.Conflict("user is deleted, restore it first")
)
