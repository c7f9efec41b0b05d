package auth

import "courier-network/internal/pkg/apperr"

var (
	ErrPasswordTooShort   = apperr.Validation("password must be at least 6 characters")
	ErrMissingCredentials = apperr.Validation("please provide email and password")
	ErrMissingPasswords   = apperr.Validation("please provide current and new password")
	ErrWrongPassword      = apperr.Validation("current password is incorrect")

	ErrInvalidCredentials = apperr.Unauthenticated("invalid email or password")
	ErrInvalidToken       = apperr.Unauthenticated("not authorized, token failed")
	ErrUserGone           = apperr.Unauthenticated("not authorized, user not found")
	ErrAccountDeleted     = apperr.Unauthenticated("account has been deleted")
	ErrAccountDeactivated = apperr.Unauthenticated("account is deactivated, contact an administrator")
)
