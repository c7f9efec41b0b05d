package estimate

import "courier-network/internal/pkg/apperr"

var (
	ErrAddressNotResolved = apperr.Validation("unable to calculate distance: address could not be resolved")
	ErrInvalidWeight      = apperr.Validation("weight must be greater than 0")
	ErrMissingAddress     = apperr.Validation("pickup and delivery addresses are required")
)
