package order

import "courier-network/internal/pkg/apperr"

var (
	ErrInvalidOrderID    = apperr.Validation("invalid order id")
	ErrInvalidCourierID  = apperr.Validation("invalid courier id")
	ErrMissingFields     = apperr.Validation("sender name, receiver name, pickup and delivery addresses are required")
	ErrInvalidWeight     = apperr.Validation("weight must be greater than 0")
	ErrInvalidStatus     = apperr.Validation("invalid status")
	ErrInvalidName       = apperr.Validation("sender and receiver names cannot be empty")
	ErrInvalidPhone      = apperr.Validation("please provide a valid phone number")
	ErrNoFieldsToUpdate  = apperr.Validation("no fields to update")
	ErrNotCourier        = apperr.Validation("selected user is not a courier")
	ErrMissingTrackingNo = apperr.Validation("tracking number is required")

	ErrOrderNotFound    = apperr.NotFound("order not found")
	ErrCourierNotFound  = apperr.NotFound("courier not found")
	ErrTrackingNotFound = apperr.NotFound("no order found with this tracking number")

	ErrAccessDenied    = apperr.Forbidden("not authorized to access this order")
	ErrCreateForbidden = apperr.Forbidden("only users and admins can create orders")
	ErrStatusForbidden = apperr.Forbidden("only admins and couriers can update order status")
	ErrAssignForbidden = apperr.Forbidden("only admins can assign couriers")

	ErrOrderConfirmed     = apperr.Conflict("cannot update order after it has been confirmed")
	ErrDeleteNotPending   = apperr.Conflict("cannot delete order after it has been confirmed")
	ErrCourierInactive    = apperr.Conflict("courier is not active")
	ErrTrackingNumberUsed = apperr.Conflict("tracking number already exists")
)
