package application

import "courier-network/internal/pkg/apperr"

var (
	ErrInvalidApplicationID = apperr.Validation("invalid application id")
	ErrInvalidVehicleType   = apperr.Validation("vehicle type must be one of bicycle, motorcycle, car, van")
	ErrMissingVehicleNumber = apperr.Validation("vehicle number is required")
	ErrMissingLicense       = apperr.Validation("license number is required")
	ErrInvalidExperience    = apperr.Validation("experience years must be between 0 and 50")
	ErrInvalidAvailability  = apperr.Validation("availability must be one of full-time, part-time, weekends")
	ErrInvalidPhone         = apperr.Validation("please provide a valid phone number")
	ErrMissingAddress       = apperr.Validation("address with city is required")
	ErrNotesRequired        = apperr.Validation("admin notes are required when rejecting an application")
	ErrInvalidStatus        = apperr.Validation("invalid application status")

	ErrApplicationNotFound = apperr.NotFound("application not found")

	ErrAccessDenied = apperr.Forbidden("not authorized to view this application")

	ErrAlreadyCourier   = apperr.Conflict("you are already a courier")
	ErrAdminCannotApply = apperr.Conflict("admins cannot apply to become couriers")
	ErrPendingExists    = apperr.Conflict("you already have a pending application")
	ErrCooldown         = apperr.Conflict("your application was recently rejected")
	ErrAlreadyReviewed  = apperr.Conflict("application already reviewed")
	ErrApplicantDeleted = apperr.Conflict("applicant account is deleted")
)
