package application

import (
	"strings"

	"courier-network/internal/entities"
	"courier-network/internal/service/user"
)

const maxExperienceYears = 50

func validate(a entities.CourierApplication) error {
	if !a.VehicleType.IsValid() {
		return ErrInvalidVehicleType
	}
	// у велосипеда номера нет
	if a.VehicleType != entities.VehicleBicycle && strings.TrimSpace(a.VehicleNumber) == "" {
		return ErrMissingVehicleNumber
	}
	if strings.TrimSpace(a.LicenseNumber) == "" {
		return ErrMissingLicense
	}
	if a.ExperienceYears < 0 || a.ExperienceYears > maxExperienceYears {
		return ErrInvalidExperience
	}
	if !a.Availability.IsValid() {
		return ErrInvalidAvailability
	}
	if strings.TrimSpace(a.Phone) == "" || !user.IsValidPhone(a.Phone) {
		return ErrInvalidPhone
	}
	if strings.TrimSpace(a.Address.City) == "" {
		return ErrMissingAddress
	}
	return nil
}
