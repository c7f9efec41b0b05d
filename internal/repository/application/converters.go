package application

import (
	"courier-network/internal/entities"
	"courier-network/internal/repository"
)

func ToDomain(a *ApplicationDB) *entities.CourierApplication {
	if a == nil {
		return nil
	}

	return &entities.CourierApplication{
		ID:     a.ID,
		UserID: a.UserID,
		User: &entities.UserSummary{
			ID:    a.UserID,
			Name:  a.UserName,
			Email: a.UserEmail,
			Phone: a.UserPhone,
		},
		VehicleType:     entities.VehicleType(a.VehicleType),
		VehicleNumber:   a.VehicleNumber,
		LicenseNumber:   a.LicenseNumber,
		ExperienceYears: a.ExperienceYears,
		Availability:    entities.Availability(a.Availability),
		Phone:           a.Phone,
		Address:         repository.AddressToDomain(a.Address),
		Status:          entities.ApplicationStatus(a.Status),
		AdminNotes:      a.AdminNotes,
		ReviewedBy:      a.ReviewedBy,
		ReviewedAt:      a.ReviewedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromDomain(a *entities.CourierApplication) *ApplicationDB {
	if a == nil {
		return nil
	}

	return &ApplicationDB{
		ID:              a.ID,
		UserID:          a.UserID,
		VehicleType:     a.VehicleType.String(),
		VehicleNumber:   a.VehicleNumber,
		LicenseNumber:   a.LicenseNumber,
		ExperienceYears: a.ExperienceYears,
		Availability:    a.Availability.String(),
		Phone:           a.Phone,
		Address:         repository.AddressFromDomain(a.Address),
		Status:          a.Status.String(),
		AdminNotes:      a.AdminNotes,
		ReviewedBy:      a.ReviewedBy,
		ReviewedAt:      a.ReviewedAt,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func ToDomainList(applicationsDB []ApplicationDB) []entities.CourierApplication {
	if len(applicationsDB) == 0 {
		return []entities.CourierApplication{}
	}

	result := make([]entities.CourierApplication, len(applicationsDB))
	for i := range applicationsDB {
		result[i] = *ToDomain(&applicationsDB[i])
	}
	return result
}
