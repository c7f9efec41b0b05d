package application

import (
	"time"

	"courier-network/internal/repository"
)

type ApplicationDB struct {
	ID              string
	UserID          string
	VehicleType     string
	VehicleNumber   string
	LicenseNumber   string
	ExperienceYears int
	Availability    string
	Phone           string
	Address         repository.AddressDB
	Status          string
	AdminNotes      string
	ReviewedBy      string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	UserName  string
	UserEmail string
	UserPhone string
}
