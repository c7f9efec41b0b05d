package entities

import "time"

// ReapplyCooldown после отказа новую заявку можно подать не раньше.
const ReapplyCooldown = 7 * 24 * time.Hour

type VehicleType string

const (
	VehicleBicycle    VehicleType = "bicycle"
	VehicleMotorcycle VehicleType = "motorcycle"
	VehicleCar        VehicleType = "car"
	VehicleVan        VehicleType = "van"
)

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleBicycle, VehicleMotorcycle, VehicleCar, VehicleVan:
		return true
	}
	return false
}

type Availability string

const (
	AvailabilityFullTime Availability = "full-time"
	AvailabilityPartTime Availability = "part-time"
	AvailabilityWeekends Availability = "weekends"
)

func (a Availability) String() string {
	return string(a)
}

func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityFullTime, AvailabilityPartTime, AvailabilityWeekends:
		return true
	}
	return false
}

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

type CourierApplication struct {
	ID              string
	UserID          string
	User            *UserSummary
	VehicleType     VehicleType
	VehicleNumber   string
	LicenseNumber   string
	ExperienceYears int
	Availability    Availability
	Phone           string
	Address         Address
	Status          ApplicationStatus
	AdminNotes      string
	ReviewedBy      string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CooldownRemaining сколько осталось ждать после отказа. Ноль если ждать не нужно.
func (a *CourierApplication) CooldownRemaining(now time.Time) time.Duration {
	if a.Status != ApplicationRejected || a.ReviewedAt == nil {
		return 0
	}
	remaining := ReapplyCooldown - now.Sub(*a.ReviewedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

type ApplicationFilter struct {
	UserID string
	Status *ApplicationStatus
}

type ApplicationReview struct {
	ID         string
	Status     ApplicationStatus
	AdminNotes string
	ReviewedBy string
	ReviewedAt time.Time
}
