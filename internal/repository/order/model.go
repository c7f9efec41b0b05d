package order

import (
	"time"

	"courier-network/internal/repository"
)

type OrderDB struct {
	ID                    string
	TrackingNumber        string
	UserID                string
	CourierID             string
	SenderName            string
	SenderPhone           string
	ReceiverName          string
	ReceiverPhone         string
	PickupAddress         repository.AddressDB
	DeliveryAddress       repository.AddressDB
	PackageType           string
	Weight                float64
	Description           string
	Distance              float64
	Price                 float64
	ETAMinutes            int
	ETASource             string
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Status                string
	CreatedAt             time.Time
	UpdatedAt             time.Time

	UserName     string
	UserEmail    string
	UserPhone    string
	CourierName  string
	CourierEmail string
	CourierPhone string

	History []StatusHistoryDB
}

type StatusHistoryDB struct {
	OrderID   string
	Status    string
	Note      string
	UpdatedBy string
	CreatedAt time.Time
}

type OrderModifyDB struct {
	ID                    *string
	SenderName            *string
	SenderPhone           *string
	ReceiverName          *string
	ReceiverPhone         *string
	PickupAddress         *repository.AddressDB
	DeliveryAddress       *repository.AddressDB
	PackageType           *string
	Weight                *float64
	Description           *string
	Distance              *float64
	Price                 *float64
	ETAMinutes            *int
	ETASource             *string
	EstimatedDeliveryTime *time.Time
}
