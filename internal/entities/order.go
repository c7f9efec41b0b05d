package entities

import "time"

type OrderStatus string

const (
	OrderPending        OrderStatus = "Pending"
	OrderConfirmed      OrderStatus = "Confirmed"
	OrderPickedUp       OrderStatus = "Picked Up"
	OrderInTransit      OrderStatus = "In Transit"
	OrderOutForDelivery OrderStatus = "Out for Delivery"
	OrderDelivered      OrderStatus = "Delivered"
	OrderCancelled      OrderStatus = "Cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderConfirmed,
	OrderPickedUp,
	OrderInTransit,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	for _, status := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// IsTerminal заказ дальше не двигается.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

type ETASource string

const (
	ETASourceModel   ETASource = "ml"
	ETASourceFormula ETASource = "formula"
)

func (s ETASource) String() string {
	return string(s)
}

type StatusHistoryEntry struct {
	Status    OrderStatus
	Timestamp time.Time
	Note      string
	UpdatedBy string
}

type Order struct {
	ID                    string
	TrackingNumber        string
	UserID                string
	User                  *UserSummary
	CourierID             string
	Courier               *UserSummary
	SenderName            string
	SenderPhone           string
	ReceiverName          string
	ReceiverPhone         string
	PickupAddress         Address
	DeliveryAddress       Address
	PackageType           string
	Weight                float64
	Description           string
	Distance              float64
	Price                 float64
	ETAMinutes            int
	ETASource             ETASource
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	Status                OrderStatus
	StatusHistory         []StatusHistoryEntry
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// AppendStatus единственный способ сменить статус заказа в памяти.
func (o *Order) AppendStatus(entry StatusHistoryEntry) {
	o.Status = entry.Status
	o.StatusHistory = append(o.StatusHistory, entry)
	o.UpdatedAt = entry.Timestamp
}

func (o *Order) CurrentStatusConsistent() bool {
	if len(o.StatusHistory) == 0 {
		return false
	}
	return o.StatusHistory[len(o.StatusHistory)-1].Status == o.Status
}

func (o *Order) HasCourier() bool {
	return o.CourierID != ""
}

type OrderModify struct {
	ID                    *string
	SenderName            *string
	SenderPhone           *string
	ReceiverName          *string
	ReceiverPhone         *string
	PickupAddress         *Address
	DeliveryAddress       *Address
	PackageType           *string
	Weight                *float64
	Description           *string
	Distance              *float64
	Price                 *float64
	ETAMinutes            *int
	ETASource             *ETASource
	EstimatedDeliveryTime *time.Time
}

func (m OrderModify) IsEmpty() bool {
	return m.SenderName == nil &&
		m.SenderPhone == nil &&
		m.ReceiverName == nil &&
		m.ReceiverPhone == nil &&
		m.PickupAddress == nil &&
		m.DeliveryAddress == nil &&
		m.PackageType == nil &&
		m.Weight == nil &&
		m.Description == nil
}

// StatusUpdate запись нового статуса вместе с историей.
// CourierID == "" при непустом указателе снимает курьера.
type StatusUpdate struct {
	OrderID            string
	Entry              StatusHistoryEntry
	CourierID          *string
	ActualDeliveryTime *time.Time
}

type OrderFilter struct {
	UserID    string
	CourierID string
	Status    *OrderStatus
}

type OrderStats struct {
	ByStatus         map[OrderStatus]int64
	Total            int64
	DeliveredRevenue float64
}

// Tracking публичное представление заказа по трек-номеру, без контактов.
type Tracking struct {
	TrackingNumber        string
	Status                OrderStatus
	StatusHistory         []StatusHistoryEntry
	PickupCity            string
	DeliveryCity          string
	EstimatedDeliveryTime *time.Time
	ActualDeliveryTime    *time.Time
	CreatedAt             time.Time
}

type OrderStatusEvent struct {
	OrderID        string
	TrackingNumber string
	UserID         string
	CourierID      string
	Status         OrderStatus
	Note           string
	ChangedBy      string
	ChangedAt      time.Time
}
