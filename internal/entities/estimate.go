package entities

import "time"

type Coordinates struct {
	Lat float64
	Lng float64
}

type ETAInput struct {
	DistanceKm   float64
	WeightKg     float64
	Hour         int
	TrafficLevel int
}

type ETAPrediction struct {
	Minutes int
	Source  ETASource
}

type QuoteRequest struct {
	Pickup   Address
	Delivery Address
	Weight   float64
}

// Quote расчет доставки без сохранения заказа.
type Quote struct {
	Distance              float64
	Price                 float64
	ETAMinutes            int
	ETASource             ETASource
	EstimatedDeliveryTime time.Time
}
