package estimate

import (
	"math"

	"courier-network/internal/entities"
)

const (
	earthRadiusKm   = 6371.0
	roadFactor      = 1.3
	averageSpeedKmh = 30.0

	basePrice      = 50.0
	pricePerKm     = 0.9
	pricePerKg     = 12.0
	rushMultiplier = 1.25
	minETAMinutes  = 15
)

var trafficMultipliers = map[int]float64{
	1: 0.8,
	2: 1.0,
	3: 1.3,
	4: 1.6,
}

// Haversine расстояние по прямой в километрах.
func Haversine(from, to entities.Coordinates) float64 {
	lat1 := toRadians(from.Lat)
	lat2 := toRadians(to.Lat)
	dLat := toRadians(to.Lat - from.Lat)
	dLng := toRadians(to.Lng - from.Lng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ApproxRoadDistance прямая с поправкой на извилистость дорог.
func ApproxRoadDistance(from, to entities.Coordinates) float64 {
	return round2(Haversine(from, to) * roadFactor)
}

func CalculatePrice(weight, distance float64) float64 {
	return math.Round(basePrice + distance*pricePerKm + weight*pricePerKg)
}

func IsRushHour(hour int) bool {
	return (hour >= 8 && hour <= 10) || (hour >= 17 && hour <= 20)
}

// TrafficLevelAt оценка загруженности дорог по часу суток, 1..3.
func TrafficLevelAt(hour int) int {
	switch {
	case IsRushHour(hour):
		return 3
	case hour >= 22 || hour < 6:
		return 1
	default:
		return 2
	}
}

// FallbackETA время доставки в минутах, когда модель недоступна.
func FallbackETA(input entities.ETAInput) int {
	minutes := input.DistanceKm / averageSpeedKmh * 60

	multiplier, ok := trafficMultipliers[input.TrafficLevel]
	if !ok {
		multiplier = 1.0
	}
	minutes *= multiplier

	if IsRushHour(input.Hour) {
		minutes *= rushMultiplier
	}

	switch {
	case input.WeightKg > 10:
		minutes += 15
	case input.WeightKg > 5:
		minutes += 5
	}

	return max(int(math.Round(minutes)), minETAMinutes)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
