package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/gateway/metrics"
)

const (
	serviceName    = "openrouteservice"
	requestTimeout = 10 * time.Second
	directionsPath = "/v2/directions/driving-car"
	geocodePath    = "/geocode/search"
	maxErrorBody   = 512
)

var (
	ErrNotConfigured = errors.New("routing provider is not configured")
	ErrNoRoute       = errors.New("routing provider returned no route")
	ErrNoMatch       = errors.New("geocoder returned no match")
)

// Gateway клиент OpenRouteService. Без ключа все методы отвечают ErrNotConfigured.
type Gateway struct {
	client  doer
	baseURL string
	apiKey  string
}

func New(client doer, baseURL, apiKey string) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type directionsRequest struct {
	Coordinates [][2]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"` // метры
		} `json:"summary"`
	} `json:"routes"`
}

// RoadDistance расстояние по дорогам в километрах.
func (g *Gateway) RoadDistance(ctx context.Context, from, to entities.Coordinates) (km float64, err error) {
	if g.apiKey == "" {
		return 0, ErrNotConfigured
	}

	start := time.Now()
	defer func() { metrics.Observe(serviceName, "RoadDistance", start, err) }()

	// ORS ожидает [lng, lat]
	body, err := json.Marshal(directionsRequest{
		Coordinates: [][2]float64{{from.Lng, from.Lat}, {to.Lng, to.Lat}},
	})
	if err != nil {
		return 0, fmt.Errorf("gateway routing, marshal directions: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+directionsPath, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("gateway routing, build directions request: %w", err)
	}
	req.Header.Set("Authorization", g.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	var resp directionsResponse
	if err := g.do(req, &resp); err != nil {
		return 0, fmt.Errorf("gateway routing, directions: %w", err)
	}
	if len(resp.Routes) == 0 || resp.Routes[0].Summary.Distance <= 0 {
		return 0, ErrNoRoute
	}

	return resp.Routes[0].Summary.Distance / 1000, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"` // [lng, lat]
		} `json:"geometry"`
	} `json:"features"`
}

func (g *Gateway) Geocode(ctx context.Context, address string) (coords *entities.Coordinates, err error) {
	if g.apiKey == "" {
		return nil, ErrNotConfigured
	}

	start := time.Now()
	defer func() { metrics.Observe(serviceName, "Geocode", start, err) }()

	query := url.Values{}
	query.Set("text", address)
	query.Set("size", "1")

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+geocodePath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("gateway routing, build geocode request: %w", err)
	}
	req.Header.Set("Authorization", g.apiKey)
	req.Header.Set("Accept", "application/json")

	var resp geocodeResponse
	if err := g.do(req, &resp); err != nil {
		return nil, fmt.Errorf("gateway routing, geocode: %w", err)
	}
	if len(resp.Features) == 0 || len(resp.Features[0].Geometry.Coordinates) < 2 {
		return nil, ErrNoMatch
	}

	point := resp.Features[0].Geometry.Coordinates
	return &entities.Coordinates{Lat: point[1], Lng: point[0]}, nil
}

func (g *Gateway) do(req *http.Request, out any) error {
	resp, err := g.client.Do(req)
	if err != nil {
		// в query адрес клиента, в лог он попасть не должен
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = g.baseURL + req.URL.Path
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
