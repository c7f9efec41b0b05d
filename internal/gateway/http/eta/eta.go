package eta

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/gateway/metrics"
)

const (
	serviceName    = "eta-model"
	requestTimeout = 5 * time.Second
	predictPath    = "/predict"
)

var (
	ErrNotConfigured = errors.New("eta model is not configured")
	ErrBadPrediction = errors.New("eta model returned non-positive prediction")
)

// Gateway клиент ML сервиса предсказания ETA. Ретраев нет: у сервиса есть формула.
type Gateway struct {
	client  doer
	baseURL string
}

func New(client doer, baseURL string) *Gateway {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &Gateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type predictRequest struct {
	DistanceKm   float64 `json:"distance_km"`
	WeightKg     float64 `json:"weight_kg"`
	Hour         int     `json:"hour"`
	TrafficLevel int     `json:"traffic_level"`
}

type predictResponse struct {
	ETAMinutes float64 `json:"eta_minutes"`
}

func (g *Gateway) Predict(ctx context.Context, input entities.ETAInput) (minutes int, err error) {
	if g.baseURL == "" {
		return 0, ErrNotConfigured
	}

	start := time.Now()
	defer func() { metrics.Observe(serviceName, "Predict", start, err) }()

	body, err := json.Marshal(predictRequest{
		DistanceKm:   input.DistanceKm,
		WeightKg:     input.WeightKg,
		Hour:         input.Hour,
		TrafficLevel: input.TrafficLevel,
	})
	if err != nil {
		return 0, fmt.Errorf("gateway eta, marshal: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+predictPath, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("gateway eta, build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("gateway eta, predict: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("gateway eta, predict: unexpected status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("gateway eta, decode: %w", err)
	}

	minutes = int(math.Round(out.ETAMinutes))
	if minutes <= 0 {
		return 0, ErrBadPrediction
	}
	return minutes, nil
}
