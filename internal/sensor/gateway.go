// Package sensor fetches live readings from a sensor endpoint over HTTP.
package sensor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"controlling_heating/internal/models"
)

// ErrUnavailable wraps every gateway failure.
var ErrUnavailable = errors.New("sensor unavailable")

// maxBodyBytes caps the sensor response we are willing to decode.
const maxBodyBytes = 1 << 16

// Gateway fetches readings from a sensor URL.
type Gateway interface {
	Fetch(ctx context.Context, url string) (models.SensorReadings, error)
}

// HTTPGateway is a Gateway backed by an *http.Client.
type HTTPGateway struct {
	client *http.Client
}

var _ Gateway = (*HTTPGateway)(nil)

// NewHTTPGateway returns a gateway whose requests time out after timeout.
func NewHTTPGateway(timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{client: &http.Client{Timeout: timeout}}
}

// reading mirrors models.SensorReadings with a required temperature.
type reading struct {
	Temperature *float64 `json:"temperature"`
	Pressure    float64  `json:"pressure"`
	Humidity    float64  `json:"humidity"`
}

// Fetch performs a GET against url. Non-2xx responses and bodies without a
// temperature are failures.
func (g *HTTPGateway) Fetch(ctx context.Context, url string) (models.SensorReadings, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.SensorReadings{}, fmt.Errorf("%w: build request for %s: %v", ErrUnavailable, url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return models.SensorReadings{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return models.SensorReadings{}, fmt.Errorf("%w: %s returned %s", ErrUnavailable, url, resp.Status)
	}

	var r reading
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&r); err != nil {
		return models.SensorReadings{}, fmt.Errorf("%w: decode body from %s: %v", ErrUnavailable, url, err)
	}
	if r.Temperature == nil {
		return models.SensorReadings{}, fmt.Errorf("%w: %s: body has no temperature", ErrUnavailable, url)
	}

	return models.SensorReadings{
		Temperature: *r.Temperature,
		Pressure:    r.Pressure,
		Humidity:    r.Humidity,
	}, nil
}
