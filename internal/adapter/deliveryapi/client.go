package deliveryapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
)

// DefaultBaseURL is used when no delivery service address is configured.
const DefaultBaseURL = "http://localhost:8080/api/v1/delivery"

// StatusError carries the HTTP status and message of a non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("delivery service returned %d: %s", e.Code, e.Message)
}

// Message wraps the plain-text responses the delivery service returns for
// some operations.
type Message struct {
	Message string `json:"message"`
}

// HTTPClient implements the driver repository over the delivery service REST
// API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPClient creates a delivery service client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse delivery service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("delivery service url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Test calls the delivery service health probe and returns its message.
func (c *HTTPClient) Test(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("test"), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("delivery service request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", StatusError{Code: resp.StatusCode, Message: strings.TrimSpace(string(body))}
	}
	return strings.TrimSpace(string(body)), nil
}

// List returns the full driver roster.
func (c *HTTPClient) List(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	if err := c.call(ctx, http.MethodGet, c.endpoint("drivers"), nil, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// Create registers a new driver. The service fills defaults for location,
// status, and availability.
func (c *HTTPClient) Create(ctx context.Context, driver model.Driver) (*model.Driver, error) {
	var created model.Driver
	if err := c.call(ctx, http.MethodPost, c.endpoint("drivers"), driver, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces a driver's details.
func (c *HTTPClient) Update(ctx context.Context, driverID string, driver model.Driver) (*model.Driver, error) {
	var updated model.Driver
	if err := c.call(ctx, http.MethodPut, c.endpoint("drivers", driverID), driver, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a driver. The service answers with a plain-text message.
func (c *HTTPClient) Delete(ctx context.Context, driverID string) error {
	return c.call(ctx, http.MethodDelete, c.endpoint("drivers", driverID), nil, nil)
}

// UpdateStatus sets a driver's availability status. The service expects the
// uppercase enumeration value.
func (c *HTTPClient) UpdateStatus(ctx context.Context, driverID string, status model.DriverStatus) (*model.Driver, error) {
	payload := map[string]string{"status": strings.ToUpper(string(status))}
	var updated model.Driver
	if err := c.call(ctx, http.MethodPut, c.endpoint("drivers", driverID, "status"), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Location returns a driver's last reported position.
func (c *HTTPClient) Location(ctx context.Context, driverID string) (*model.GeoLocation, error) {
	var loc model.GeoLocation
	if err := c.call(ctx, http.MethodGet, c.endpoint("driver", driverID, "location"), nil, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// UpdateLocation reports a new position for a driver.
func (c *HTTPClient) UpdateLocation(ctx context.Context, driverID string, location model.GeoLocation) (*model.Driver, error) {
	var updated model.Driver
	if err := c.call(ctx, http.MethodPut, c.endpoint("drivers", driverID, "location"), location, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Assign asks the delivery service to claim an order for a driver. The claim
// is conditional on the server side; losing it surfaces as ErrOrderClaimed so
// callers get a defined rejection path instead of an optimistic accept.
func (c *HTTPClient) Assign(ctx context.Context, driverID string, order model.Order) (*model.Driver, error) {
	payload := struct {
		model.Order
		DriverID string `json:"driverId"`
	}{Order: order, DriverID: driverID}

	var assigned model.Driver
	err := c.call(ctx, http.MethodPost, c.endpoint("assign"), payload, &assigned)
	if err != nil {
		var se StatusError
		if asStatusError(err, &se) && se.Code == http.StatusConflict {
			return nil, domainErrors.ErrOrderClaimed
		}
		return nil, err
	}
	return &assigned, nil
}

func asStatusError(err error, target *StatusError) bool {
	se, ok := err.(StatusError)
	if ok {
		*target = se
	}
	return ok
}

func (c *HTTPClient) endpoint(parts ...string) string {
	u := *c.baseURL
	u.Path = path.Join(append([]string{u.Path}, parts...)...)
	return u.String()
}

func (c *HTTPClient) call(ctx context.Context, method, endpoint string, payload, target any) error {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delivery service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domainErrors.ErrNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("delivery service request failed",
			slog.String("method", method),
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
		)
		return StatusError{Code: resp.StatusCode, Message: sniffMessage(resp.Header.Get("Content-Type"), body)}
	}

	if target == nil || resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil
	}

	// The service answers some endpoints with plain text; wrap it so JSON
	// targets still decode something meaningful.
	if !strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		if m, ok := target.(*Message); ok {
			m.Message = strings.TrimSpace(string(body))
			return nil
		}
		return fmt.Errorf("delivery service returned non-JSON body: %s", strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode delivery service response: %w", err)
	}
	return nil
}

func sniffMessage(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "no response body"
	}
	if strings.Contains(contentType, "application/json") {
		var m Message
		if err := json.Unmarshal(body, &m); err == nil && m.Message != "" {
			return m.Message
		}
	}
	return text
}
