package orderapi

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
	"strconv"
	"strings"
	"time"

	domainErrors "github.com/flooeats/tracking/internal/domain/errors"
	"github.com/flooeats/tracking/internal/domain/model"
)

// DefaultBaseURL is used when no order service address is configured.
const DefaultBaseURL = "http://localhost:8082/api/v1/order"

// StatusError carries the HTTP status and message of a non-2xx response.
type StatusError struct {
	Code    int
	Message string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("order service returned %d: %s", e.Code, e.Message)
}

// HTTPClient implements the order repository over the order service REST API.
// It performs no retry or backoff of its own; pollers simply wait for the
// next tick and one-shot callers decide for themselves.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// wireOrder tolerates both id spellings the service has been seen to use.
type wireOrder struct {
	model.Order
	LegacyID string `json:"_id"`
}

func (w wireOrder) normalize() model.Order {
	order := w.Order
	if order.ID == "" {
		order.ID = w.LegacyID
	}
	return order
}

// NewHTTPClient creates an order service client with a default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse order service url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("order service url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// GetByNumber fetches one order by its human-facing number.
func (c *HTTPClient) GetByNumber(ctx context.Context, number int64) (*model.Order, error) {
	var w wireOrder
	if err := c.getJSON(ctx, c.endpoint("number", strconv.FormatInt(number, 10)), &w); err != nil {
		return nil, err
	}
	order := w.normalize()
	return &order, nil
}

// GetByID fetches one order by internal id.
func (c *HTTPClient) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var w wireOrder
	if err := c.getJSON(ctx, c.endpoint(id), &w); err != nil {
		return nil, err
	}
	order := w.normalize()
	return &order, nil
}

// ListAll fetches every order.
func (c *HTTPClient) ListAll(ctx context.Context) ([]model.Order, error) {
	return c.list(ctx, c.endpoint("allOrders"))
}

// ListByCustomer fetches all orders of one customer.
func (c *HTTPClient) ListByCustomer(ctx context.Context, customerID string) ([]model.Order, error) {
	return c.list(ctx, c.endpoint("customer", customerID))
}

// ListByRestaurant fetches all orders of one restaurant.
func (c *HTTPClient) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Order, error) {
	return c.list(ctx, c.endpoint("restaurant", restaurantID))
}

// ListByStatus fetches all orders currently in one canonical status.
func (c *HTTPClient) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	return c.list(ctx, c.endpoint("status", string(status)))
}

// Create registers a new order from the full creation payload.
func (c *HTTPClient) Create(ctx context.Context, req model.CreateOrderRequest) (*model.Order, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var w wireOrder
	if err := c.do(httpReq, &w); err != nil {
		return nil, err
	}
	order := w.normalize()
	return &order, nil
}

// UpdateStatus moves an order to a new canonical status.
func (c *HTTPClient) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	payload, err := json.Marshal(map[string]string{"orderStatus": string(status)})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.endpoint(orderID, "status"), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, nil)
}

func (c *HTTPClient) endpoint(parts ...string) string {
	u := *c.baseURL
	u.Path = path.Join(append([]string{u.Path}, parts...)...)
	return u.String()
}

func (c *HTTPClient) list(ctx context.Context, endpoint string) ([]model.Order, error) {
	var wires []wireOrder
	if err := c.getJSON(ctx, endpoint, &wires); err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(wires))
	for _, w := range wires {
		orders = append(orders, w.normalize())
	}
	return orders, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return c.do(req, target)
}

func (c *HTTPClient) do(req *http.Request, target any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("order service request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domainErrors.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		message := responseMessage(resp.Header.Get("Content-Type"), body)
		c.logger.Error("order service request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return StatusError{Code: resp.StatusCode, Message: message}
	}

	if target == nil {
		return nil
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode order service response: %w", err)
	}
	return nil
}

// responseMessage extracts a human-readable message from an error body,
// sniffing the content type since the service mixes JSON and plain text.
func responseMessage(contentType string, body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "no response body"
	}
	if strings.Contains(contentType, "application/json") {
		var payload struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(body, &payload); err == nil {
			if payload.Message != "" {
				return payload.Message
			}
			if payload.Error != "" {
				return payload.Error
			}
		}
	}
	return text
}
