package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flooeats/tracking/internal/domain/model"
	"github.com/flooeats/tracking/internal/server/http/handlers"
	testhelpers "github.com/flooeats/tracking/internal/test"
)

var _ handlers.TrackingFacade = testhelpers.TrackingFacadeStub{}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func serve(t *testing.T, engine http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterRoutes(t *testing.T) {
	engine := Setup(testhelpers.TrackingFacadeStub{
		TrackOrderFn: func(_ context.Context, number int64) (*model.TrackedOrder, error) {
			return &model.TrackedOrder{OrderNumber: number, Stage: model.StagePreparing}, nil
		},
		DriverOfferFn: func(string) *model.Order {
			return &model.Order{OrderNumber: 42}
		},
	}, testLogger())

	cases := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodGet, "/api/orders", "", http.StatusOK},
		{http.MethodGet, "/api/orders/number/42", "", http.StatusOK},
		{http.MethodGet, "/api/customers/c-7/orders", "", http.StatusOK},
		{http.MethodGet, "/api/orders/number/abc", "", http.StatusBadRequest},
		{http.MethodPatch, "/api/orders/42/status", `{"restaurantId":"1","orderStatus":"PREPARING"}`, http.StatusOK},
		{http.MethodGet, "/api/restaurants/1/orders", "", http.StatusOK},
		{http.MethodPost, "/api/restaurants/1/orders/refresh", "", http.StatusOK},
		{http.MethodGet, "/api/drivers", "", http.StatusOK},
		{http.MethodGet, "/api/drivers/d-1/shift", "", http.StatusOK},
		{http.MethodPost, "/api/drivers/d-1/online", "", http.StatusOK},
		{http.MethodGet, "/api/drivers/d-1/offer", "", http.StatusOK},
		{http.MethodPost, "/api/drivers/d-1/offer/accept", "", http.StatusOK},
		{http.MethodGet, "/api/unknown", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		var body io.Reader
		if tc.body != "" {
			body = bytes.NewBufferString(tc.body)
		}
		resp := serve(t, engine, tc.method, tc.path, body)
		if resp.Code != tc.code {
			t.Errorf("%s %s: expected %d, got %d", tc.method, tc.path, tc.code, resp.Code)
		}
	}
}

func TestRouterCORSHeaders(t *testing.T) {
	engine := Setup(testhelpers.TrackingFacadeStub{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestRouterGzipResponse(t *testing.T) {
	engine := Setup(testhelpers.TrackingFacadeStub{
		TrackOrderFn: func(_ context.Context, number int64) (*model.TrackedOrder, error) {
			return &model.TrackedOrder{OrderNumber: number, Stage: model.StageReady}, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/number/42", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if enc := w.Header().Get("Content-Encoding"); enc != "gzip" {
		t.Fatalf("Content-Encoding = %q, want gzip", enc)
	}

	reader, err := gzip.NewReader(w.Body)
	if err != nil {
		t.Fatalf("gzip reader: %v", err)
	}
	defer reader.Close()

	var tracked model.TrackedOrder
	if err := json.NewDecoder(reader).Decode(&tracked); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if tracked.OrderNumber != 42 {
		t.Fatalf("unexpected order number %d", tracked.OrderNumber)
	}
}
