package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-records/internal/handler/http/requestid"
)

func TestChain_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { order = append(order, "handler") }),
		mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		expectedStatus int
		expectedLevel  string
	}{
		{name: "list", method: http.MethodGet, target: "/doctors?page=1&limit=10", expectedStatus: http.StatusOK, expectedLevel: "INFO"},
		{name: "create", method: http.MethodPost, target: "/nurses", expectedStatus: http.StatusCreated, expectedLevel: "INFO"},
		{name: "delete", method: http.MethodDelete, target: "/files/abc", expectedStatus: http.StatusNoContent, expectedLevel: "INFO"},
		{name: "server error", method: http.MethodGet, target: "/medicines", expectedStatus: http.StatusInternalServerError, expectedLevel: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))

			handler := requestid.Middleware(Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.expectedStatus)
				_, _ = w.Write([]byte("response body"))
			})))

			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set(requestid.RequestIDHeader, "req-123")
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, tt.expectedLevel, entry["level"])
			assert.Equal(t, "req-123", entry["request_id"])
			assert.Equal(t, float64(tt.expectedStatus), entry["status"])
			assert.Equal(t, float64(len("response body")), entry["bytes"])
			assert.Equal(t, tt.method, entry["method"])
		})
	}
}

func TestRecover(t *testing.T) {
	tests := []struct {
		name        string
		panicValue  any
		shouldPanic bool
	}{
		{name: "panic with string", panicValue: "something went wrong", shouldPanic: true},
		{name: "panic with error", panicValue: fmt.Errorf("test error"), shouldPanic: true},
		{name: "panic with number", panicValue: 42, shouldPanic: true},
		{name: "no panic", shouldPanic: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.shouldPanic {
					panic(tt.panicValue)
				}
				w.WriteHeader(http.StatusOK)
			}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/doctors", nil))

			if !tt.shouldPanic {
				assert.Equal(t, http.StatusOK, rr.Code)
				return
			}
			assert.Equal(t, http.StatusInternalServerError, rr.Code)

			var body struct {
				Success bool `json:"success"`
				Error   struct {
					Code    string `json:"code"`
					Details string `json:"details"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
			assert.NotContains(t, body.Error.Details, "something went wrong")
		})
	}
}

func TestLimitRequestBody(t *testing.T) {
	tests := []struct {
		name           string
		maxBytes       int64
		bodySize       int
		expectedStatus int
	}{
		{name: "small body within limit", maxBytes: 1024, bodySize: 512, expectedStatus: http.StatusOK},
		{name: "body exactly at limit", maxBytes: 1024, bodySize: 1024, expectedStatus: http.StatusOK},
		{name: "body exceeds limit", maxBytes: 100, bodySize: 200, expectedStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := LimitRequestBody(tt.maxBytes)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, err := io.ReadAll(r.Body)
				var maxErr *http.MaxBytesError
				if errors.As(err, &maxErr) {
					w.WriteHeader(http.StatusRequestEntityTooLarge)
					return
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodPost, "/files", strings.NewReader(strings.Repeat("a", tt.bodySize)))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestInputValidation(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	handler := InputValidation()(ok)

	tests := []struct {
		name           string
		path           string
		authorization  string
		expectedStatus int
	}{
		{name: "normal request", path: "/doctors", authorization: "Bearer abc", expectedStatus: http.StatusOK},
		{name: "oversized authorization", path: "/doctors", authorization: "Bearer " + strings.Repeat("a", MaxAuthorizationHeader), expectedStatus: http.StatusBadRequest},
		{name: "oversized path", path: "/" + strings.Repeat("a", MaxPathLength), expectedStatus: http.StatusRequestURITooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
