package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-records/internal/config"
	hhttp "clinic-records/internal/handler/http"
	"clinic-records/internal/handler/http/auth"
	"clinic-records/internal/infra/storage"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{
		Port:           8000,
		LogLevel:       "error",
		Database:       config.DatabaseConfig{Driver: config.DriverMemory},
		JWTSecret:      testSecret,
		Storage:        config.StorageConfig{Bucket: "atm-sehat"},
		Pagination:     config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100},
		CORS:           config.CORSConfig{AllowedOrigins: []string{"*"}},
		UploadMaxBytes: 262144,
	}

	be, err := openBackend(context.Background(), cfg.Database, false)
	require.NoError(t, err)
	store := storage.NewMemoryStore(cfg.Storage.Bucket)

	return newHandler(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), newServices(be.repos, store, cfg.UploadMaxBytes), be.database, hhttp.PingCheck(store.Ping))
}

func bearer(t *testing.T) string {
	t.Helper()
	token, err := auth.NewToken([]byte(testSecret), "admin", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_PublicRoutes(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/health", "/ready", "/live", "/metrics"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), path)
	}
}

func TestHandler_ProtectedRoutesRequireToken(t *testing.T) {
	h := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/doctors", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
}

func TestHandler_CreateAndList(t *testing.T) {
	h := newTestHandler(t)
	token := bearer(t)

	req := httptest.NewRequest(http.MethodPost, "/insurances",
		strings.NewReader(`{"name":"BPJS Kesehatan","type":"public","code":"BPJS"}`))
	req.Header.Set("Authorization", token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/insurances?page=1&limit=5", nil)
	req.Header.Set("Authorization", token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Message    string `json:"message"`
		Data       []map[string]any
		Pagination struct {
			Total   int `json:"total"`
			PerPage int `json:"per_page"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, "Insurances retrieved successfully", page.Message)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 1, page.Pagination.Total)
	assert.Equal(t, 5, page.Pagination.PerPage)
}

func TestHandler_HugePageReturnsEmptyPage(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/doctors?page=9223372036854775807&limit=100", nil)
	req.Header.Set("Authorization", bearer(t))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var page struct {
		Data       []map[string]any `json:"data"`
		Pagination struct {
			CurrentPage int  `json:"current_page"`
			PerPage     int  `json:"per_page"`
			HasNext     bool `json:"has_next"`
			HasPrev     bool `json:"has_prev"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Data)
	assert.Equal(t, math.MaxInt64, page.Pagination.CurrentPage)
	assert.Equal(t, 100, page.Pagination.PerPage)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestHandler_CORSPreflight(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/doctors", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestOpenBackend_UnknownDriver(t *testing.T) {
	_, err := openBackend(context.Background(), config.DatabaseConfig{Driver: "sqlite"}, false)
	assert.ErrorContains(t, err, "unknown DB_DRIVER")
}
