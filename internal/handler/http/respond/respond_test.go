package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-records/internal/common/apperror"
	"clinic-records/internal/common/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t *testing.T) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local) }
	t.Cleanup(func() { now = orig })
}

func TestJSON(t *testing.T) {
	tests := []struct {
		name         string
		code         int
		data         any
		expectedBody string
	}{
		{name: "map", code: http.StatusOK, data: map[string]string{"message": "success"}, expectedBody: `{"message":"success"}` + "\n"},
		{name: "nil body", code: http.StatusAccepted, data: nil, expectedBody: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.data)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestOK_EnvelopeShape(t *testing.T) {
	fixedClock(t)

	w := httptest.NewRecorder()
	OK(w, "Doctor retrieved successfully", map[string]string{"name": "dr. Sari"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"status": 200,
		"message": "Doctor retrieved successfully",
		"data": {"name": "dr. Sari"},
		"timestamp": "2025-03-14 09:26:53"
	}`, w.Body.String())
}

func TestCreated(t *testing.T) {
	fixedClock(t)

	w := httptest.NewRecorder()
	Created(w, "Nurse created successfully", map[string]string{"id": "n-1"})

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(201), body["status"])
	assert.Equal(t, true, body["success"])
	_, hasError := body["error"]
	assert.False(t, hasError, "success envelope must not carry an error field")
}

func TestPage(t *testing.T) {
	fixedClock(t)

	meta := pagination.NewMetadata(pagination.Params{Page: 2, Limit: 10}, 45)
	w := httptest.NewRecorder()
	Page(w, "Medicines retrieved successfully", []string{"b", "a", "c"}, meta)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"success": true,
		"status": 200,
		"message": "Medicines retrieved successfully",
		"data": ["b", "a", "c"],
		"pagination": {"current_page": 2, "per_page": 10, "total": 45, "total_pages": 5, "has_next": true, "has_prev": true},
		"timestamp": "2025-03-14 09:26:53"
	}`, w.Body.String())
}

func TestPaginated_NilDataRendersEmptyArray(t *testing.T) {
	resp := Paginated[string](http.StatusOK, "Files retrieved successfully", nil, pagination.NewMetadata(pagination.Params{Page: 1, Limit: 10}, 0))

	b, err := json.Marshal(resp)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, []any{}, body["data"])
}

func TestNoContent(t *testing.T) {
	w := httptest.NewRecorder()
	NoContent(w)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError(t *testing.T) {
	fixedClock(t)

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails string
	}{
		{
			name:        "bad request",
			err:         apperror.BadRequest("Validation failed", "nik: Invalid NIK format"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "BAD_REQUEST",
			wantDetails: "nik: Invalid NIK format",
		},
		{
			name:        "not found",
			err:         apperror.NotFound("Medical record not found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "NOT_FOUND",
			wantDetails: "Medical record not found",
		},
		{
			name:        "wrapped conflict",
			err:         fmt.Errorf("create: %w", apperror.Conflict("Duplicate record", "NIK already exists")),
			wantStatus:  http.StatusConflict,
			wantCode:    "CONFLICT",
			wantDetails: "NIK already exists",
		},
		{
			name:        "plain error becomes internal",
			err:         errors.New("mongodb://clinic:hunter2@db:27017 unreachable"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantDetails: "an internal error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Error(w, tt.err)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantCode, string(body.Error.Code))
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "2025-03-14 09:26:53", body.Timestamp)
			assert.NotContains(t, w.Body.String(), "hunter2")
		})
	}
}

func TestError_NilIsNoop(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestTimestamp_Parseable(t *testing.T) {
	_, err := time.ParseInLocation(TimestampFormat, Timestamp(), time.Local)
	assert.NoError(t, err)
}
