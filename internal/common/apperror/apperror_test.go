package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"clinic-records/internal/common/apperror"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        *apperror.Error
		wantStatus int
		wantCode   apperror.Code
	}{
		{name: "bad request", err: apperror.BadRequest("Validation failed", "nik: Invalid NIK format"), wantStatus: http.StatusBadRequest, wantCode: apperror.CodeBadRequest},
		{name: "not found", err: apperror.NotFound("Doctor not found"), wantStatus: http.StatusNotFound, wantCode: apperror.CodeNotFound},
		{name: "conflict", err: apperror.Conflict("Duplicate record", "NIK already exists"), wantStatus: http.StatusConflict, wantCode: apperror.CodeConflict},
		{name: "internal", err: apperror.Internal("Failed to create doctor", errors.New("connection refused")), wantStatus: http.StatusInternalServerError, wantCode: apperror.CodeInternal},
		{name: "unauthorized", err: apperror.Unauthorized("missing bearer token"), wantStatus: http.StatusUnauthorized, wantCode: apperror.CodeUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.NotEmpty(t, tt.err.Details)
		})
	}
}

func TestInternal_HidesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp 10.0.0.1:27017: connection refused")
	err := apperror.Internal("Failed to retrieve nurses", cause)

	assert.NotContains(t, err.Details, "10.0.0.1")
	assert.ErrorIs(t, err, cause)
}

func TestFrom(t *testing.T) {
	t.Parallel()

	notFound := apperror.NotFound("Nurse not found")
	wrapped := fmt.Errorf("handler: %w", notFound)

	assert.Same(t, notFound, apperror.From(wrapped))

	plain := apperror.From(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, plain.Status)
	assert.Equal(t, apperror.CodeInternal, plain.Code)
}

func TestIsStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, apperror.IsStatus(apperror.Conflict("Duplicate", "x"), http.StatusConflict))
	assert.False(t, apperror.IsStatus(apperror.Conflict("Duplicate", "x"), http.StatusNotFound))
	assert.False(t, apperror.IsStatus(errors.New("plain"), http.StatusConflict))
}
