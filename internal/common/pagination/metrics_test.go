package pagination

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestGetPageRangeBucket(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page int
		want string
	}{
		{1, "1-10"}, {10, "1-10"}, {11, "11-50"}, {50, "11-50"},
		{51, "51-100"}, {100, "51-100"}, {101, "100+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, getPageRangeBucket(tt.page), "page %d", tt.page)
	}
}

func TestRecorders(t *testing.T) {
	t.Parallel()
	const collection = "metrics_test_nurses"

	RecordRequest(collection, 200, 12)
	RecordError(collection, "database")
	UpdateTotalCount(collection, 42)

	assert.Equal(t, 1.0, testutil.ToFloat64(RequestsTotal.WithLabelValues(collection, "200", "11-50")))
	assert.Equal(t, 1.0, testutil.ToFloat64(ErrorsTotal.WithLabelValues(collection, "database")))
	assert.Equal(t, 42.0, testutil.ToFloat64(TotalCount.WithLabelValues(collection)))
}

func TestLogHelpers(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	params := Params{Page: 2, Limit: 10}

	LogRequest(logger, "req-1", "admin", "doctors", params)
	LogResponse(logger, "req-1", "doctors", params, 10, 15*time.Millisecond, 200)
	LogError(logger, "req-1", "doctors", params, errors.New("timeout"), "database")

	out := buf.String()
	assert.Contains(t, out, `"msg":"Paginated request"`)
	assert.Contains(t, out, `"user_id":"admin"`)
	assert.Contains(t, out, `"returned_count":10`)
	assert.Contains(t, out, `"error_type":"database"`)
}
