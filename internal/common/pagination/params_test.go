package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"clinic-records/internal/common/pagination"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name  string
		page  int
		limit int
		want  pagination.Params
	}{
		{name: "valid values kept", page: 3, limit: 25, want: pagination.Params{Page: 3, Limit: 25}},
		{name: "zero page becomes 1", page: 0, limit: 10, want: pagination.Params{Page: 1, Limit: 10}},
		{name: "negative page becomes 1", page: -5, limit: 10, want: pagination.Params{Page: 1, Limit: 10}},
		{name: "zero limit resets to default", page: 1, limit: 0, want: pagination.Params{Page: 1, Limit: 10}},
		{name: "negative limit resets to default", page: 1, limit: -3, want: pagination.Params{Page: 1, Limit: 10}},
		{name: "limit above max is capped", page: 2, limit: 101, want: pagination.Params{Page: 2, Limit: 100}},
		{name: "limit at max kept", page: 2, limit: 100, want: pagination.Params{Page: 2, Limit: 100}},
		{name: "limit one kept", page: 1, limit: 1, want: pagination.Params{Page: 1, Limit: 1}},
		{name: "both out of range", page: -5, limit: 500, want: pagination.Params{Page: 1, Limit: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagination.Resolve(tt.page, tt.limit, config)
			if got != tt.want {
				t.Errorf("Resolve(%d, %d) = %+v, want %+v", tt.page, tt.limit, got, tt.want)
			}
		})
	}
}

func TestResolve_Invariants(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()
	for page := -20; page <= 20; page++ {
		for limit := -20; limit <= 300; limit += 7 {
			got := pagination.Resolve(page, limit, config)
			if got.Page < 1 {
				t.Fatalf("Resolve(%d, %d).Page = %d, want >= 1", page, limit, got.Page)
			}
			if got.Limit < 1 || got.Limit > 100 {
				t.Fatalf("Resolve(%d, %d).Limit = %d, want in [1, 100]", page, limit, got.Limit)
			}
			if limit < 1 && got.Limit != 10 {
				t.Fatalf("Resolve(%d, %d).Limit = %d, want 10", page, limit, got.Limit)
			}
		}
	}
}

func TestParseQueryParams(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()

	tests := []struct {
		name  string
		query string
		want  pagination.Params
	}{
		{name: "valid parameters", query: "page=2&limit=30", want: pagination.Params{Page: 2, Limit: 30}},
		{name: "no parameters", query: "", want: pagination.Params{Page: 1, Limit: 10}},
		{name: "only page", query: "page=3", want: pagination.Params{Page: 3, Limit: 10}},
		{name: "only limit", query: "limit=50", want: pagination.Params{Page: 1, Limit: 50}},
		{name: "out of range values corrected", query: "page=-5&limit=500", want: pagination.Params{Page: 1, Limit: 100}},
		{name: "non-numeric values use defaults", query: "page=abc&limit=xyz", want: pagination.Params{Page: 1, Limit: 10}},
		{name: "float values use defaults", query: "page=1.5&limit=2.5", want: pagination.Params{Page: 1, Limit: 10}},
		{name: "zero limit uses default", query: "page=4&limit=0", want: pagination.Params{Page: 4, Limit: 10}},
		{name: "max int page kept", query: "page=9223372036854775807&limit=100", want: pagination.Params{Page: math.MaxInt64, Limit: 100}},
		{name: "page beyond int range uses default", query: "page=9223372036854775808", want: pagination.Params{Page: 1, Limit: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/doctors?"+tt.query, nil)

			got := pagination.ParseQueryParams(req, config)
			if got != tt.want {
				t.Errorf("ParseQueryParams(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestParams_Offset(t *testing.T) {
	t.Parallel()

	for limit := 1; limit <= 100; limit++ {
		p := pagination.Params{Page: 1, Limit: limit}
		if got := p.Offset(); got != 0 {
			t.Fatalf("Params{1, %d}.Offset() = %d, want 0", limit, got)
		}
	}

	p := pagination.Params{Page: 4, Limit: 20}
	if got := p.Offset(); got != 60 {
		t.Errorf("Params{4, 20}.Offset() = %d, want 60", got)
	}
}

func TestParams_OffsetNeverNegative(t *testing.T) {
	t.Parallel()

	config := pagination.DefaultConfig()
	for _, page := range []int{math.MaxInt64, math.MaxInt64 - 1, math.MaxInt / 100, math.MaxInt/100 + 2} {
		for _, limit := range []int{1, 10, 99, 100, 1000} {
			p := pagination.Resolve(page, limit, config)
			if got := p.Offset(); got < 0 {
				t.Fatalf("Resolve(%d, %d).Offset() = %d, want >= 0", page, limit, got)
			}
		}
	}

	p := pagination.Resolve(math.MaxInt64, 100, config)
	meta := pagination.NewMetadata(p, 45)
	if meta.HasNext || !meta.HasPrev || meta.TotalPages != 1 || meta.CurrentPage != math.MaxInt64 {
		t.Errorf("NewMetadata(max page) = %+v", meta)
	}
}
