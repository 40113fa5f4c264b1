package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		origins      []string
		method       string
		origin       string
		wantStatus   int
		wantAllow    string
		wantNextCall bool
		wantPreflght bool
	}{
		{name: "same origin", origins: []string{"https://clinic.example"}, method: http.MethodGet, wantStatus: http.StatusOK, wantNextCall: true},
		{name: "allowed origin", origins: []string{"https://clinic.example"}, method: http.MethodGet, origin: "https://clinic.example", wantStatus: http.StatusOK, wantAllow: "https://clinic.example", wantNextCall: true},
		{name: "allowed origin case and slash", origins: []string{"https://Clinic.example/"}, method: http.MethodGet, origin: "https://clinic.example", wantStatus: http.StatusOK, wantAllow: "https://clinic.example", wantNextCall: true},
		{name: "disallowed origin", origins: []string{"https://clinic.example"}, method: http.MethodGet, origin: "https://evil.example", wantStatus: http.StatusOK, wantNextCall: true},
		{name: "preflight", origins: []string{"https://clinic.example"}, method: http.MethodOptions, origin: "https://clinic.example", wantStatus: http.StatusNoContent, wantAllow: "https://clinic.example", wantPreflght: true},
		{name: "wildcard", origins: []string{"*"}, method: http.MethodPost, origin: "http://localhost:3000", wantStatus: http.StatusOK, wantAllow: "http://localhost:3000", wantNextCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			called := false
			h := CORS(NewCORSConfig(tt.origins, nil))(okHandler(&called))

			req := httptest.NewRequest(tt.method, "/doctors", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNextCall, called)
			assert.Equal(t, tt.wantAllow, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantPreflght {
				assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
				assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}

func TestWhitelistValidator(t *testing.T) {
	t.Parallel()
	v := NewWhitelistValidator([]string{" https://a.example/ ", "", "HTTPS://B.example"})

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, v.GetAllowedOrigins())
	assert.True(t, v.IsAllowed("https://A.example"))
	assert.True(t, v.IsAllowed("https://b.example/"))
	assert.False(t, v.IsAllowed("https://c.example"))
	assert.False(t, v.IsAllowed(""))
}
