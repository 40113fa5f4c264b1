package circuitbreaker

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          20 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	if cb == nil {
		t.Fatal("expected circuit breaker, got nil")
	}
	if cb.Name() != "test-circuit" {
		t.Errorf("expected name='test-circuit', got %q", cb.Name())
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state=Closed, got %v", cb.State())
	}
}

func TestRun(t *testing.T) {
	cb := New(testConfig())

	got, err := Run(cb, func() (string, error) { return "files/a.pdf", nil })
	if err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if got != "files/a.pdf" {
		t.Errorf("Run = %q, want files/a.pdf", got)
	}

	testErr := errors.New("endpoint unreachable")
	got, err = Run(cb, func() (string, error) { return "ignored", testErr })
	if !errors.Is(err, testErr) {
		t.Errorf("expected %v, got %v", testErr, err)
	}
	if got != "" {
		t.Errorf("expected zero value on error, got %q", got)
	}
}

func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = time.Second
	cb := New(cfg)

	// 4 failures, 1 success, 1 failure: 5 of 6 failed
	testErr := errors.New("test error")
	for i := 0; i < 4; i++ {
		if _, err := cb.Execute(func() (interface{}, error) { return nil, testErr }); err != testErr {
			t.Errorf("request %d: expected test error, got %v", i, err)
		}
	}
	if _, err := cb.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Errorf("success request failed: %v", err)
	}
	if _, err := cb.Execute(func() (interface{}, error) { return nil, testErr }); err != testErr {
		t.Errorf("expected test error, got %v", err)
	}

	if !cb.IsOpen() {
		t.Fatalf("expected state=Open, got %v", cb.State())
	}

	_, err := cb.Execute(func() (interface{}, error) {
		t.Error("function should not be called when circuit is open")
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if !IsRejected(err) {
		t.Error("expected IsRejected()=true for open-state error")
	}
}

func TestCircuitBreaker_HalfOpen(t *testing.T) {
	cfg := testConfig()
	cfg.MaxRequests = 2
	cfg.Timeout = 100 * time.Millisecond
	cb := New(cfg)

	testErr := errors.New("test error")
	for i := 0; i < 6; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, testErr })
	}
	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("circuit should be open, got %v", cb.State())
	}

	time.Sleep(150 * time.Millisecond)

	if _, err := cb.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Errorf("expected success in half-open state, got %v", err)
	}
	if cb.State() == gobreaker.StateOpen {
		t.Errorf("circuit should not be open after successful half-open request, got %v", cb.State())
	}
}

func TestCircuitBreaker_MinRequests(t *testing.T) {
	cfg := testConfig()
	cfg.FailureThreshold = 0.5
	cfg.MinRequests = 10
	cb := New(cfg)

	testErr := errors.New("test error")
	for i := 0; i < 4; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, testErr })
	}

	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected state=Closed (below MinRequests), got %v", cb.State())
	}
}

func TestConfigs(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want Config
	}{
		{
			name: "default",
			cfg:  DefaultConfig("test"),
			want: Config{Name: "test", MaxRequests: 3, Interval: 30 * time.Second, Timeout: 60 * time.Second, FailureThreshold: 0.6, MinRequests: 5},
		},
		{
			name: "object storage",
			cfg:  ObjectStorageConfig(),
			want: Config{Name: "object-storage", MaxRequests: 2, Interval: time.Minute, Timeout: 30 * time.Second, FailureThreshold: 1.0, MinRequests: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.cfg != tt.want {
				t.Errorf("config = %+v, want %+v", tt.cfg, tt.want)
			}
		})
	}
}

func TestIsRejected(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{err: gobreaker.ErrOpenState, want: true},
		{err: fmt.Errorf("put: %w", gobreaker.ErrTooManyRequests), want: true},
		{err: errors.New("timeout"), want: false},
		{err: nil, want: false},
	}

	for _, tt := range tests {
		if got := IsRejected(tt.err); got != tt.want {
			t.Errorf("IsRejected(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
