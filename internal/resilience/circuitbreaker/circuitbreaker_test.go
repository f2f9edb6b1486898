package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func TestNew(t *testing.T) {
	cb := New(DefaultConfig("articles"))

	if cb.Name() != "articles" {
		t.Errorf("Name() = %q, want %q", cb.Name(), "articles")
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("initial state = %s, want closed", cb.State())
	}
	if cb.IsOpen() {
		t.Error("new breaker must not be open")
	}
}

func TestCircuitBreaker_Execute(t *testing.T) {
	cb := New(DefaultConfig("test"))

	got, err := cb.Execute(func() (interface{}, error) { return 42, nil })
	if err != nil {
		t.Fatalf("Execute err=%v", err)
	}
	if got.(int) != 42 {
		t.Errorf("Execute result = %v, want 42", got)
	}

	boom := errors.New("boom")
	if _, err := cb.Execute(func() (interface{}, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Errorf("Execute err = %v, want %v", err, boom)
	}
}

func TestCircuitBreaker_TripsAfterMinRequests(t *testing.T) {
	cb := New(Config{
		Name:             "trip",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      3,
	})

	fail := func() (interface{}, error) { return nil, errors.New("down") }
	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(fail)
		if cb.IsOpen() {
			t.Fatalf("breaker opened after %d failures, want >= 3", i+1)
		}
	}
	_, _ = cb.Execute(fail)
	if !cb.IsOpen() {
		t.Fatal("breaker should be open after 3 failures")
	}

	called := false
	_, err := cb.Execute(func() (interface{}, error) { called = true; return nil, nil })
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("err = %v, want ErrOpenState", err)
	}
	if called {
		t.Error("fn must not run while open")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("x")
	if cfg.Name != "x" || cfg.MaxRequests != 3 || cfg.MinRequests != 5 {
		t.Errorf("unexpected default config: %+v", cfg)
	}
}
