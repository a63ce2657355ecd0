package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      2,
		Interval:         10 * time.Second,
		Timeout:          100 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

func fail(cb *CircuitBreaker, err error) error {
	_, got := Do(cb, func() (struct{}, error) { return struct{}{}, err })
	return got
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state=Closed, got %v", cb.State())
	}
}

func TestDo_Success(t *testing.T) {
	cb := New(testConfig())

	got, err := Do(cb, func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestDo_FailureReturnsZeroValue(t *testing.T) {
	cb := New(testConfig())
	testErr := errors.New("ephemeris file missing")

	got, err := Do(cb, func() (*string, error) { return nil, testErr })
	if !errors.Is(err, testErr) {
		t.Errorf("expected %v, got %v", testErr, err)
	}
	if got != nil {
		t.Errorf("expected nil result, got %v", got)
	}
}

func TestCircuitBreaker_TripsOpen(t *testing.T) {
	cb := New(testConfig())
	testErr := errors.New("test error")

	for i := 0; i < 5; i++ {
		if err := fail(cb, testErr); err != testErr {
			t.Errorf("request %d: expected test error, got %v", i, err)
		}
	}

	if !cb.IsOpen() {
		t.Fatalf("expected state=Open after exceeding failure threshold, got %v", cb.State())
	}

	_, err := Do(cb, func() (string, error) {
		t.Error("function should not be called when circuit is open")
		return "", nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if !IsRejected(err) {
		t.Error("expected IsRejected()=true for open-state error")
	}
}

func TestCircuitBreaker_HalfOpenRecovers(t *testing.T) {
	cb := New(testConfig())
	testErr := errors.New("test error")
	for i := 0; i < 6; i++ {
		_ = fail(cb, testErr)
	}
	if cb.State() != gobreaker.StateOpen {
		t.Fatalf("circuit should be open, got %v", cb.State())
	}

	time.Sleep(150 * time.Millisecond)

	if err := fail(cb, nil); err != nil {
		t.Errorf("expected success in half-open state, got %v", err)
	}
	if cb.State() == gobreaker.StateOpen {
		t.Errorf("circuit should not be open after successful half-open request")
	}
}

func TestCircuitBreaker_IgnoredErrorsDoNotTrip(t *testing.T) {
	errBadInput := errors.New("bad input")
	cfg := testConfig()
	cfg.Ignore = func(err error) bool { return errors.Is(err, errBadInput) }
	cb := New(cfg)

	for i := 0; i < 10; i++ {
		if err := fail(cb, errBadInput); !errors.Is(err, errBadInput) {
			t.Errorf("request %d: expected caller error to pass through, got %v", i, err)
		}
	}

	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected state=Closed, got %v", cb.State())
	}
}

func TestCircuitBreaker_MinRequests(t *testing.T) {
	cfg := testConfig()
	cfg.MinRequests = 10
	cb := New(cfg)

	testErr := errors.New("test error")
	for i := 0; i < 4; i++ {
		_ = fail(cb, testErr)
	}

	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected state=Closed (below MinRequests), got %v", cb.State())
	}
}

func TestIsRejected(t *testing.T) {
	if IsRejected(errors.New("other")) {
		t.Error("plain errors are not rejections")
	}
	if !IsRejected(gobreaker.ErrTooManyRequests) {
		t.Error("ErrTooManyRequests is a rejection")
	}
}

func TestCircuitBreaker_OnStateChange(t *testing.T) {
	var transitions []gobreaker.State
	cfg := testConfig()
	cfg.OnStateChange = func(_, to gobreaker.State) { transitions = append(transitions, to) }
	cb := New(cfg)

	for i := 0; i < 5; i++ {
		_ = fail(cb, errors.New("boom"))
	}

	if len(transitions) != 1 || transitions[0] != gobreaker.StateOpen {
		t.Errorf("expected a single transition to open, got %v", transitions)
	}
}

func TestConfigs(t *testing.T) {
	eph := EphemerisConfig()
	if eph.Name != "ephemeris" {
		t.Errorf("expected Name='ephemeris', got %q", eph.Name)
	}
	if eph.MaxRequests != 1 || eph.MinRequests != 3 {
		t.Errorf("unexpected ephemeris config: %+v", eph)
	}
	if eph.FailureThreshold != 0.5 || eph.Timeout != 30*time.Second {
		t.Errorf("unexpected ephemeris thresholds: %+v", eph)
	}
}
