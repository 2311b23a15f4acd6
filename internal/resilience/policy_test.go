package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastPolicy(attempts int) Policy {
	return Policy{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
		Multiplier:     2.0,
	}
}

func TestCall_FirstAttempt(t *testing.T) {
	var calls int
	got, err := Call(context.Background(), DefaultPolicy(), func(_ context.Context) (string, error) {
		calls++
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" {
		t.Errorf("expected %q, got %q", "ok", got)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestCall_RecoversAfterTransient(t *testing.T) {
	var calls int
	got, err := Call(context.Background(), fastPolicy(3), func(_ context.Context) (int, error) {
		calls++
		if calls < 3 {
			return 0, NewTransientError(errors.New("unavailable"), 503)
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 42 || calls != 3 {
		t.Errorf("expected 42 after 3 calls, got %d after %d", got, calls)
	}
}

func TestCall_ExhaustsAttempts(t *testing.T) {
	var calls int
	_, err := Call(context.Background(), fastPolicy(3), func(_ context.Context) (int, error) {
		calls++
		return 0, NewTransientError(errors.New("always down"), 500)
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestCall_PermanentErrorNotRetried(t *testing.T) {
	var calls int
	perm := errors.New("401 unauthorized")
	_, err := Call(context.Background(), fastPolicy(5), func(_ context.Context) (int, error) {
		calls++
		return 0, perm
	})
	if !errors.Is(err, perm) {
		t.Fatalf("expected permanent error back, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestCall_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := Policy{MaxAttempts: 10, InitialBackoff: 20 * time.Millisecond}

	var calls int
	_, err := Call(ctx, p, func(_ context.Context) (int, error) {
		calls++
		if calls == 2 {
			cancel()
		}
		return 0, NewTransientError(errors.New("fail"), 500)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 2 {
		t.Errorf("expected 2 calls before cancel took effect, got %d", calls)
	}
}

func TestCall_CustomShouldRetryAndOnRetry(t *testing.T) {
	p := fastPolicy(3)
	p.ShouldRetry = func(err error) bool { return err.Error() == "again" }

	var retries []int
	p.OnRetry = func(attempt int, _ error) { retries = append(retries, attempt) }

	var calls int
	_, err := Call(context.Background(), p, func(_ context.Context) (int, error) {
		calls++
		return 0, errors.New("again")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
	if len(retries) != 2 || retries[0] != 1 || retries[1] != 2 {
		t.Errorf("expected OnRetry for attempts [1 2], got %v", retries)
	}
}

func TestDo(t *testing.T) {
	var calls int
	err := Do(context.Background(), fastPolicy(2), func(_ context.Context) error {
		calls++
		if calls == 1 {
			return NewTransientError(errors.New("blip"), 502)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestNewPolicy(t *testing.T) {
	p := NewPolicy(5, 100)
	if p.MaxAttempts != 5 {
		t.Errorf("expected 5 attempts, got %d", p.MaxAttempts)
	}
	if p.InitialBackoff != 100*time.Millisecond {
		t.Errorf("expected 100ms backoff, got %v", p.InitialBackoff)
	}

	d := NewPolicy(0, -1)
	if d.MaxAttempts != 3 || d.InitialBackoff != 500*time.Millisecond {
		t.Errorf("expected defaults, got %+v", d)
	}
}

func TestPolicy_DelayCapped(t *testing.T) {
	p := Policy{
		MaxAttempts:    10,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
		Multiplier:     2.0,
	}.normalized()

	if got := p.delay(0); got != 100*time.Millisecond {
		t.Errorf("attempt 0: expected 100ms, got %v", got)
	}
	if got := p.delay(2); got != 400*time.Millisecond {
		t.Errorf("attempt 2: expected 400ms, got %v", got)
	}
	if got := p.delay(8); got != time.Second {
		t.Errorf("attempt 8: expected cap of 1s, got %v", got)
	}
}

func TestPolicy_DelayJitterBounds(t *testing.T) {
	p := Policy{
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     time.Second,
		Multiplier:     2.0,
		JitterFraction: 0.5,
	}.normalized()

	for i := 0; i < 50; i++ {
		d := p.delay(0)
		if d < 50*time.Millisecond || d > 150*time.Millisecond {
			t.Fatalf("delay %v outside ±50%% of 100ms", d)
		}
	}
}
