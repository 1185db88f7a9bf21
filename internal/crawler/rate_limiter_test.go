package crawler

import (
	"context"
	"testing"
	"time"
)

func TestRateLimiterEnforcesDelay(t *testing.T) {
	limiter := NewRateLimiter(50 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := limiter.Wait(ctx, "http://example.com/page"); err != nil {
			t.Fatalf("Wait failed: %v", err)
		}
	}
	elapsed := time.Since(start)

	// First request is immediate, the next two wait one interval each
	if elapsed < 100*time.Millisecond {
		t.Errorf("Three requests took %v, want at least 100ms", elapsed)
	}
}

func TestRateLimiterPerHost(t *testing.T) {
	limiter := NewRateLimiter(200 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	if err := limiter.Wait(ctx, "http://a.example.com/"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "http://b.example.com/"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	elapsed := time.Since(start)

	// Different hosts do not block each other
	if elapsed > 100*time.Millisecond {
		t.Errorf("Requests to distinct hosts took %v, want no delay", elapsed)
	}
}

func TestRateLimiterHostIgnoresPort(t *testing.T) {
	limiter := NewRateLimiter(100 * time.Millisecond)
	ctx := context.Background()

	start := time.Now()
	if err := limiter.Wait(ctx, "http://example.com/"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if err := limiter.Wait(ctx, "http://example.com:8080/"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	elapsed := time.Since(start)

	if elapsed < 100*time.Millisecond {
		t.Errorf("Same host on two ports took %v, want at least 100ms", elapsed)
	}
}

func TestRateLimiterCancelledContext(t *testing.T) {
	limiter := NewRateLimiter(time.Second)

	// Consume the first token
	if err := limiter.Wait(context.Background(), "http://example.com/"); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := limiter.Wait(ctx, "http://example.com/"); err == nil {
		t.Error("Expected error from cancelled context")
	}
}
