package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterBurstThenThrottle(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 2}

	for i := 0; i < 2; i++ {
		if allowed, _ := limiter.Allow("guest:a", rule); !allowed {
			t.Fatalf("request %d should be within burst", i+1)
		}
	}
	allowed, retryAfter := limiter.Allow("guest:a", rule)
	if allowed {
		t.Fatal("expected throttle after burst")
	}
	if retryAfter <= 0 {
		t.Fatalf("retryAfter = %v", retryAfter)
	}

	// Tokens refill with time.
	current = current.Add(2 * time.Second)
	if allowed, _ := limiter.Allow("guest:a", rule); !allowed {
		t.Fatal("expected refill after waiting")
	}
}

func TestRateLimiterKeysAreIndependent(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(func() time.Time { return current })
	rule := RateLimitRule{Rate: 1, Burst: 1}

	if allowed, _ := limiter.Allow("guest:a", rule); !allowed {
		t.Fatal("first key should pass")
	}
	if allowed, _ := limiter.Allow("guest:a", rule); allowed {
		t.Fatal("first key should now be throttled")
	}
	if allowed, _ := limiter.Allow("guest:b", rule); !allowed {
		t.Fatal("second key should be unaffected")
	}
}
