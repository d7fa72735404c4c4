package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("allows up to the configured attempts", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(3, time.Minute)

		for i := 0; i < 3; i++ {
			if !rl.allow("1.2.3.4") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if rl.allow("1.2.3.4") {
			t.Error("attempt above the limit should be blocked")
		}
	})

	t.Run("tracks keys independently", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		if !rl.allow("1.2.3.4") {
			t.Fatal("first key should be allowed")
		}
		if !rl.allow("5.6.7.8") {
			t.Error("second key should be allowed")
		}
		if rl.allow("1.2.3.4") {
			t.Error("first key should be blocked")
		}
	})

	t.Run("allows again after the window expires", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

		if !rl.allow("1.2.3.4") {
			t.Fatal("first attempt should be allowed")
		}
		if rl.allow("1.2.3.4") {
			t.Fatal("second attempt should be blocked")
		}

		time.Sleep(20 * time.Millisecond)
		if !rl.allow("1.2.3.4") {
			t.Error("attempt after the window should be allowed")
		}
	})

	t.Run("reset clears all entries", func(t *testing.T) {
		rl := NewRateLimiterWithConfig(1, time.Minute)

		rl.allow("1.2.3.4")
		if rl.allow("1.2.3.4") {
			t.Fatal("second attempt should be blocked")
		}

		rl.Reset()
		if !rl.allow("1.2.3.4") {
			t.Error("attempt after reset should be allowed")
		}
	})
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiterWithConfig(1, 10*time.Millisecond)

	rl.allow("1.2.3.4")
	rl.allow("5.6.7.8")

	time.Sleep(20 * time.Millisecond)
	rl.Cleanup()

	rl.mu.Lock()
	remaining := len(rl.entries)
	rl.mu.Unlock()
	if remaining != 0 {
		t.Errorf("expected 0 entries after cleanup, got %d", remaining)
	}
}
