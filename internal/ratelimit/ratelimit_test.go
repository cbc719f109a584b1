package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_AllowConsumesTokens(t *testing.T) {
	l := New(2, 0.001)

	if !l.Allow() {
		t.Fatal("first request should be allowed")
	}
	if !l.Allow() {
		t.Fatal("second request should be allowed")
	}
	if l.Allow() {
		t.Fatal("third request should be rejected")
	}
}

func TestLimiter_Refill(t *testing.T) {
	l := New(1, 100) // 100 tokens/sec, refills fast enough to observe

	if !l.Allow() {
		t.Fatal("first request should be allowed")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Allow() {
		t.Fatal("request after refill should be allowed")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, 0.001)
	l.Allow()

	if l.Allow() {
		t.Fatal("bucket should be empty")
	}
	l.Reset()
	if !l.Allow() {
		t.Fatal("bucket should be full after reset")
	}
}

func TestLimiter_IsFull(t *testing.T) {
	l := New(1, 0.001)
	if !l.IsFull() {
		t.Error("new bucket should be full")
	}
	l.Allow()
	if l.IsFull() {
		t.Error("drained bucket should not be full")
	}
}

func TestPerKeyLimiter_IndependentKeys(t *testing.T) {
	pkl := NewPerKeyLimiter(PerKeyConfig{
		MaxTokens:     1,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	if !pkl.Allow("a") {
		t.Fatal("first request for key a should be allowed")
	}
	if pkl.Allow("a") {
		t.Fatal("second request for key a should be rejected")
	}
	if !pkl.Allow("b") {
		t.Fatal("key b should have its own bucket")
	}
	if pkl.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, want 2", pkl.ActiveCount())
	}
}

func TestPerKeyLimiter_EmptyKeyNeverLimited(t *testing.T) {
	pkl := NewPerKeyLimiter(PerKeyConfig{
		MaxTokens:     1,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	for i := 0; i < 10; i++ {
		if !pkl.Allow("") {
			t.Fatal("empty key must never be limited")
		}
	}
}

func TestPerKeyLimiter_OnDrop(t *testing.T) {
	pkl := NewPerKeyLimiter(PerKeyConfig{
		MaxTokens:     1,
		RefillRate:    0.001,
		CleanupPeriod: time.Hour,
	})
	defer pkl.Stop()

	drops := 0
	pkl.OnDrop(func() { drops++ })

	pkl.Allow("x")
	pkl.Allow("x")
	pkl.Allow("x")

	if drops != 2 {
		t.Errorf("drops = %d, want 2", drops)
	}
}

func TestPerKeyLimiter_StopIsIdempotent(t *testing.T) {
	pkl := NewPerKeyLimiter(PerKeyConfig{
		MaxTokens:     1,
		RefillRate:    1,
		CleanupPeriod: time.Hour,
	})
	pkl.Stop()
	pkl.Stop()
}
