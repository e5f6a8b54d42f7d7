package ratelimit

import (
	"testing"
	"time"
)

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(time.Second, 3)

	// First 3 requests should succeed
	for i := 0; i < 3; i++ {
		if !limiter.Allow("test-key") {
			t.Errorf("Request %d should be allowed", i+1)
		}
	}

	// 4th request should be blocked
	if limiter.Allow("test-key") {
		t.Error("4th request should be blocked")
	}

	// Wait for window to expire
	time.Sleep(1100 * time.Millisecond)

	// Should be allowed again
	if !limiter.Allow("test-key") {
		t.Error("Request after window expiry should be allowed")
	}
}

func TestLimiter_GetRemaining(t *testing.T) {
	limiter := NewLimiter(time.Second, 5)

	if remaining := limiter.GetRemaining("test-key"); remaining != 5 {
		t.Errorf("Expected 5 remaining, got %d", remaining)
	}

	limiter.Allow("test-key")
	limiter.Allow("test-key")

	if remaining := limiter.GetRemaining("test-key"); remaining != 3 {
		t.Errorf("Expected 3 remaining, got %d", remaining)
	}
}

func TestMultiKeyLimiter_CheckOrderCreation(t *testing.T) {
	limiter := NewCustomMultiKeyLimiter(2, 2, 10)

	// First 2 orders from same IP should succeed
	if err := limiter.CheckOrderCreation("192.168.1.1", "+15550001"); err != nil {
		t.Errorf("First order should succeed: %v", err)
	}
	if err := limiter.CheckOrderCreation("192.168.1.1", "+15550002"); err != nil {
		t.Errorf("Second order should succeed: %v", err)
	}

	// 3rd order from same IP should fail
	if err := limiter.CheckOrderCreation("192.168.1.1", "+15550003"); err == nil {
		t.Error("3rd order from same IP should be blocked")
	}

	// Order from different IP should succeed
	if err := limiter.CheckOrderCreation("192.168.1.2", "+15550004"); err != nil {
		t.Errorf("Order from different IP should succeed: %v", err)
	}
}

func TestMultiKeyLimiter_CheckSuggestions(t *testing.T) {
	limiter := NewCustomMultiKeyLimiter(5, 5, 3)

	// First 3 queries should succeed
	for i := 0; i < 3; i++ {
		if err := limiter.CheckSuggestions("192.168.1.1"); err != nil {
			t.Errorf("Query %d should succeed: %v", i+1, err)
		}
	}

	// 4th query should fail
	if err := limiter.CheckSuggestions("192.168.1.1"); err == nil {
		t.Error("4th query should be blocked")
	}
}

func TestMultiKeyLimiter_PhoneLimit(t *testing.T) {
	limiter := NewCustomMultiKeyLimiter(10, 1, 10)

	if err := limiter.CheckOrderCreation("192.168.1.1", "+15550001"); err != nil {
		t.Errorf("First order should succeed: %v", err)
	}

	// same phone from another IP is still blocked
	if err := limiter.CheckOrderCreation("192.168.1.2", "+15550001"); err == nil {
		t.Error("Second order for the same phone should be blocked")
	}

	ipRemaining, phoneRemaining := limiter.GetOrderLimits("192.168.1.1", "+15550001")
	if ipRemaining != 9 {
		t.Errorf("Expected 9 IP attempts remaining, got %d", ipRemaining)
	}
	if phoneRemaining != 0 {
		t.Errorf("Expected 0 phone attempts remaining, got %d", phoneRemaining)
	}
}
