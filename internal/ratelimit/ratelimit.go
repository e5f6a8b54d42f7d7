package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter implements a simple in-memory sliding window rate limiter
type Limiter struct {
	mu       sync.RWMutex
	counters map[string]*counter
	window   time.Duration
	max      int
}

type counter struct {
	count     int
	expiresAt time.Time
}

// NewLimiter creates a new rate limiter with the specified window and max requests
func NewLimiter(window time.Duration, max int) *Limiter {
	l := &Limiter{
		counters: make(map[string]*counter),
		window:   window,
		max:      max,
	}
	go l.cleanup()
	return l
}

// Allow checks if a request for the given key is allowed
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		l.counters[key] = &counter{
			count:     1,
			expiresAt: now.Add(l.window),
		}
		return true
	}

	if c.count >= l.max {
		return false
	}

	c.count++
	return true
}

// GetRemaining returns the number of remaining requests for the given key
func (l *Limiter) GetRemaining(key string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	now := time.Now()
	c, exists := l.counters[key]

	if !exists || now.After(c.expiresAt) {
		return l.max
	}

	remaining := l.max - c.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup periodically removes expired counters
func (l *Limiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, c := range l.counters {
			if now.After(c.expiresAt) {
				delete(l.counters, key)
			}
		}
		l.mu.Unlock()
	}
}

// MultiKeyLimiter manages the per-operation limiters for the public API
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
	mu       sync.RWMutex
}

// NewMultiKeyLimiter creates a new multi-key limiter with default limits
func NewMultiKeyLimiter() *MultiKeyLimiter {
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			"ip_order":    NewLimiter(time.Hour, 30),   // 30 orders per IP per hour
			"phone_order": NewLimiter(time.Hour, 10),   // 10 orders per phone per hour
			"ip_suggest":  NewLimiter(time.Minute, 60), // 60 suggestion queries per IP per minute
		},
	}
}

// NewCustomMultiKeyLimiter creates a limiter with custom limits
func NewCustomMultiKeyLimiter(ipOrderLimit, phoneOrderLimit, ipSuggestLimit int) *MultiKeyLimiter {
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			"ip_order":    NewLimiter(time.Hour, ipOrderLimit),
			"phone_order": NewLimiter(time.Hour, phoneOrderLimit),
			"ip_suggest":  NewLimiter(time.Minute, ipSuggestLimit),
		},
	}
}

// CheckOrderCreation verifies if an order can be placed from the given IP and phone
func (m *MultiKeyLimiter) CheckOrderCreation(ip, phone string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters["ip_order"].Allow(ip) {
		return fmt.Errorf("too many orders from this IP address, please try again later")
	}

	if phone != "" && !m.limiters["phone_order"].Allow(phone) {
		return fmt.Errorf("too many orders from this phone number, please try again later")
	}

	return nil
}

// CheckSuggestions verifies if a label suggestion query is allowed from the given IP
func (m *MultiKeyLimiter) CheckSuggestions(ip string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters["ip_suggest"].Allow(ip) {
		return fmt.Errorf("too many suggestion requests, please slow down")
	}

	return nil
}

// GetOrderLimits returns remaining order attempts for IP and phone
func (m *MultiKeyLimiter) GetOrderLimits(ip, phone string) (ipRemaining, phoneRemaining int) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ipRemaining = m.limiters["ip_order"].GetRemaining(ip)
	if phone != "" {
		phoneRemaining = m.limiters["phone_order"].GetRemaining(phone)
	} else {
		phoneRemaining = -1 // not applicable
	}

	return ipRemaining, phoneRemaining
}
