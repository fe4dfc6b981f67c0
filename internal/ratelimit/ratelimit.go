package ratelimit

import (
	"fmt"
	"sync"
	"time"

	gerr "github.com/provinciareal/dashboard/internal/errors"
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

// Config sets the per-client budgets of the API.
type Config struct {
	SyncPerHour    int `mapstructure:"sync_per_hour"`
	ReadsPerMinute int `mapstructure:"reads_per_minute"`
}

func DefaultConfig() Config {
	return Config{
		SyncPerHour:    6,
		ReadsPerMinute: 120,
	}
}

const (
	keySync = "ip_sync"
	keyRead = "ip_read"
)

// MultiKeyLimiter manages multiple rate limiters for different types of operations
type MultiKeyLimiter struct {
	limiters map[string]*Limiter
	mu       sync.RWMutex
}

// NewMultiKeyLimiter creates a limiter with the configured budgets. Zero
// values fall back to the defaults.
func NewMultiKeyLimiter(c Config) *MultiKeyLimiter {
	def := DefaultConfig()
	if c.SyncPerHour <= 0 {
		c.SyncPerHour = def.SyncPerHour
	}
	if c.ReadsPerMinute <= 0 {
		c.ReadsPerMinute = def.ReadsPerMinute
	}
	return &MultiKeyLimiter{
		limiters: map[string]*Limiter{
			keySync: NewLimiter(time.Hour, c.SyncPerHour),
			keyRead: NewLimiter(time.Minute, c.ReadsPerMinute),
		},
	}
}

// CheckSync verifies if a manual sync can be triggered from the given IP
func (m *MultiKeyLimiter) CheckSync(ip string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters[keySync].Allow(ip) {
		return fmt.Errorf("%w: too many sync requests from this IP address, please try again later", gerr.ErrRateLimited)
	}
	return nil
}

// CheckRead verifies if a dashboard read is allowed from the given IP
func (m *MultiKeyLimiter) CheckRead(ip string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.limiters[keyRead].Allow(ip) {
		return fmt.Errorf("%w: too many requests, please slow down", gerr.ErrRateLimited)
	}
	return nil
}

// SyncRemaining returns the remaining manual syncs for the given IP
func (m *MultiKeyLimiter) SyncRemaining(ip string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.limiters[keySync].GetRemaining(ip)
}
