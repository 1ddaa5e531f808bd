package service

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testAppConfig() config.App {
	return config.App{
		AccessTokenSecret:    "access-secret",
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenSecret:   "refresh-secret",
		RefreshTokenDuration: 240 * time.Hour,
		TokenIssuer:          "go-auth-keeper-test",
		PasswordHashCost:     bcrypt.MinCost,
		SessionPolicy:        config.SessionPolicySingle,
		Version:              "1.0.0",
	}
}
