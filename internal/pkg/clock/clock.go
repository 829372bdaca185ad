package clock

import "time"

// Clock abstracts wall time so token expiry can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func NewRealClock() Clock { return realClock{} }

func (realClock) Now() time.Time { return time.Now() }

// MockClock reports a fixed instant.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock { return &MockClock{now: t} }

func (c *MockClock) Now() time.Time { return c.now }
