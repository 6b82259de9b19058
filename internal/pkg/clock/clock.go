package clock

import "time"

// Clock is an interface for time operations to enable testability.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current UTC time truncated to seconds, the precision of
// the TIMESTAMP columns it is written to.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// MockClock is a settable clock for tests.
type MockClock struct {
	current time.Time
}

func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{current: startTime}
}

func (m *MockClock) Now() time.Time {
	return m.current
}

func (m *MockClock) Set(t time.Time) {
	m.current = t
}

func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
