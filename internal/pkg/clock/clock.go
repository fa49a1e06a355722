// Package clock provides an injectable time source
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system time in UTC
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed always returns the same instant
type Fixed struct {
	T time.Time
}

// Now returns the fixed instant
func (c *Fixed) Now() time.Time {
	return c.T
}
