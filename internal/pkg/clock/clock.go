package clock

import "time"

type Clock interface {
	Now() time.Time
}

// EventClock reports wall time in the event's local zone so receipts carry
// the time the counter staff see.
type EventClock struct {
	location *time.Location
}

func NewEventClock(location *time.Location) Clock {
	if location == nil {
		location = time.UTC
	}
	return &EventClock{location: location}
}

func (c *EventClock) Now() time.Time {
	return time.Now().In(c.location)
}

// FixedClock always returns the same instant until moved.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{at: t}
}

func (c *FixedClock) Now() time.Time {
	return c.at
}

func (c *FixedClock) Advance(d time.Duration) {
	c.at = c.at.Add(d)
}
