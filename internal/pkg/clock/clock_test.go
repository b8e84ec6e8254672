//go:build unit

package clock_test

import (
	"testing"
	"time"

	"racing-ticket-desk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestEventClock_UsesEventZone(t *testing.T) {
	dubai := time.FixedZone("Asia/Dubai", 4*60*60)

	now := clock.NewEventClock(dubai).Now()

	assert.Equal(t, dubai, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}

func TestEventClock_DefaultsToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.NewEventClock(nil).Now().Location())
}

func TestFixedClock_Advance(t *testing.T) {
	start := time.Date(2025, 9, 5, 18, 0, 0, 0, time.UTC)
	c := clock.NewFixedClock(start)

	assert.Equal(t, start, c.Now())
	c.Advance(90 * time.Minute)
	assert.Equal(t, start.Add(90*time.Minute), c.Now())
}
