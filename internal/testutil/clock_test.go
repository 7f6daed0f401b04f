package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedClockReturnsSameInstant(t *testing.T) {
	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := FixedClock{Instant: instant}

	assert.True(t, clock.Now().Equal(instant))
	assert.True(t, clock.Now().Equal(clock.Now()), "repeated reads never drift")
}

func TestClockAt(t *testing.T) {
	clock, err := ClockAt("2024-01-01T12:00:00")
	require.NoError(t, err)
	assert.True(t, clock.Now().Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)))

	_, err = ClockAt("not-a-date")
	assert.Error(t, err)
}

func TestMustClockAtPanicsOnBadLiteral(t *testing.T) {
	assert.Panics(t, func() { MustClockAt("2024-99-99") })
}
