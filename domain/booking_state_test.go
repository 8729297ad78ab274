package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	tests := map[string]BookingState{
		"":         StateAll,
		"ALL":      StateAll,
		"waiting":  StateWaiting,
		"Rejected": StateRejected,
		"FUTURE":   StateFuture,
		"current":  StateCurrent,
		"PAST":     StatePast,
	}
	for in, want := range tests {
		got, err := ParseBookingState(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseBookingStateUnknown(t *testing.T) {
	_, err := ParseBookingState("UNSUPPORTED_STATUS")

	var unknown *UnknownStateError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())
}

func TestBookingStateMatches(t *testing.T) {
	now := hours(100)
	past := Booking{Start: hours(10), End: hours(20), Status: BookingApproved}
	current := Booking{Start: hours(90), End: hours(110), Status: BookingWaiting}
	future := Booking{Start: hours(150), End: hours(160), Status: BookingRejected}

	assert.True(t, StateAll.Matches(past, now))
	assert.True(t, StatePast.Matches(past, now))
	assert.False(t, StatePast.Matches(current, now))
	assert.True(t, StateCurrent.Matches(current, now))
	assert.False(t, StateCurrent.Matches(future, now))
	assert.True(t, StateFuture.Matches(future, now))
	assert.True(t, StateWaiting.Matches(current, now))
	assert.True(t, StateRejected.Matches(future, now))
	assert.False(t, StateRejected.Matches(past, now))
}

func TestBookingStateCurrentIncludesStartInstant(t *testing.T) {
	b := Booking{Start: hours(100), End: hours(110)}
	assert.True(t, StateCurrent.Matches(b, hours(100)))
	assert.False(t, StateCurrent.Matches(b, hours(110)))
}
