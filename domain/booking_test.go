package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var day = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

func hours(n int) time.Time { return day.Add(time.Duration(n) * time.Hour) }

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 0, 10, 0, 10, true},
		{"contained", 2, 4, 0, 10, true},
		{"straddles start", -5, 1, 0, 10, true},
		{"straddles end", 9, 12, 0, 10, true},
		{"touches end", 10, 12, 0, 10, false},
		{"touches start", -2, 0, 0, 10, false},
		{"disjoint", 20, 30, 0, 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(hours(tt.aStart), hours(tt.aEnd), hours(tt.bStart), hours(tt.bEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}

func interval(t *rapid.T, label string) (time.Time, time.Time) {
	start := rapid.IntRange(-1000, 1000).Draw(t, label+"Start")
	length := rapid.IntRange(1, 200).Draw(t, label+"Len")
	return hours(start), hours(start + length)
}

func TestOverlapsIsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		aStart, aEnd := interval(t, "a")
		bStart, bEnd := interval(t, "b")
		if Overlaps(aStart, aEnd, bStart, bEnd) != Overlaps(bStart, bEnd, aStart, aEnd) {
			t.Fatalf("overlap not symmetric for [%v,%v) [%v,%v)", aStart, aEnd, bStart, bEnd)
		}
	})
}

// Accepting intervals one by one with FirstOverlap as the guard never leaves two
// accepted intervals intersecting.
func TestSequentialAcceptanceNeverOverlaps(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var accepted []Booking
		n := rapid.IntRange(1, 30).Draw(t, "n")
		for i := 0; i < n; i++ {
			start, end := interval(t, "b")
			if _, clash := FirstOverlap(accepted, start, end); clash {
				continue
			}
			accepted = append(accepted, Booking{ID: int64(i + 1), Start: start, End: end})
		}
		for i := range accepted {
			for j := i + 1; j < len(accepted); j++ {
				a, b := accepted[i], accepted[j]
				if a.Overlaps(b.Start, b.End) {
					t.Fatalf("accepted bookings %d and %d overlap", a.ID, b.ID)
				}
			}
		}
	})
}

func TestDecide(t *testing.T) {
	b := Booking{Status: BookingWaiting}
	require.NoError(t, b.Decide(true))
	assert.Equal(t, BookingApproved, b.Status)
	assert.ErrorIs(t, b.Decide(true), ErrAlreadyDecided)
	assert.ErrorIs(t, b.Decide(false), ErrAlreadyDecided)

	r := Booking{Status: BookingWaiting}
	require.NoError(t, r.Decide(false))
	assert.Equal(t, BookingRejected, r.Status)
	assert.ErrorIs(t, r.Decide(true), ErrAlreadyDecided)
}

func TestFirstOverlapConsidersRejectedBookings(t *testing.T) {
	existing := []Booking{{ID: 1, Start: hours(0), End: hours(10), Status: BookingRejected}}

	clash, found := FirstOverlap(existing, hours(5), hours(6))
	assert.True(t, found)
	assert.Equal(t, int64(1), clash.ID)
}

func TestLastAndNext(t *testing.T) {
	now := hours(100)
	bookings := []Booking{
		{ID: 1, Start: hours(10), End: hours(20), Status: BookingApproved},
		{ID: 2, Start: hours(50), End: hours(60), Status: BookingApproved},
		{ID: 3, Start: hours(90), End: hours(95), Status: BookingRejected},
		{ID: 4, Start: hours(200), End: hours(210), Status: BookingApproved},
		{ID: 5, Start: hours(150), End: hours(160), Status: BookingApproved},
		{ID: 6, Start: hours(120), End: hours(130), Status: BookingWaiting},
	}

	last, next := LastAndNext(bookings, now)
	require.NotNil(t, last)
	require.NotNil(t, next)
	assert.Equal(t, int64(2), last.ID)
	assert.Equal(t, int64(5), next.ID)
}

func TestLastAndNextEmpty(t *testing.T) {
	last, next := LastAndNext(nil, day)
	assert.Nil(t, last)
	assert.Nil(t, next)
}
