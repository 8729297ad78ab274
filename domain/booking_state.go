package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingState is a derived view over a booking's status and period. It is
// never stored.
type BookingState int

const (
	StateAll BookingState = iota
	StateWaiting
	StateRejected
	StateFuture
	StateCurrent
	StatePast
)

var stateNames = map[BookingState]string{
	StateAll:      "ALL",
	StateWaiting:  "WAITING",
	StateRejected: "REJECTED",
	StateFuture:   "FUTURE",
	StateCurrent:  "CURRENT",
	StatePast:     "PAST",
}

func (s BookingState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("BookingState(%d)", int(s))
}

type UnknownStateError struct {
	Value string
}

func (e *UnknownStateError) Error() string {
	return "Unknown state: " + e.Value
}

// ParseBookingState is case-insensitive. An empty value means ALL.
func ParseBookingState(value string) (BookingState, error) {
	if strings.TrimSpace(value) == "" {
		return StateAll, nil
	}
	for state, name := range stateNames {
		if strings.EqualFold(name, value) {
			return state, nil
		}
	}
	return StateAll, &UnknownStateError{Value: value}
}

func (s BookingState) Matches(b Booking, now time.Time) bool {
	switch s {
	case StateWaiting:
		return b.Status == BookingWaiting
	case StateRejected:
		return b.Status == BookingRejected
	case StateFuture:
		return b.Start.After(now)
	case StateCurrent:
		return !b.Start.After(now) && now.Before(b.End)
	case StatePast:
		return b.End.Before(now)
	default:
		return true
	}
}
