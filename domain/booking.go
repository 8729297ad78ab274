package domain

import "time"

type BookingStatus string

const (
	BookingWaiting  BookingStatus = "WAITING"
	BookingApproved BookingStatus = "APPROVED"
	BookingRejected BookingStatus = "REJECTED"
)

type Booking struct {
	ID        int64         `db:"id" json:"id"`
	Start     time.Time     `db:"start_date" json:"start"`
	End       time.Time     `db:"end_date" json:"end"`
	BookerID  int64         `db:"booker_id" json:"bookerId"`
	ItemID    int64         `db:"item_id" json:"itemId"`
	Status    BookingStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created"`
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

func (b Booking) Overlaps(start, end time.Time) bool {
	return Overlaps(start, end, b.Start, b.End)
}

// Decide moves a WAITING booking to APPROVED or REJECTED. Both targets are terminal.
func (b *Booking) Decide(approved bool) error {
	if b.Status != BookingWaiting {
		return ErrAlreadyDecided
	}
	if approved {
		b.Status = BookingApproved
	} else {
		b.Status = BookingRejected
	}
	return nil
}

// FirstOverlap returns the first booking whose period intersects [start, end).
// Bookings of every status take part in the check.
func FirstOverlap(bookings []Booking, start, end time.Time) (Booking, bool) {
	for _, b := range bookings {
		if b.Overlaps(start, end) {
			return b, true
		}
	}
	return Booking{}, false
}

// LastAndNext picks the most recent started and the nearest upcoming APPROVED
// bookings relative to now.
func LastAndNext(bookings []Booking, now time.Time) (last, next *Booking) {
	for i := range bookings {
		b := bookings[i]
		if b.Status != BookingApproved {
			continue
		}
		switch {
		case b.Start.Before(now):
			if last == nil || b.Start.After(last.Start) {
				last = &b
			}
		case b.Start.After(now):
			if next == nil || b.Start.Before(next.Start) {
				next = &b
			}
		}
	}
	return last, next
}

// BookingFilter selects bookings either by booker or by item owner.
type BookingFilter struct {
	BookerID *int64
	OwnerID  *int64
	State    BookingState
	Now      time.Time
	Limit    int
	Offset   int
}
