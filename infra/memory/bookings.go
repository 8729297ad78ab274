package memory

import (
	"cmp"
	"context"
	"time"

	"shareit/domain"
)

// byStartDesc puts the latest start first and breaks ties by id.
func byStartDesc(a, b domain.Booking) int {
	if c := b.Start.Compare(a.Start); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

func (s *Store) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	defer s.lock(ctx)()

	bookings := make([]domain.Booking, 0)
	for _, b := range sortedValues(s.t.bookings, byStartDesc) {
		if filter.BookerID != nil && b.BookerID != *filter.BookerID {
			continue
		}
		if filter.OwnerID != nil && s.t.items[b.ItemID].OwnerID != *filter.OwnerID {
			continue
		}
		if !filter.State.Matches(b, filter.Now) {
			continue
		}
		bookings = append(bookings, b)
	}
	return window(bookings, filter.Limit, filter.Offset), nil
}

func (s *Store) ListBookingsForItems(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	defer s.lock(ctx)()

	wanted := idSet(itemIDs)
	bookings := make([]domain.Booking, 0)
	for _, b := range sortedValues(s.t.bookings, byStartDesc) {
		if _, ok := wanted[b.ItemID]; ok {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

func (s *Store) HasStartedBooking(ctx context.Context, itemID int64, now time.Time) (bool, error) {
	defer s.lock(ctx)()

	for _, b := range s.t.bookings {
		if b.ItemID == itemID && b.Start.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	defer s.lock(ctx)()

	b, ok := s.t.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (s *Store) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	defer s.lock(ctx)()

	if _, ok := s.t.items[booking.ItemID]; !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	if _, ok := s.t.users[booking.BookerID]; !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	booking.ID = s.t.nextID()
	s.t.bookings[booking.ID] = booking
	return booking, nil
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	defer s.lock(ctx)()

	b, ok := s.t.bookings[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Status = status
	s.t.bookings[id] = b
	return nil
}

func (s *Store) DeleteBooking(ctx context.Context, id int64) error {
	defer s.lock(ctx)()

	if _, ok := s.t.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.t.bookings, id)
	return nil
}
