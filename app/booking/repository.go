package booking

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type Repository interface {
	app.Transactor
	GetUser(ctx context.Context, id int64) (domain.User, error)
	GetUsersByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	GetItem(ctx context.Context, id int64) (domain.Item, error)
	GetItemsByIDs(ctx context.Context, ids []int64) ([]domain.Item, error)
	// LockItem loads the item and holds it until the transaction ends so that
	// bookings of one item are checked and inserted one at a time.
	LockItem(ctx context.Context, id int64) (domain.Item, error)

	ListBookingsForItems(ctx context.Context, itemIDs []int64) ([]domain.Booking, error)
	// ListBookings orders by start descending.
	ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	GetBooking(ctx context.Context, id int64) (domain.Booking, error)
	CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	DeleteBooking(ctx context.Context, id int64) error
}
