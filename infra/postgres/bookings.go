package postgres

import (
	"context"
	"time"

	"shareit/domain"

	sq "github.com/Masterminds/squirrel"
)

var bookingColumns = []string{
	"b.id", "b.start_date", "b.end_date", "b.booker_id", "b.item_id", "b.status", "b.created_at",
}

func selectBookings() sq.SelectBuilder {
	return psql.Select(bookingColumns...).From("bookings b")
}

// stateCondition expresses a derived booking state as a WHERE clause.
func stateCondition(state domain.BookingState, now time.Time) sq.Sqlizer {
	switch state {
	case domain.StateWaiting:
		return sq.Eq{"b.status": domain.BookingWaiting}
	case domain.StateRejected:
		return sq.Eq{"b.status": domain.BookingRejected}
	case domain.StateFuture:
		return sq.Gt{"b.start_date": now}
	case domain.StateCurrent:
		return sq.And{sq.LtOrEq{"b.start_date": now}, sq.Gt{"b.end_date": now}}
	case domain.StatePast:
		return sq.Lt{"b.end_date": now}
	default:
		return nil
	}
}

func (r *PgRepository) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	qb := selectBookings().OrderBy("b.start_date DESC", "b.id DESC")
	if filter.BookerID != nil {
		qb = qb.Where(sq.Eq{"b.booker_id": *filter.BookerID})
	}
	if filter.OwnerID != nil {
		qb = qb.Join("items i ON i.id = b.item_id").Where(sq.Eq{"i.owner_id": *filter.OwnerID})
	}
	if cond := stateCondition(filter.State, filter.Now); cond != nil {
		qb = qb.Where(cond)
	}
	qb = paginate(qb, filter.Limit, filter.Offset)

	bookings := make([]domain.Booking, 0)
	err := r.selectAll(ctx, &bookings, qb)
	return bookings, err
}

func (r *PgRepository) ListBookingsForItems(ctx context.Context, itemIDs []int64) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	if len(itemIDs) == 0 {
		return bookings, nil
	}
	qb := selectBookings().Where(sq.Eq{"b.item_id": itemIDs}).OrderBy("b.start_date DESC")
	err := r.selectAll(ctx, &bookings, qb)
	return bookings, err
}

func (r *PgRepository) HasStartedBooking(ctx context.Context, itemID int64, now time.Time) (bool, error) {
	qb := psql.Select().Column(sq.Expr(
		"EXISTS (SELECT 1 FROM bookings WHERE item_id = ? AND start_date < ?)", itemID, now,
	))

	var exists bool
	err := r.get(ctx, &exists, qb)
	return exists, err
}

func (r *PgRepository) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	var b domain.Booking
	err := r.get(ctx, &b, selectBookings().Where(sq.Eq{"b.id": id}))
	return b, err
}

func (r *PgRepository) CreateBooking(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	qb := psql.Insert("bookings").
		Columns("start_date", "end_date", "booker_id", "item_id", "status", "created_at").
		Values(booking.Start, booking.End, booking.BookerID, booking.ItemID, booking.Status, booking.CreatedAt).
		Suffix("RETURNING id")

	err := r.get(ctx, &booking.ID, qb)
	return booking, err
}

func (r *PgRepository) UpdateBookingStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	return r.exec(ctx, psql.Update("bookings").Set("status", status).Where(sq.Eq{"id": id}))
}

func (r *PgRepository) DeleteBooking(ctx context.Context, id int64) error {
	return r.exec(ctx, psql.Delete("bookings").Where(sq.Eq{"id": id}))
}
