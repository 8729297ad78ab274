package booking

import (
	"context"
	"time"

	"shareit/domain"
	"shareit/pkg/events"
)

func publishBookingEvent(ctx context.Context, publisher events.Publisher, name string, b domain.Booking, ownerID int64) {
	events.Emit(ctx, publisher, events.BookingExchange, name, events.BookingPayload{
		ID:       b.ID,
		ItemID:   b.ItemID,
		BookerID: b.BookerID,
		OwnerID:  ownerID,
		Start:    b.Start,
		End:      b.End,
		Status:   string(b.Status),
		At:       time.Now().UTC(),
	})
}
