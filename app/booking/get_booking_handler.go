package booking

import (
	"context"

	"shareit/app"
	"shareit/pkg/httperror"
)

type GetBookingHandler struct {
	repository Repository
}

func NewGetBookingHandler(repository Repository) *GetBookingHandler {
	return &GetBookingHandler{
		repository: repository,
	}
}

type GetBookingRequest struct {
	BookingID int64 `params:"id"`
}

type GetBookingResponse struct {
	BookingResponse
}

// Handle shows the booking to its booker and to the item owner only.
func (h GetBookingHandler) Handle(ctx context.Context, req *GetBookingRequest) (*GetBookingResponse, error) {
	viewerID, err := app.CallerID(ctx, "booking.show")
	if err != nil {
		return nil, err
	}

	var res GetBookingResponse
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		viewer, err := h.repository.GetUser(ctx, viewerID)
		if err != nil {
			return app.LookupError(err, "booking.show.user", "User", viewerID)
		}

		booking, err := h.repository.GetBooking(ctx, req.BookingID)
		if err != nil {
			return app.LookupError(err, "booking.show", "Booking", req.BookingID)
		}

		item, err := h.repository.GetItem(ctx, booking.ItemID)
		if err != nil {
			return app.LookupError(err, "booking.show.item", "Item", booking.ItemID)
		}

		if booking.BookerID != viewer.ID && item.OwnerID != viewer.ID {
			return httperror.NotFound("booking.show.not_found", "Booking not found", nil)
		}

		booker := viewer
		if booking.BookerID != viewer.ID {
			booker, err = h.repository.GetUser(ctx, booking.BookerID)
			if err != nil {
				return app.LookupError(err, "booking.show.booker", "User", booking.BookerID)
			}
		}

		res.BookingResponse = toBookingResponse(booking, booker, item)
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "booking.show.failed", "Failed to retrieve booking")
	}

	return &res, nil
}
