package booking

import (
	"context"
	"fmt"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type DeleteBookingHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewDeleteBookingHandler(repository Repository, eventPublisher events.Publisher) *DeleteBookingHandler {
	return &DeleteBookingHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type DeleteBookingRequest struct {
	BookingID int64 `params:"id"`
}

type DeleteBookingResponse struct {
	Message string `json:"message"`
}

// Handle lets the booker or the item owner remove a booking.
func (h DeleteBookingHandler) Handle(ctx context.Context, req *DeleteBookingRequest) (*DeleteBookingResponse, error) {
	viewerID, err := app.CallerID(ctx, "booking.destroy")
	if err != nil {
		return nil, err
	}

	var (
		booking domain.Booking
		item    domain.Item
	)
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, viewerID); err != nil {
			return app.LookupError(err, "booking.destroy.user", "User", viewerID)
		}

		var err error
		booking, err = h.repository.GetBooking(ctx, req.BookingID)
		if err != nil {
			return app.LookupError(err, "booking.destroy", "Booking", req.BookingID)
		}

		item, err = h.repository.GetItem(ctx, booking.ItemID)
		if err != nil {
			return app.LookupError(err, "booking.destroy.item", "Item", booking.ItemID)
		}
		if booking.BookerID != viewerID && item.OwnerID != viewerID {
			return httperror.NotFound("booking.destroy.not_found", "Booking not found", nil)
		}

		if err := h.repository.DeleteBooking(ctx, booking.ID); err != nil {
			return app.LookupError(err, "booking.destroy", "Booking", booking.ID)
		}
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "booking.destroy.failed", "Failed to delete booking")
	}

	zap.L().Info("Booking deleted", zap.Int64("bookingId", booking.ID), zap.Int64("userId", viewerID))
	publishBookingEvent(ctx, h.eventPublisher, events.BookingDeletedEvent, booking, item.OwnerID)

	return &DeleteBookingResponse{
		Message: fmt.Sprintf("Booking with id %d deleted", booking.ID),
	}, nil
}
