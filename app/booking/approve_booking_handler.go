package booking

import (
	"context"
	"errors"
	"strconv"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type ApproveBookingHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewApproveBookingHandler(repository Repository, eventPublisher events.Publisher) *ApproveBookingHandler {
	return &ApproveBookingHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type ApproveBookingRequest struct {
	BookingID int64  `params:"id"`
	Approved  string `query:"approved" validate:"required,boolean"`
}

type ApproveBookingResponse struct {
	BookingResponse
}

func (h ApproveBookingHandler) Handle(ctx context.Context, req *ApproveBookingRequest) (*ApproveBookingResponse, error) {
	ownerID, err := app.CallerID(ctx, "booking.approve")
	if err != nil {
		return nil, err
	}

	if err := app.Validate("booking.approve", req); err != nil {
		return nil, err
	}
	approved, _ := strconv.ParseBool(req.Approved)

	var (
		booking domain.Booking
		item    domain.Item
		res     ApproveBookingResponse
	)
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, ownerID); err != nil {
			return app.LookupError(err, "booking.approve.owner", "User", ownerID)
		}

		var err error
		booking, err = h.repository.GetBooking(ctx, req.BookingID)
		if err != nil {
			return app.LookupError(err, "booking.approve", "Booking", req.BookingID)
		}

		item, err = h.repository.GetItem(ctx, booking.ItemID)
		if err != nil {
			return app.LookupError(err, "booking.approve.item", "Item", booking.ItemID)
		}
		if item.OwnerID != ownerID {
			return httperror.NotFound("booking.approve.not_found", "Booking not found", nil)
		}

		if err := booking.Decide(approved); err != nil {
			if errors.Is(err, domain.ErrAlreadyDecided) {
				return httperror.Conflict(
					"booking.approve.already_decided",
					"Booking is already "+string(booking.Status),
					nil,
				)
			}
			return err
		}

		if err := h.repository.UpdateBookingStatus(ctx, booking.ID, booking.Status); err != nil {
			return err
		}

		booker, err := h.repository.GetUser(ctx, booking.BookerID)
		if err != nil {
			return app.LookupError(err, "booking.approve.booker", "User", booking.BookerID)
		}

		res.BookingResponse = toBookingResponse(booking, booker, item)
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "booking.approve.failed", "An error occurred while deciding the booking")
	}

	zap.L().Info("Booking decided",
		zap.Int64("bookingId", booking.ID),
		zap.String("status", string(booking.Status)),
	)

	name := events.BookingRejectedEvent
	if approved {
		name = events.BookingApprovedEvent
	}
	publishBookingEvent(ctx, h.eventPublisher, name, booking, item.OwnerID)

	return &res, nil
}
