package booking

import (
	"context"
	"fmt"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type CreateBookingHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewCreateBookingHandler(repository Repository, eventPublisher events.Publisher) *CreateBookingHandler {
	return &CreateBookingHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type CreateBookingResponse struct {
	BookingResponse
}

func (h CreateBookingHandler) Handle(ctx context.Context, req *CreateBookingRequest) (*CreateBookingResponse, error) {
	bookerID, err := app.CallerID(ctx, "booking.create")
	if err != nil {
		return nil, err
	}

	if err := app.Validate("booking.create", req); err != nil {
		return nil, err
	}

	var (
		booking domain.Booking
		booker  domain.User
		item    domain.Item
	)
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		booker, err = h.repository.GetUser(ctx, bookerID)
		if err != nil {
			return app.LookupError(err, "booking.create.booker", "User", bookerID)
		}

		item, err = h.repository.LockItem(ctx, req.ItemID)
		if err != nil {
			return app.LookupError(err, "booking.create.item", "Item", req.ItemID)
		}

		now := time.Now().UTC()
		if err := checkPeriod(req.Start, req.End, now); err != nil {
			return err
		}

		if !item.Available {
			return httperror.BadRequest(
				"booking.create.unavailable",
				fmt.Sprintf("Item with id %d is not available", item.ID),
				nil,
			)
		}

		// Owners booking their own item get the same answer as a missing item.
		if item.OwnerID == booker.ID {
			return httperror.NotFound(
				"booking.create.item.not_found",
				fmt.Sprintf("Item with id %d not found", item.ID),
				nil,
			)
		}

		existing, err := h.repository.ListBookingsForItems(ctx, []int64{item.ID})
		if err != nil {
			return err
		}
		if conflict, ok := domain.FirstOverlap(existing, req.Start, req.End); ok {
			return httperror.BadRequest(
				"booking.create.overlap",
				"Period already booked",
				fmt.Sprintf("overlaps booking %d", conflict.ID),
			)
		}

		booking, err = h.repository.CreateBooking(ctx, domain.Booking{
			Start:     req.Start,
			End:       req.End,
			BookerID:  booker.ID,
			ItemID:    item.ID,
			Status:    domain.BookingWaiting,
			CreatedAt: now,
		})
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "booking.create.create_failed", "An error occurred while creating the booking")
	}

	zap.L().Info("Booking created",
		zap.Int64("bookingId", booking.ID),
		zap.Int64("itemId", item.ID),
		zap.Int64("userId", booker.ID),
	)
	publishBookingEvent(ctx, h.eventPublisher, events.BookingCreatedEvent, booking, item.OwnerID)

	return &CreateBookingResponse{
		BookingResponse: toBookingResponse(booking, booker, item),
	}, nil
}

func checkPeriod(start, end, now time.Time) error {
	if !start.Before(end) {
		return httperror.BadRequest(
			"booking.create.invalid_period",
			"Booking start must be before its end",
			nil,
		)
	}
	if !start.After(now) {
		return httperror.BadRequest(
			"booking.create.start_in_past",
			"Booking start must be in the future",
			nil,
		)
	}
	return nil
}
