package booking

import (
	"context"
	"errors"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/httperror"
)

// ListBookingsHandler serves both the booker view and the item owner view.
type ListBookingsHandler struct {
	repository Repository
	byOwner    bool
}

func NewListBookerBookingsHandler(repository Repository) *ListBookingsHandler {
	return &ListBookingsHandler{
		repository: repository,
	}
}

func NewListOwnerBookingsHandler(repository Repository) *ListBookingsHandler {
	return &ListBookingsHandler{
		repository: repository,
		byOwner:    true,
	}
}

type ListBookingsRequest struct {
	State string `query:"state"`
	From  int    `query:"from"`
	Size  int    `query:"size"`
}

func (r *ListBookingsRequest) Defaults() {
	r.State = domain.StateAll.String()
	r.Size = domain.DefaultPageSize
}

type ListBookingsResponse []BookingResponse

func (h ListBookingsHandler) Handle(ctx context.Context, req *ListBookingsRequest) (*ListBookingsResponse, error) {
	code := "booking.index"
	if h.byOwner {
		code = "booking.owner_index"
	}

	userID, err := app.CallerID(ctx, code)
	if err != nil {
		return nil, err
	}

	state, err := domain.ParseBookingState(req.State)
	if err != nil {
		var unknown *domain.UnknownStateError
		if errors.As(err, &unknown) {
			return nil, httperror.BadRequest(code+".unknown_state", unknown.Error(), nil)
		}
		return nil, err
	}

	page, err := app.Page(code, req.From, req.Size)
	if err != nil {
		return nil, err
	}

	filter := domain.BookingFilter{
		State:  state,
		Now:    time.Now().UTC(),
		Limit:  page.Limit(),
		Offset: page.Offset(),
	}
	if h.byOwner {
		filter.OwnerID = &userID
	} else {
		filter.BookerID = &userID
	}

	var res ListBookingsResponse
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetUser(ctx, userID); err != nil {
			return app.LookupError(err, code+".user", "User", userID)
		}

		bookings, err := h.repository.ListBookings(ctx, filter)
		if err != nil {
			return err
		}

		res, err = toBookingResponses(ctx, h.repository, bookings)
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, code+".failed", "Failed to retrieve bookings")
	}

	return &res, nil
}
