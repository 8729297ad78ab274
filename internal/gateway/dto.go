package gateway

import (
	"time"

	"shareit/domain"
	"shareit/pkg/httperror"
)

// Request DTOs mirror what the server accepts. They are validated and then
// dropped: the original request is what gets forwarded.

type caller struct {
	UserID int64 `reqHeader:"X-Sharer-User-Id" validate:"required,gt=0"`
}

type optionalCaller struct {
	UserID int64 `reqHeader:"X-Sharer-User-Id" validate:"omitempty,gt=0"`
}

type pathID struct {
	ID int64 `params:"id" validate:"gt=0"`
}

type window struct {
	From int `query:"from" validate:"gte=0"`
	Size int `query:"size" validate:"gt=0"`
}

func (w *window) Defaults() {
	w.Size = domain.DefaultPageSize
}

type createUserDto struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,notblank"`
}

type updateUserDto struct {
	pathID
	Email *string `json:"email" validate:"omitempty,email"`
	Name  *string `json:"name" validate:"omitempty,notblank"`
}

type listItemsDto struct {
	optionalCaller
	window
}

type searchItemsDto struct {
	window
}

// resourceDto addresses one entity on behalf of an identified caller.
type resourceDto struct {
	caller
	pathID
}

type commentsDto struct {
	pathID
	window
}

type createItemDto struct {
	caller
	Name        string `json:"name" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank,max=200"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"requestId" validate:"omitempty,gt=0"`
}

type updateItemDto struct {
	caller
	pathID
	Name        *string `json:"name" validate:"omitempty,notblank"`
	Description *string `json:"description" validate:"omitempty,notblank,max=200"`
	RequestID   *int64  `json:"requestId" validate:"omitempty,gt=0"`
}

type commentDto struct {
	caller
	pathID
	Text string `json:"text" validate:"required,notblank,max=300"`
}

type listBookingsDto struct {
	caller
	window
	State string `query:"state"`
}

func (d *listBookingsDto) Defaults() {
	d.window.Defaults()
	d.State = domain.StateAll.String()
}

func (d *listBookingsDto) check(time.Time) error {
	if _, err := domain.ParseBookingState(d.State); err != nil {
		return httperror.BadRequest("gateway.booking.unknown_state", err.Error(), nil)
	}
	return nil
}

type createBookingDto struct {
	caller
	ItemID int64     `json:"itemId" validate:"required,gt=0"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required,gtfield=Start"`
}

func (d *createBookingDto) check(now time.Time) error {
	if !d.Start.After(now) {
		return httperror.BadRequest("gateway.booking.start_in_past", "Booking start must be in the future", nil)
	}
	return nil
}

type approveBookingDto struct {
	caller
	pathID
	Approved string `query:"approved" validate:"required,boolean"`
}

type otherRequestsDto struct {
	caller
	window
}

type createRequestDto struct {
	caller
	Description string `json:"description" validate:"required,notblank"`
}
