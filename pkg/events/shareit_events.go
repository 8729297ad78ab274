package events

import "time"

const ServiceName = "shareit"

// Exchanges
const (
	ItemExchange    = "shareit.item"
	BookingExchange = "shareit.booking"
	RequestExchange = "shareit.request"
)

// Event names
const (
	ItemCreatedEvent        = "item.created"
	ItemUpdatedEvent        = "item.updated"
	ItemDeletedEvent        = "item.deleted"
	ItemCommentCreatedEvent = "item.comment.created"
	BookingCreatedEvent     = "booking.created"
	BookingApprovedEvent    = "booking.approved"
	BookingRejectedEvent    = "booking.rejected"
	BookingDeletedEvent     = "booking.deleted"
	RequestCreatedEvent     = "request.created"
	RequestDeletedEvent     = "request.deleted"
)

// Event versions
const (
	EventVersionV1 = "v1"
)

type ItemPayload struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"ownerId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   *int64    `json:"requestId,omitempty"`
	At          time.Time `json:"at"`
}

type ItemDeletedPayload struct {
	ID        int64     `json:"id"`
	OwnerID   int64     `json:"ownerId"`
	DeletedAt time.Time `json:"deletedAt"`
}

type CommentCreatedPayload struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"itemId"`
	AuthorID  int64     `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type BookingPayload struct {
	ID       int64     `json:"id"`
	ItemID   int64     `json:"itemId"`
	BookerID int64     `json:"bookerId"`
	OwnerID  int64     `json:"ownerId"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Status   string    `json:"status"`
	At       time.Time `json:"at"`
}

type RequestPayload struct {
	ID          int64     `json:"id"`
	RequesterID int64     `json:"requesterId"`
	Description string    `json:"description,omitempty"`
	At          time.Time `json:"at"`
}
