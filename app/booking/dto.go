package booking

import (
	"context"
	"time"

	"shareit/domain"
)

type BookerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookedItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
}

type BookingResponse struct {
	ID        int64                `json:"id"`
	Start     time.Time            `json:"start"`
	End       time.Time            `json:"end"`
	Status    domain.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"created"`
	Booker    BookerResponse       `json:"booker"`
	Item      BookedItemResponse   `json:"item"`
}

func toBookingResponse(b domain.Booking, booker domain.User, item domain.Item) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		Booker: BookerResponse{
			ID:    booker.ID,
			Name:  booker.Name,
			Email: booker.Email,
		},
		Item: BookedItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			Available:   item.Available,
			OwnerID:     item.OwnerID,
		},
	}
}

// toBookingResponses loads bookers and items for the whole page in two queries.
func toBookingResponses(ctx context.Context, repository Repository, bookings []domain.Booking) ([]BookingResponse, error) {
	bookerIDs := make([]int64, 0, len(bookings))
	itemIDs := make([]int64, 0, len(bookings))
	for _, b := range bookings {
		bookerIDs = append(bookerIDs, b.BookerID)
		itemIDs = append(itemIDs, b.ItemID)
	}

	users, err := repository.GetUsersByIDs(ctx, bookerIDs)
	if err != nil {
		return nil, err
	}
	items, err := repository.GetItemsByIDs(ctx, itemIDs)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}
	itemsByID := make(map[int64]domain.Item, len(items))
	for _, i := range items {
		itemsByID[i.ID] = i
	}

	res := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		res = append(res, toBookingResponse(b, usersByID[b.BookerID], itemsByID[b.ItemID]))
	}
	return res, nil
}
