package item

import (
	"time"

	"shareit/domain"
)

type BookingSummary struct {
	ID       int64                `json:"id"`
	BookerID int64                `json:"bookerId"`
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	Status   domain.BookingStatus `json:"status"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	AuthorName string    `json:"authorName"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created"`
}

type ItemResponse struct {
	domain.Item
	LastBooking *BookingSummary   `json:"lastBooking"`
	NextBooking *BookingSummary   `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

func toBookingSummary(b *domain.Booking) *BookingSummary {
	if b == nil {
		return nil
	}
	return &BookingSummary{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status,
	}
}

func toCommentResponse(c domain.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}

func toCommentResponses(comments []domain.Comment) []CommentResponse {
	res := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		res = append(res, toCommentResponse(c))
	}
	return res
}

func toItemResponses(items []domain.Item) []ItemResponse {
	res := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		res = append(res, ItemResponse{Item: i, Comments: []CommentResponse{}})
	}
	return res
}

// attach fills bookings and comments from rows loaded for the whole page.
// Bookings are attached only when withBookings is true.
func attach(items []domain.Item, bookings []domain.Booking, comments []domain.Comment, withBookings bool, now time.Time) []ItemResponse {
	bookingsByItem := make(map[int64][]domain.Booking, len(items))
	for _, b := range bookings {
		bookingsByItem[b.ItemID] = append(bookingsByItem[b.ItemID], b)
	}
	commentsByItem := make(map[int64][]domain.Comment, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID] = append(commentsByItem[c.ItemID], c)
	}

	res := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		r := ItemResponse{
			Item:     i,
			Comments: toCommentResponses(commentsByItem[i.ID]),
		}
		if withBookings {
			last, next := domain.LastAndNext(bookingsByItem[i.ID], now)
			r.LastBooking = toBookingSummary(last)
			r.NextBooking = toBookingSummary(next)
		}
		res = append(res, r)
	}
	return res
}

func itemIDs(items []domain.Item) []int64 {
	ids := make([]int64, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.ID)
	}
	return ids
}
