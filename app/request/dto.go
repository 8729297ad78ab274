package request

import (
	"context"
	"time"

	"shareit/domain"
)

type RequestResponse struct {
	ID          int64         `json:"id"`
	RequesterID int64         `json:"requesterId"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created"`
	Items       []domain.Item `json:"items"`
}

func toRequestResponse(r domain.ItemRequest, items []domain.Item) RequestResponse {
	if items == nil {
		items = []domain.Item{}
	}
	return RequestResponse{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		Items:       items,
	}
}

// withItems annotates every request with its answers using a single item query.
func withItems(ctx context.Context, repository Repository, requests []domain.ItemRequest) ([]RequestResponse, error) {
	ids := make([]int64, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.ID)
	}

	items, err := repository.ListItemsForRequests(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]domain.Item, len(requests))
	for _, i := range items {
		if i.RequestID != nil {
			byRequest[*i.RequestID] = append(byRequest[*i.RequestID], i)
		}
	}

	res := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		res = append(res, toRequestResponse(r, byRequest[r.ID]))
	}
	return res, nil
}
