package memory

import (
	"cmp"
	"context"

	"shareit/domain"
)

func byRequestCreated(a, b domain.ItemRequest) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func (s *Store) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	defer s.lock(ctx)()

	requests := make([]domain.ItemRequest, 0)
	for _, r := range sortedValues(s.t.requests, byRequestCreated) {
		if r.RequesterID == requesterID {
			requests = append(requests, r)
		}
	}
	return requests, nil
}

func (s *Store) ListOtherRequests(ctx context.Context, requesterID int64, limit, offset int) ([]domain.ItemRequest, error) {
	defer s.lock(ctx)()

	newestFirst := func(a, b domain.ItemRequest) int { return byRequestCreated(b, a) }
	requests := make([]domain.ItemRequest, 0)
	for _, r := range sortedValues(s.t.requests, newestFirst) {
		if r.RequesterID != requesterID {
			requests = append(requests, r)
		}
	}
	return window(requests, limit, offset), nil
}

func (s *Store) GetRequest(ctx context.Context, id int64) (domain.ItemRequest, error) {
	defer s.lock(ctx)()

	r, ok := s.t.requests[id]
	if !ok {
		return domain.ItemRequest{}, domain.ErrNotFound
	}
	return r, nil
}

func (s *Store) CreateRequest(ctx context.Context, request domain.ItemRequest) (domain.ItemRequest, error) {
	defer s.lock(ctx)()

	if _, ok := s.t.users[request.RequesterID]; !ok {
		return domain.ItemRequest{}, domain.ErrNotFound
	}
	request.ID = s.t.nextID()
	s.t.requests[request.ID] = request
	return request, nil
}

func (s *Store) DeleteRequest(ctx context.Context, id int64) error {
	defer s.lock(ctx)()

	if _, ok := s.t.requests[id]; !ok {
		return domain.ErrNotFound
	}
	s.deleteRequest(id)
	return nil
}

// deleteRequest keeps the answering items and clears their reference.
func (s *Store) deleteRequest(id int64) {
	delete(s.t.requests, id)
	for itemID, i := range s.t.items {
		if i.RequestID != nil && *i.RequestID == id {
			i.RequestID = nil
			s.t.items[itemID] = i
		}
	}
}
