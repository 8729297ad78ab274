package memory

import (
	"cmp"
	"context"
	"strings"

	"shareit/domain"
)

func byItemID(a, b domain.Item) int { return cmp.Compare(a.ID, b.ID) }

func (s *Store) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	defer s.lock(ctx)()

	items := make([]domain.Item, 0)
	for _, i := range sortedValues(s.t.items, byItemID) {
		if filter.OwnerID != nil && i.OwnerID != *filter.OwnerID {
			continue
		}
		items = append(items, i)
	}
	return window(items, filter.Limit, filter.Offset), nil
}

func (s *Store) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	defer s.lock(ctx)()

	i, ok := s.t.items[id]
	if !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	return i, nil
}

// LockItem is GetItem: a transaction already holds the whole store.
func (s *Store) LockItem(ctx context.Context, id int64) (domain.Item, error) {
	return s.GetItem(ctx, id)
}

func (s *Store) GetItemsByIDs(ctx context.Context, ids []int64) ([]domain.Item, error) {
	defer s.lock(ctx)()

	items := make([]domain.Item, 0, len(ids))
	for id := range idSet(ids) {
		if i, ok := s.t.items[id]; ok {
			items = append(items, i)
		}
	}
	return items, nil
}

func (s *Store) SearchItems(ctx context.Context, text string, limit, offset int) ([]domain.Item, error) {
	defer s.lock(ctx)()

	needle := strings.ToLower(text)
	items := make([]domain.Item, 0)
	for _, i := range sortedValues(s.t.items, byItemID) {
		if !i.Available {
			continue
		}
		if strings.Contains(strings.ToLower(i.Name), needle) ||
			strings.Contains(strings.ToLower(i.Description), needle) {
			items = append(items, i)
		}
	}
	return window(items, limit, offset), nil
}

func (s *Store) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	defer s.lock(ctx)()

	if _, ok := s.t.users[item.OwnerID]; !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	item.ID = s.t.nextID()
	s.t.items[item.ID] = item
	return item, nil
}

func (s *Store) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	defer s.lock(ctx)()

	if _, ok := s.t.items[item.ID]; !ok {
		return domain.Item{}, domain.ErrNotFound
	}
	s.t.items[item.ID] = item
	return item, nil
}

func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	defer s.lock(ctx)()

	if _, ok := s.t.items[id]; !ok {
		return domain.ErrNotFound
	}
	s.deleteItem(id)
	return nil
}

func (s *Store) ListItemsForRequests(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	defer s.lock(ctx)()

	wanted := idSet(requestIDs)
	items := make([]domain.Item, 0)
	for _, i := range sortedValues(s.t.items, byItemID) {
		if i.RequestID == nil {
			continue
		}
		if _, ok := wanted[*i.RequestID]; ok {
			items = append(items, i)
		}
	}
	return items, nil
}

func (s *Store) deleteItem(id int64) {
	delete(s.t.items, id)
	for bookingID, b := range s.t.bookings {
		if b.ItemID == id {
			delete(s.t.bookings, bookingID)
		}
	}
	for commentID, c := range s.t.comments {
		if c.ItemID == id {
			delete(s.t.comments, commentID)
		}
	}
}
