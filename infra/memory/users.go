package memory

import (
	"cmp"
	"context"

	"shareit/domain"
)

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	defer s.lock(ctx)()

	return sortedValues(s.t.users, func(a, b domain.User) int { return cmp.Compare(a.ID, b.ID) }), nil
}

func (s *Store) GetUser(ctx context.Context, id int64) (domain.User, error) {
	defer s.lock(ctx)()

	u, ok := s.t.users[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}

func (s *Store) GetUsersByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	defer s.lock(ctx)()

	users := make([]domain.User, 0, len(ids))
	for id := range idSet(ids) {
		if u, ok := s.t.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *Store) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	defer s.lock(ctx)()

	if s.emailTaken(user.Email, 0) {
		return domain.User{}, domain.ErrAlreadyExists
	}
	user.ID = s.t.nextID()
	s.t.users[user.ID] = user
	return user, nil
}

func (s *Store) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	defer s.lock(ctx)()

	if _, ok := s.t.users[user.ID]; !ok {
		return domain.User{}, domain.ErrNotFound
	}
	if s.emailTaken(user.Email, user.ID) {
		return domain.User{}, domain.ErrAlreadyExists
	}
	s.t.users[user.ID] = user
	return user, nil
}

// DeleteUser cascades to the user's items, bookings, comments and requests.
func (s *Store) DeleteUser(ctx context.Context, id int64) error {
	defer s.lock(ctx)()

	if _, ok := s.t.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.t.users, id)

	for itemID, i := range s.t.items {
		if i.OwnerID == id {
			s.deleteItem(itemID)
		}
	}
	for bookingID, b := range s.t.bookings {
		if b.BookerID == id {
			delete(s.t.bookings, bookingID)
		}
	}
	for commentID, c := range s.t.comments {
		if c.AuthorID == id {
			delete(s.t.comments, commentID)
		}
	}
	for requestID, r := range s.t.requests {
		if r.RequesterID == id {
			s.deleteRequest(requestID)
		}
	}
	return nil
}

func (s *Store) emailTaken(email string, exceptID int64) bool {
	for _, u := range s.t.users {
		if u.Email == email && u.ID != exceptID {
			return true
		}
	}
	return false
}
