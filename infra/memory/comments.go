package memory

import (
	"cmp"
	"context"

	"shareit/domain"
)

func byCreated(a, b domain.Comment) int {
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// withAuthor joins the author name the way the SQL adapter does.
func (s *Store) withAuthor(c domain.Comment) domain.Comment {
	c.AuthorName = s.t.users[c.AuthorID].Name
	return c
}

func (s *Store) ListCommentsForItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	defer s.lock(ctx)()

	wanted := idSet(itemIDs)
	comments := make([]domain.Comment, 0)
	for _, c := range sortedValues(s.t.comments, byCreated) {
		if _, ok := wanted[c.ItemID]; ok {
			comments = append(comments, s.withAuthor(c))
		}
	}
	return comments, nil
}

func (s *Store) ListComments(ctx context.Context, itemID int64, limit, offset int) ([]domain.Comment, error) {
	defer s.lock(ctx)()

	comments := make([]domain.Comment, 0)
	for _, c := range sortedValues(s.t.comments, byCreated) {
		if c.ItemID == itemID {
			comments = append(comments, s.withAuthor(c))
		}
	}
	return window(comments, limit, offset), nil
}

func (s *Store) CountComments(ctx context.Context, itemID int64) (int, error) {
	defer s.lock(ctx)()

	n := 0
	for _, c := range s.t.comments {
		if c.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

func (s *Store) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	defer s.lock(ctx)()

	if _, ok := s.t.items[comment.ItemID]; !ok {
		return domain.Comment{}, domain.ErrNotFound
	}
	comment.ID = s.t.nextID()
	s.t.comments[comment.ID] = comment
	return s.withAuthor(comment), nil
}
