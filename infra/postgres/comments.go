package postgres

import (
	"context"

	"shareit/domain"

	sq "github.com/Masterminds/squirrel"
)

func selectComments() sq.SelectBuilder {
	return psql.Select(
		"c.id", "c.item_id", "c.author_id", "u.name AS author_name", "c.text", "c.created_at",
	).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		OrderBy("c.created_at", "c.id")
}

func (r *PgRepository) ListCommentsForItems(ctx context.Context, itemIDs []int64) ([]domain.Comment, error) {
	comments := make([]domain.Comment, 0)
	if len(itemIDs) == 0 {
		return comments, nil
	}
	err := r.selectAll(ctx, &comments, selectComments().Where(sq.Eq{"c.item_id": itemIDs}))
	return comments, err
}

func (r *PgRepository) ListComments(ctx context.Context, itemID int64, limit, offset int) ([]domain.Comment, error) {
	qb := paginate(selectComments().Where(sq.Eq{"c.item_id": itemID}), limit, offset)

	comments := make([]domain.Comment, 0)
	err := r.selectAll(ctx, &comments, qb)
	return comments, err
}

func (r *PgRepository) CountComments(ctx context.Context, itemID int64) (int, error) {
	var count int
	err := r.get(ctx, &count, psql.Select("COUNT(*)").From("comments").Where(sq.Eq{"item_id": itemID}))
	return count, err
}

func (r *PgRepository) CreateComment(ctx context.Context, comment domain.Comment) (domain.Comment, error) {
	qb := psql.Insert("comments").
		Columns("item_id", "author_id", "text", "created_at").
		Values(comment.ItemID, comment.AuthorID, comment.Text, comment.CreatedAt).
		Suffix("RETURNING id")

	if err := r.get(ctx, &comment.ID, qb); err != nil {
		return domain.Comment{}, err
	}

	author, err := r.GetUser(ctx, comment.AuthorID)
	if err != nil {
		return domain.Comment{}, err
	}
	comment.AuthorName = author.Name
	return comment, nil
}
