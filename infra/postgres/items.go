package postgres

import (
	"context"
	"strings"

	"shareit/domain"

	sq "github.com/Masterminds/squirrel"
)

var itemColumns = []string{"id", "owner_id", "name", "description", "available", "request_id", "created_at"}

func selectItems() sq.SelectBuilder {
	return psql.Select(itemColumns...).From("items")
}

func (r *PgRepository) ListItems(ctx context.Context, filter domain.ItemFilter) ([]domain.Item, error) {
	qb := selectItems().OrderBy("id")
	if filter.OwnerID != nil {
		qb = qb.Where(sq.Eq{"owner_id": *filter.OwnerID})
	}
	qb = paginate(qb, filter.Limit, filter.Offset)

	items := make([]domain.Item, 0)
	err := r.selectAll(ctx, &items, qb)
	return items, err
}

func (r *PgRepository) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	var i domain.Item
	err := r.get(ctx, &i, selectItems().Where(sq.Eq{"id": id}))
	return i, err
}

func (r *PgRepository) LockItem(ctx context.Context, id int64) (domain.Item, error) {
	var i domain.Item
	err := r.get(ctx, &i, selectItems().Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
	return i, err
}

func (r *PgRepository) GetItemsByIDs(ctx context.Context, ids []int64) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	err := r.selectAll(ctx, &items, selectItems().Where(sq.Eq{"id": ids}))
	return items, err
}

func (r *PgRepository) SearchItems(ctx context.Context, text string, limit, offset int) ([]domain.Item, error) {
	pattern := "%" + escapeLike(text) + "%"
	qb := selectItems().
		Where(sq.Eq{"available": true}).
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		}).
		OrderBy("id")
	qb = paginate(qb, limit, offset)

	items := make([]domain.Item, 0)
	err := r.selectAll(ctx, &items, qb)
	return items, err
}

func (r *PgRepository) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	qb := psql.Insert("items").
		Columns("owner_id", "name", "description", "available", "request_id", "created_at").
		Values(item.OwnerID, item.Name, item.Description, item.Available, item.RequestID, item.CreatedAt).
		Suffix("RETURNING id")

	err := r.get(ctx, &item.ID, qb)
	return item, err
}

func (r *PgRepository) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	qb := psql.Update("items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("available", item.Available).
		Set("request_id", item.RequestID).
		Where(sq.Eq{"id": item.ID})

	return item, r.exec(ctx, qb)
}

func (r *PgRepository) DeleteItem(ctx context.Context, id int64) error {
	return r.exec(ctx, psql.Delete("items").Where(sq.Eq{"id": id}))
}

func (r *PgRepository) ListItemsForRequests(ctx context.Context, requestIDs []int64) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	if len(requestIDs) == 0 {
		return items, nil
	}
	err := r.selectAll(ctx, &items, selectItems().Where(sq.Eq{"request_id": requestIDs}).OrderBy("id"))
	return items, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func paginate(qb sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit > 0 {
		qb = qb.Limit(uint64(limit))
	}
	if offset > 0 {
		qb = qb.Offset(uint64(offset))
	}
	return qb
}
