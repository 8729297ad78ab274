package postgres

import (
	"context"

	"shareit/domain"

	sq "github.com/Masterminds/squirrel"
)

var requestColumns = []string{"id", "requester_id", "description", "created_at"}

func selectRequests() sq.SelectBuilder {
	return psql.Select(requestColumns...).From("item_requests")
}

func (r *PgRepository) ListRequestsByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	qb := selectRequests().Where(sq.Eq{"requester_id": requesterID}).OrderBy("created_at", "id")

	requests := make([]domain.ItemRequest, 0)
	err := r.selectAll(ctx, &requests, qb)
	return requests, err
}

func (r *PgRepository) ListOtherRequests(ctx context.Context, requesterID int64, limit, offset int) ([]domain.ItemRequest, error) {
	qb := selectRequests().Where(sq.NotEq{"requester_id": requesterID}).OrderBy("created_at DESC", "id DESC")
	qb = paginate(qb, limit, offset)

	requests := make([]domain.ItemRequest, 0)
	err := r.selectAll(ctx, &requests, qb)
	return requests, err
}

func (r *PgRepository) GetRequest(ctx context.Context, id int64) (domain.ItemRequest, error) {
	var req domain.ItemRequest
	err := r.get(ctx, &req, selectRequests().Where(sq.Eq{"id": id}))
	return req, err
}

func (r *PgRepository) CreateRequest(ctx context.Context, request domain.ItemRequest) (domain.ItemRequest, error) {
	qb := psql.Insert("item_requests").
		Columns("requester_id", "description", "created_at").
		Values(request.RequesterID, request.Description, request.CreatedAt).
		Suffix("RETURNING id")

	err := r.get(ctx, &request.ID, qb)
	return request, err
}

func (r *PgRepository) DeleteRequest(ctx context.Context, id int64) error {
	return r.exec(ctx, psql.Delete("item_requests").Where(sq.Eq{"id": id}))
}
