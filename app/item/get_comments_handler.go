package item

import (
	"context"

	"shareit/app"
	"shareit/domain"
)

type GetCommentsHandler struct {
	repository Repository
}

func NewGetCommentsHandler(repository Repository) *GetCommentsHandler {
	return &GetCommentsHandler{
		repository: repository,
	}
}

type GetCommentsRequest struct {
	ItemID int64 `params:"id"`
	From   int   `query:"from"`
	Size   int   `query:"size"`
}

func (r *GetCommentsRequest) Defaults() {
	r.Size = domain.DefaultPageSize
}

type GetCommentsResponse struct {
	Comments   []CommentResponse `json:"comments"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalItems int               `json:"totalItems"`
	TotalPages int               `json:"totalPages"`
}

func (h *GetCommentsHandler) Handle(ctx context.Context, req *GetCommentsRequest) (*GetCommentsResponse, error) {
	page, err := app.Page("comments.index", req.From, req.Size)
	if err != nil {
		return nil, err
	}

	var (
		comments   []domain.Comment
		totalItems int
	)
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		if _, err := h.repository.GetItem(ctx, req.ItemID); err != nil {
			return app.LookupError(err, "comments.index.item", "Item", req.ItemID)
		}

		var err error
		comments, err = h.repository.ListComments(ctx, req.ItemID, page.Limit(), page.Offset())
		if err != nil {
			return err
		}
		totalItems, err = h.repository.CountComments(ctx, req.ItemID)
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "comments.index.failed", "Comments repository failed to retrieve comments")
	}

	totalPages := (totalItems + page.Size - 1) / page.Size

	return &GetCommentsResponse{
		Comments:   toCommentResponses(comments),
		Page:       page.Number(),
		PageSize:   page.Size,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}, nil
}
