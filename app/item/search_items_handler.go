package item

import (
	"context"
	"strings"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/httperror"
)

type SearchItemsHandler struct {
	repository Repository
}

func NewSearchItemsHandler(repository Repository) *SearchItemsHandler {
	return &SearchItemsHandler{
		repository: repository,
	}
}

type SearchItemsRequest struct {
	// Text is nil when the parameter is missing, as opposed to present and blank.
	Text *string `query:"-"`
	From int     `query:"from"`
	Size int     `query:"size"`
}

func (r *SearchItemsRequest) Defaults() {
	r.Size = domain.DefaultPageSize
}

type SearchItemsResponse []ItemResponse

func (h SearchItemsHandler) Handle(ctx context.Context, req *SearchItemsRequest) (*SearchItemsResponse, error) {
	if req.Text == nil {
		return nil, httperror.BadRequest("item.search.missing_text", "Search text is required", nil)
	}

	page, err := app.Page("item.search", req.From, req.Size)
	if err != nil {
		return nil, err
	}

	text := *req.Text
	if strings.TrimSpace(text) == "" {
		return &SearchItemsResponse{}, nil
	}

	var items []domain.Item
	err = h.repository.RunInReadOnlyTx(ctx, func(ctx context.Context) error {
		var err error
		items, err = h.repository.SearchItems(ctx, text, page.Limit(), page.Offset())
		return err
	})
	if err != nil {
		return nil, app.StorageError(err, "item.search.failed", "Failed to search items")
	}

	res := SearchItemsResponse(toItemResponses(items))
	return &res, nil
}
