package item

import (
	"context"
	"strings"
	"time"

	"shareit/app"
	"shareit/domain"
	"shareit/pkg/events"
	"shareit/pkg/httperror"

	"go.uber.org/zap"
)

type CreateCommentHandler struct {
	repository     Repository
	eventPublisher events.Publisher
}

func NewCreateCommentHandler(repository Repository, eventPublisher events.Publisher) *CreateCommentHandler {
	return &CreateCommentHandler{
		repository:     repository,
		eventPublisher: eventPublisher,
	}
}

type CreateCommentRequest struct {
	ItemID int64  `params:"id"`
	Text   string `json:"text" validate:"required,notblank,max=300"`
}

type CreateCommentResponse struct {
	CommentResponse
}

// Handle accepts a comment once any booking of the item has started. The
// booking does not have to belong to the author.
func (h *CreateCommentHandler) Handle(ctx context.Context, req *CreateCommentRequest) (*CreateCommentResponse, error) {
	authorID, err := app.CallerID(ctx, "comments.create")
	if err != nil {
		return nil, err
	}

	req.Text = strings.TrimSpace(req.Text)
	if err := app.Validate("comments.create", req); err != nil {
		return nil, err
	}

	var comment domain.Comment
	err = h.repository.RunInTx(ctx, func(ctx context.Context) error {
		author, err := h.repository.GetUser(ctx, authorID)
		if err != nil {
			return app.LookupError(err, "comments.create.author", "User", authorID)
		}

		item, err := h.repository.GetItem(ctx, req.ItemID)
		if err != nil {
			return app.LookupError(err, "comments.create.item", "Item", req.ItemID)
		}

		now := time.Now().UTC()
		rented, err := h.repository.HasStartedBooking(ctx, item.ID, now)
		if err != nil {
			return err
		}
		if !rented {
			return httperror.BadRequest(
				"comments.create.not_rented",
				"Item has not been rented yet",
				nil,
			)
		}

		comment, err = h.repository.CreateComment(ctx, domain.Comment{
			ItemID:    item.ID,
			AuthorID:  author.ID,
			Text:      req.Text,
			CreatedAt: now,
		})
		if err != nil {
			return err
		}
		comment.AuthorName = author.Name
		return nil
	})
	if err != nil {
		return nil, app.StorageError(err, "comments.create.internal_error", "Failed to create comment")
	}

	zap.L().Info("Comment created", zap.Int64("commentId", comment.ID), zap.Int64("itemId", comment.ItemID))
	h.publishEvent(ctx, comment)

	return &CreateCommentResponse{
		CommentResponse: toCommentResponse(comment),
	}, nil
}

func (h *CreateCommentHandler) publishEvent(ctx context.Context, comment domain.Comment) {
	events.Emit(ctx, h.eventPublisher, events.ItemExchange, events.ItemCommentCreatedEvent, events.CommentCreatedPayload{
		ID:        comment.ID,
		ItemID:    comment.ItemID,
		AuthorID:  comment.AuthorID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	})
}
