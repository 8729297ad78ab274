package item

import (
	"context"
	"time"

	"shareit/domain"
	"shareit/pkg/events"
)

func publishItemEvent(ctx context.Context, publisher events.Publisher, name string, item domain.Item) {
	events.Emit(ctx, publisher, events.ItemExchange, name, events.ItemPayload{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
		At:          time.Now().UTC(),
	})
}
