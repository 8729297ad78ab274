package events

import (
	"context"

	"shareit/pkg/ctxutil"

	"go.uber.org/zap"
)

// Publisher defines the interface for publishing domain events
type Publisher interface {
	// Publish publishes an event to the message broker
	Publish(ctx context.Context, exchange string, event *Event, headers Headers) error

	// Service names the publishing service in event headers
	Service() string

	// Close closes the publisher connection
	Close() error
}

// Emit publishes a v1 event if p is non-nil. Failures are logged and dropped so
// that a broker outage never fails a committed request.
func Emit(ctx context.Context, p Publisher, exchange, name string, payload any) {
	if p == nil {
		return
	}

	headers := NewHeaders(p.Service(), ctxutil.RequestIDFromCtx(ctx))
	event := NewEvent(name, EventVersionV1, payload, headers)

	if err := p.Publish(ctx, exchange, event, headers); err != nil {
		zap.L().Error("Failed to publish event",
			zap.String("event", name),
			zap.String("exchange", exchange),
			zap.Error(err),
		)
	}
}
