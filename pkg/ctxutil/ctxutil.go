package ctxutil

import "context"

type ctxKey string

const (
	userIDKey    ctxKey = "sharer_user_id"
	requestIDKey ctxKey = "request_id"
)

// WithUserID stores the caller identity taken from the X-Sharer-User-Id header.
func WithUserID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx returns false when the caller did not identify itself.
func UserIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
