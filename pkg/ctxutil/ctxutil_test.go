package ctxutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	_, ok := UserIDFromCtx(context.Background())
	assert.False(t, ok)

	ctx := WithUserID(context.Background(), 42)
	id, ok := UserIDFromCtx(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestIDFromCtx(context.Background()))
	assert.Equal(t, "abc", RequestIDFromCtx(WithRequestID(context.Background(), "abc")))
}
