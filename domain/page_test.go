package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageRejectsInvalidBounds(t *testing.T) {
	_, err := NewPage(-1, 10)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewPage(0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPageSnapsToPageBoundaries(t *testing.T) {
	tests := []struct {
		from, size, offset int
	}{
		{0, 10, 0},
		{10, 10, 10},
		{5, 10, 0},
		{15, 10, 10},
		{3, 2, 2},
	}
	for _, tt := range tests {
		p, err := NewPage(tt.from, tt.size)
		require.NoError(t, err)
		assert.Equal(t, tt.offset, p.Offset(), "from=%d size=%d", tt.from, tt.size)
		assert.Equal(t, tt.size, p.Limit())
	}
}
