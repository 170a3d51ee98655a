package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, Token(ctx))

	ctx = WithToken(ctx, "tok-123")
	assert.Equal(t, "tok-123", Token(ctx))

	// Innermost token wins.
	assert.Equal(t, "tok-456", Token(WithToken(ctx, "tok-456")))
}
