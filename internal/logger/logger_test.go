package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionContext(t *testing.T) {
	t.Run("NewSessionContextGeneratesID", func(t *testing.T) {
		ctx, id := NewSessionContext(context.Background())
		require.NotEmpty(t, id)
		assert.Equal(t, id, SessionIDFrom(ctx))
	})

	t.Run("SessionIDsAreUnique", func(t *testing.T) {
		_, first := NewSessionContext(context.Background())
		_, second := NewSessionContext(context.Background())
		assert.NotEqual(t, first, second)
	})

	t.Run("MissingSessionID", func(t *testing.T) {
		assert.Empty(t, SessionIDFrom(context.Background()))
	})
}

func TestFromCtx(t *testing.T) {
	Init("development")

	t.Run("WithoutSessionReturnsGlobal", func(t *testing.T) {
		assert.NotNil(t, FromCtx(context.Background()))
	})

	t.Run("WithSessionReturnsLogger", func(t *testing.T) {
		ctx := WithSessionID(context.Background(), "abc")
		assert.NotNil(t, FromCtx(ctx))
	})
}
