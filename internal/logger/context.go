package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const sessionIDKey ctxKey = "session_id"

// NewSessionContext attaches a freshly generated session id to ctx and
// returns it alongside the id. One session spans one storefront run.
func NewSessionContext(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return WithSessionID(ctx, id), id
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

func SessionIDFrom(ctx context.Context) string {
	if v := ctx.Value(sessionIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// FromCtx returns logger with session_id automatically added
func FromCtx(ctx context.Context) *zap.Logger {
	id := SessionIDFrom(ctx)
	if id == "" {
		return L()
	}
	return L().With(zap.String("session_id", id))
}
