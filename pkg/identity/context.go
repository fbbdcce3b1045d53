// Package identity resolves the calling user from the X-Sharer-User-Id header.
// There is no authentication: any caller may assert any user id. Services are
// responsible for checking that the asserted user actually exists.
package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const userIDKey contextKey = "sharer_user_id"

// ErrUserIDNotFound is returned when no user id exists in the request context.
var ErrUserIDNotFound = errors.New("user id not found in context")

// UserIDFromCtx extracts the asserted user id from the request context.
// Returns uuid.Nil and ErrUserIDNotFound if no id is set.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, ErrUserIDNotFound
	}
	return id, nil
}

// WithUserID returns a new context with the given user id attached.
// Used by the header middleware after parsing X-Sharer-User-Id.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}
