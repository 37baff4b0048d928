package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UIDCtxKey stores the authenticated account uid in a request context.
var UIDCtxKey = contextKey("uid")

// GetUIDFromContext returns the account uid placed by the auth middleware.
func GetUIDFromContext(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(UIDCtxKey).(string)
	return uid, ok && uid != ""
}
