// Package utils provides general-purpose helpers shared by the server and
// the client: context keys, token and secret primitives, JSON response
// writing, the resty HTTP client and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// EmailCtxKey is the context key under which the Auth Gate stores the
// verified email of the caller.
//
//	ctx := context.WithValue(ctx, utils.EmailCtxKey, "ana@example.com")
var EmailCtxKey = contextKey("email")

// GetEmailFromContext retrieves the verified email from ctx.
// ok is false when the value is missing, empty or of another type.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailCtxKey).(string)
	return email, ok && email != ""
}
