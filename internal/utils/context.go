// Package utils provides general-purpose helper utilities shared by the sync
// client and the reference server: context keys, identifier and pass
// generation, the resty client wrapper and admin JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// AdminSubjectCtxKey stores the "sub" claim of an authenticated admin token.
var AdminSubjectCtxKey = contextKey("adminSubject")

// GetAdminSubjectFromContext returns the admin subject put into ctx by the
// admin auth middleware. ok is false when the value is missing, empty or of
// an unexpected type.
func GetAdminSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(AdminSubjectCtxKey).(string)
	if !ok || subject == "" {
		return "", false
	}
	return subject, true
}

// WithAdminSubject returns a copy of ctx carrying subject.
func WithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, AdminSubjectCtxKey, subject)
}
