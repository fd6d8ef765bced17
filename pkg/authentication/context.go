// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/canonical/workspace-service/internal/types"
)

// Define a private custom type to avoid collisions
type contextKey struct{}

var claimsContextKey = contextKey{}

// WithClaims returns a new context carrying the resolved session claims.
func WithClaims(ctx context.Context, claims *types.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetClaims retrieves the session claims from the context.
func GetClaims(ctx context.Context) (*types.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*types.Claims)
	return claims, ok && claims != nil
}

// GetUserID retrieves the principal ID from the context.
// Returns an empty string and false if no principal is present.
func GetUserID(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.PrincipalID, claims.PrincipalID != ""
}
