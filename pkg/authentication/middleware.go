// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	"github.com/canonical/workspace-service/internal/apperrors"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type Middleware struct {
	resolver TokenResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			if r.Header.Get("Authorization") == "" {
				httptypes.WriteError(w, apperrors.ErrMissingToken, m.logger)
				return
			}

			token, found := m.getBearerToken(r.Header)
			if !found {
				httptypes.WriteError(w, apperrors.ErrInvalidToken, m.logger)
				return
			}

			claims, err := m.resolver.ResolveToken(ctx, token)
			if err != nil {
				m.logger.Debugf("token resolution failed: %v", err)
				httptypes.WriteError(w, unauthorized(err), m.logger)
				return
			}

			ctx = WithClaims(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized keeps resolver failures inside the 401 category.
func unauthorized(err error) error {
	switch apperrors.KindOf(err) {
	case apperrors.KindMissingToken, apperrors.KindInvalidToken:
		return err
	default:
		return apperrors.ErrInvalidToken
	}
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")
	if bearer == "" {
		return "", false
	}

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	return strings.TrimPrefix(bearer, "Bearer "), true
}

func NewMiddleware(resolver TokenResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		resolver: resolver,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
