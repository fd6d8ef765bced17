// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/apperrors"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_resolver.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*gomock.Controller) TokenResolverInterface
		expectedStatusCode int
		expectedKind       string
		expectedBody       string
	}{
		{
			name:       "Missing token - rejects request",
			authHeader: "",
			setupMocks: func(ctrl *gomock.Controller) TokenResolverInterface {
				return NewMockTokenResolverInterface(ctrl)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKind:       "MissingToken",
		},
		{
			name:       "Invalid token format - rejects request",
			authHeader: "InvalidToken",
			setupMocks: func(ctrl *gomock.Controller) TokenResolverInterface {
				return NewMockTokenResolverInterface(ctrl)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKind:       "InvalidToken",
		},
		{
			name:       "Token resolution fails - rejects request",
			authHeader: "Bearer invalid-token",
			setupMocks: func(ctrl *gomock.Controller) TokenResolverInterface {
				mockResolver := NewMockTokenResolverInterface(ctrl)
				mockResolver.EXPECT().ResolveToken(gomock.Any(), "invalid-token").Return(nil, apperrors.ErrInvalidToken)
				return mockResolver
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKind:       "InvalidToken",
		},
		{
			name:       "Unexpected resolver error - still unauthorized",
			authHeader: "Bearer broken-token",
			setupMocks: func(ctrl *gomock.Controller) TokenResolverInterface {
				mockResolver := NewMockTokenResolverInterface(ctrl)
				mockResolver.EXPECT().ResolveToken(gomock.Any(), "broken-token").Return(nil, fmt.Errorf("boom"))
				return mockResolver
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKind:       "InvalidToken",
		},
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			setupMocks: func(ctrl *gomock.Controller) TokenResolverInterface {
				mockResolver := NewMockTokenResolverInterface(ctrl)
				mockResolver.EXPECT().ResolveToken(gomock.Any(), "valid-token").Return(&types.Claims{PrincipalID: "user-123"}, nil)
				return mockResolver
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()

			mockResolver := tt.setupMocks(ctrl)

			middleware := NewMiddleware(mockResolver, mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				userID, _ := GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(userID))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}

			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}

			if tt.expectedKind != "" {
				var body httptypes.ErrorResponse
				if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if body.Kind != tt.expectedKind {
					t.Errorf("expected kind %q, got %q", tt.expectedKind, body.Kind)
				}
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{
			name:          "No Authorization header",
			authHeader:    "",
			expectedToken: "",
			expectedFound: false,
		},
		{
			name:          "Bearer token",
			authHeader:    "Bearer my-token-123",
			expectedToken: "my-token-123",
			expectedFound: true,
		},
		{
			name:          "Raw token without Bearer prefix",
			authHeader:    "my-token-123",
			expectedToken: "",
			expectedFound: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := NewMiddleware(NewMockTokenResolverInterface(ctrl), NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}

func TestContextClaims(t *testing.T) {
	if _, ok := GetUserID(context.Background()); ok {
		t.Errorf("expected no principal in empty context")
	}

	ctx := WithClaims(context.Background(), &types.Claims{PrincipalID: "p1", Email: "a@example.com"})

	claims, ok := GetClaims(ctx)
	if !ok || claims.Email != "a@example.com" {
		t.Errorf("expected claims to round trip, got %v", claims)
	}

	if id, ok := GetUserID(ctx); !ok || id != "p1" {
		t.Errorf("expected p1, got %q", id)
	}
}
