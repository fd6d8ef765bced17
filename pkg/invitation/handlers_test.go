// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/apperrors"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

func serve(svc ServiceInterface, claims *types.Claims, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims != nil {
				r = r.WithContext(authentication.WithClaims(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	})
	NewAPI(svc, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestAPI_Endpoints(t *testing.T) {
	alice := &types.Claims{PrincipalID: "alice", Email: "alice@example.com"}
	bob := &types.Claims{PrincipalID: "bob", Email: "bob@example.com"}

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		claims         *types.Claims
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "unauthenticated",
			method:         http.MethodPost,
			path:           "/invites/consume",
			body:           ConsumeRequest{Token: "t1"},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedKind:   "MissingToken",
		},
		{
			name:   "issue",
			method: http.MethodPost,
			path:   "/containers/w1/invites",
			body:   IssueRequest{Email: "bob@example.com"},
			claims: alice,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Issue(gomock.Any(), "w1", "bob@example.com", "alice").Return(&types.Invite{Token: "t1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "issue bad email",
			method:         http.MethodPost,
			path:           "/containers/w1/invites",
			body:           IssueRequest{Email: "bob"},
			claims:         alice,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "ValidationError",
		},
		{
			name:   "list for container denied",
			method: http.MethodGet,
			path:   "/containers/w1/invites",
			claims: bob,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListForContainer(gomock.Any(), "w1", "bob").Return(nil, apperrors.ErrAccessDenied)
			},
			expectedStatus: http.StatusForbidden,
			expectedKind:   "AccessDenied",
		},
		{
			name:   "revoke",
			method: http.MethodDelete,
			path:   "/containers/w1/invites/t1",
			claims: alice,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Revoke(gomock.Any(), "w1", "t1", "alice").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "consume",
			method: http.MethodPost,
			path:   "/invites/consume",
			body:   ConsumeRequest{Token: "t1"},
			claims: bob,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Consume(gomock.Any(), "t1", "bob").Return("w1", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "consume expired",
			method: http.MethodPost,
			path:   "/invites/consume",
			body:   ConsumeRequest{Token: "t1"},
			claims: bob,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Consume(gomock.Any(), "t1", "bob").Return("", apperrors.ErrExpiredInvite)
			},
			expectedStatus: http.StatusGone,
			expectedKind:   "ExpiredInvite",
		},
		{
			name:   "consume reused",
			method: http.MethodPost,
			path:   "/invites/consume",
			body:   ConsumeRequest{Token: "t1"},
			claims: bob,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Consume(gomock.Any(), "t1", "bob").Return("", apperrors.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedKind:   "InvalidToken",
		},
		{
			name:           "consume without token",
			method:         http.MethodPost,
			path:           "/invites/consume",
			body:           ConsumeRequest{},
			claims:         bob,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "ValidationError",
		},
		{
			name:   "pending uses caller email",
			method: http.MethodGet,
			path:   "/invites",
			claims: bob,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListPendingForEmail(gomock.Any(), "bob@example.com").Return([]*types.PendingInvite{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			var body bytes.Buffer
			if tt.body != nil {
				_ = json.NewEncoder(&body).Encode(tt.body)
			}

			w := serve(mockSvc, tt.claims, httptest.NewRequest(tt.method, tt.path, &body))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedKind != "" {
				var resp httptypes.ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Kind != tt.expectedKind {
					t.Errorf("expected kind %s, got %s", tt.expectedKind, resp.Kind)
				}
			}
		})
	}
}
