// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

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

func serve(svc ServiceInterface, principalID string, req *http.Request) *httptest.ResponseRecorder {
	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if principalID != "" {
				r = r.WithContext(authentication.WithClaims(r.Context(), &types.Claims{PrincipalID: principalID}))
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
	completed := types.TaskCompleted

	tests := []struct {
		name           string
		method         string
		path           string
		body           interface{}
		principal      string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "unauthenticated",
			method:         http.MethodGet,
			path:           "/tasks",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedKind:   "MissingToken",
		},
		{
			name:      "create",
			method:    http.MethodPost,
			path:      "/projects/p1/tasks",
			body:      types.TaskInput{Title: "T"},
			principal: "bob",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Create(gomock.Any(), "p1", &types.TaskInput{Title: "T"}, "bob").Return(&types.Task{ID: "t1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "create bad priority",
			method:         http.MethodPost,
			path:           "/projects/p1/tasks",
			body:           types.TaskInput{Title: "T", Priority: "Urgent"},
			principal:      "bob",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "ValidationError",
		},
		{
			name:      "list by project denied",
			method:    http.MethodGet,
			path:      "/projects/p1/tasks",
			principal: "carol",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListByProject(gomock.Any(), "p1", "carol").Return(nil, apperrors.ErrAccessDenied)
			},
			expectedStatus: http.StatusForbidden,
			expectedKind:   "AccessDenied",
		},
		{
			name:      "list assigned",
			method:    http.MethodGet,
			path:      "/tasks",
			principal: "bob",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListAssigned(gomock.Any(), "bob").Return([]*types.Task{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "get missing",
			method:    http.MethodGet,
			path:      "/tasks/t9",
			principal: "bob",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Get(gomock.Any(), "t9", "bob").Return(nil, errTaskNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   "NotFound",
		},
		{
			name:      "update",
			method:    http.MethodPut,
			path:      "/tasks/t1",
			body:      types.TaskUpdate{Status: &completed},
			principal: "bob",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Update(gomock.Any(), "t1", &types.TaskUpdate{Status: &completed}, "bob").Return(&types.Task{ID: "t1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "assign outsider",
			method:    http.MethodPost,
			path:      "/tasks/t1/assign",
			body:      AssignRequest{AssigneeID: "carol"},
			principal: "alice",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Assign(gomock.Any(), "t1", "carol", "alice").Return(nil, errNotAssignable)
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   "MemberNotFound",
		},
		{
			name:      "delete",
			method:    http.MethodDelete,
			path:      "/tasks/t1",
			principal: "alice",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Delete(gomock.Any(), "t1", "alice").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "add comment",
			method:    http.MethodPost,
			path:      "/tasks/t1/comments",
			body:      CommentRequest{Message: "hi"},
			principal: "bob",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().AddComment(gomock.Any(), "t1", "hi", "bob").Return(&types.Comment{ID: "c1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:      "resolve comment",
			method:    http.MethodPut,
			path:      "/tasks/t1/comments/c1",
			body:      CommentStatusRequest{Status: types.CommentResolved},
			principal: "bob",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().SetCommentStatus(gomock.Any(), "t1", "c1", types.CommentResolved, "bob").Return(&types.Comment{ID: "c1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad comment status",
			method:         http.MethodPut,
			path:           "/tasks/t1/comments/c1",
			body:           CommentStatusRequest{Status: "Closed"},
			principal:      "bob",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "ValidationError",
		},
		{
			name:      "delete comment denied",
			method:    http.MethodDelete,
			path:      "/tasks/t1/comments/c1",
			principal: "bob",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeleteComment(gomock.Any(), "t1", "c1", "bob").Return(apperrors.ErrAccessDenied)
			},
			expectedStatus: http.StatusForbidden,
			expectedKind:   "AccessDenied",
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

			w := serve(mockSvc, tt.principal, httptest.NewRequest(tt.method, tt.path, &body))

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
