// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"bytes"
	"context"
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

func newTestRouter(svc ServiceInterface, claims *types.Claims) *chi.Mux {
	api := NewAPI(svc, tracing.NewNoopTracer(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterPublicEndpoints(mux)
	mux.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if claims != nil {
					r = r.WithContext(authentication.WithClaims(r.Context(), claims))
				}
				next.ServeHTTP(w, r)
			})
		})
		api.RegisterEndpoints(r)
	})

	return mux
}

func TestAPI_Register(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: RegisterRequest{Email: "alice@example.com", Password: "password123", Name: "Alice"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Register(gomock.Any(), "alice@example.com", "password123", "Alice").Return(&types.Principal{ID: "p1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid request body",
			requestBody:    "not-json",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing fields",
			requestBody:    RegisterRequest{Email: "alice@example.com"},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "email taken",
			requestBody: RegisterRequest{Email: "alice@example.com", Password: "password123", Name: "Alice"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrAlreadyExists)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			w := httptest.NewRecorder()

			newTestRouter(mockSvc, nil).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAPI_Login(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedToken  string
	}{
		{
			name: "success",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Authenticate(gomock.Any(), "alice@example.com", "password123").Return("token-1", &types.Principal{ID: "p1"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedToken:  "token-1",
		},
		{
			name: "invalid credentials",
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Authenticate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", nil, apperrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			body, _ := json.Marshal(LoginRequest{Email: "alice@example.com", Password: "password123"})
			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
			w := httptest.NewRecorder()

			newTestRouter(mockSvc, nil).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedToken == "" {
				return
			}

			var resp struct {
				Data LoginResponse `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Data.Token != tt.expectedToken {
				t.Errorf("expected token %s, got %s", tt.expectedToken, resp.Data.Token)
			}
		})
	}
}

func TestAPI_Me(t *testing.T) {
	tests := []struct {
		name           string
		claims         *types.Claims
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "no principal",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedKind:   "MissingToken",
		},
		{
			name:   "success",
			claims: &types.Claims{PrincipalID: "p1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GetPrincipal(gomock.Any(), "p1").Return(&types.Principal{ID: "p1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "principal gone",
			claims: &types.Claims{PrincipalID: "p1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().GetPrincipal(gomock.Any(), "p1").Return(nil, apperrors.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedKind:   "NotFound",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/auth/me", nil)
			w := httptest.NewRecorder()

			newTestRouter(mockSvc, tt.claims).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedKind != "" {
				var body httptypes.ErrorResponse
				_ = json.NewDecoder(w.Body).Decode(&body)
				if body.Kind != tt.expectedKind {
					t.Errorf("expected kind %s, got %s", tt.expectedKind, body.Kind)
				}
			}
		})
	}
}

func TestAPI_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().UpdateProfile(gomock.Any(), "p1", "Alice B", "").Return(&types.Principal{ID: "p1", Name: "Alice B"}, nil)

	body, _ := json.Marshal(ProfileRequest{Name: "Alice B"})
	req := httptest.NewRequest(http.MethodPut, "/auth/me", bytes.NewReader(body))
	w := httptest.NewRecorder()

	newTestRouter(mockSvc, &types.Claims{PrincipalID: "p1"}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAPI_VerifyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockServiceInterface(ctrl)
	mockSvc.EXPECT().VerifyPassword(gomock.Any(), "p1", "nope").Return(apperrors.ErrInvalidCredentials)

	body, _ := json.Marshal(VerifyPasswordRequest{Password: "nope"})
	req := httptest.NewRequest(http.MethodPost, "/auth/verify-password", bytes.NewReader(body))
	w := httptest.NewRecorder()

	newTestRouter(mockSvc, &types.Claims{PrincipalID: "p1"}).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAPI_Principals(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		claims         *types.Claims
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedKind   string
	}{
		{
			name:           "list without session",
			method:         http.MethodGet,
			path:           "/users",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedKind:   "MissingToken",
		},
		{
			name:   "list as admin",
			method: http.MethodGet,
			path:   "/users",
			claims: &types.Claims{PrincipalID: "root", Role: types.RoleAdmin},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListPrincipals(gomock.Any(), "root").Return([]*types.Principal{{ID: "root"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list all as admin",
			method: http.MethodGet,
			path:   "/users/all",
			claims: &types.Claims{PrincipalID: "root", Role: types.RoleAdmin},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListPrincipals(gomock.Any(), "root").Return([]*types.Principal{{ID: "root"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "list as member",
			method: http.MethodGet,
			path:   "/users",
			claims: &types.Claims{PrincipalID: "p1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().ListPrincipals(gomock.Any(), "p1").Return(nil, apperrors.ErrAccessDenied)
			},
			expectedStatus: http.StatusForbidden,
			expectedKind:   "AccessDenied",
		},
		{
			name:   "get",
			method: http.MethodGet,
			path:   "/users/p2",
			claims: &types.Claims{PrincipalID: "root"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().LookupPrincipal(gomock.Any(), "p2", "root").Return(&types.Principal{ID: "p2"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "delete sole admin",
			method: http.MethodDelete,
			path:   "/users/p1",
			claims: &types.Claims{PrincipalID: "p1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeletePrincipal(gomock.Any(), "p1", "p1").Return(apperrors.ErrLastAdminProtected)
			},
			expectedStatus: http.StatusConflict,
			expectedKind:   "LastAdminProtected",
		},
		{
			name:   "delete",
			method: http.MethodDelete,
			path:   "/users/p1",
			claims: &types.Claims{PrincipalID: "p1"},
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().DeletePrincipal(gomock.Any(), "p1", "p1").Return(nil)
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

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			newTestRouter(mockSvc, tt.claims).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedKind != "" {
				var body httptypes.ErrorResponse
				_ = json.NewDecoder(w.Body).Decode(&body)
				if body.Kind != tt.expectedKind {
					t.Errorf("expected kind %s, got %s", tt.expectedKind, body.Kind)
				}
			}
		})
	}
}
