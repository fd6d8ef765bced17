// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/workspace-service/internal/authorization"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage/memory"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/container"
	"github.com/canonical/workspace-service/pkg/identity"
	"github.com/canonical/workspace-service/pkg/invitation"
	"github.com/canonical/workspace-service/pkg/membership"
	"github.com/canonical/workspace-service/pkg/task"
)

func newTestRouter() http.Handler {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	s := memory.NewStorage(logger)
	guard := authorization.NewGuard(tracer, monitor, logger)

	members := membership.NewService(s, guard, tracer, monitor, logger)

	services := Services{
		Identity: identity.NewService(
			s,
			identity.NewBcryptHasher(bcrypt.MinCost),
			identity.NewJWTSigner("test-secret", "workspace-service", time.Hour),
			[]string{"root@example.com"},
			tracer, monitor, logger,
		),
		Membership: members,
		Invitation: invitation.NewService(s, members, guard, time.Hour, tracer, monitor, logger),
		Container:  container.NewService(s, guard, tracer, monitor, logger),
		Task:       task.NewService(s, guard, tracer, monitor, logger),
	}

	return NewRouter(services, nil, []string{"*"}, tracer, monitor, logger)
}

func call(t *testing.T, h http.Handler, method, path, token string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if out != nil && w.Code < http.StatusBadRequest {
		envelope := struct {
			Data json.RawMessage `json:"data"`
		}{}
		if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
			t.Fatalf("failed to decode response of %s %s: %v", method, path, err)
		}
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			t.Fatalf("failed to decode data of %s %s: %v", method, path, err)
		}
	}

	return w.Code
}

func login(t *testing.T, h http.Handler, email, name string) string {
	t.Helper()

	creds := map[string]string{"email": email, "password": "password123", "name": name}
	if code := call(t, h, http.MethodPost, "/api/v0/auth/register", "", creds, nil); code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d", email, code)
	}

	var resp identity.LoginResponse
	if code := call(t, h, http.MethodPost, "/api/v0/auth/login", "", creds, &resp); code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d", email, code)
	}

	return resp.Token
}

func TestRouter_PublicEndpoints(t *testing.T) {
	h := newTestRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{name: "status", method: http.MethodGet, path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, path: "/api/v0/version", expectedStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/api/v0/metrics", expectedStatus: http.StatusOK},
		{name: "protected without token", method: http.MethodGet, path: "/api/v0/workspaces", expectedStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/v0/unknown", expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if code := call(t, h, tt.method, tt.path, "", nil, nil); code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, code)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	h := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/v0/workspaces", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected Access-Control-Allow-Origin *, got %q", got)
	}
}

func TestRouter_InviteFlow(t *testing.T) {
	h := newTestRouter()

	alice := login(t, h, "alice@example.com", "Alice")
	bob := login(t, h, "bob@example.com", "Bob")

	var workspace types.Container
	if code := call(t, h, http.MethodPost, "/api/v0/workspaces", alice, map[string]string{"name": "Acme"}, &workspace); code != http.StatusCreated {
		t.Fatalf("create workspace: expected 201, got %d", code)
	}

	if code := call(t, h, http.MethodGet, "/api/v0/workspaces/"+workspace.ID, bob, nil, nil); code != http.StatusForbidden {
		t.Errorf("outsider view: expected 403, got %d", code)
	}

	var invite types.Invite
	if code := call(t, h, http.MethodPost, "/api/v0/containers/"+workspace.ID+"/invites", alice, map[string]string{"email": "bob@example.com"}, &invite); code != http.StatusCreated {
		t.Fatalf("issue invite: expected 201, got %d", code)
	}

	var pending []*types.PendingInvite
	if code := call(t, h, http.MethodGet, "/api/v0/invites", bob, nil, &pending); code != http.StatusOK {
		t.Fatalf("list pending: expected 200, got %d", code)
	}
	if len(pending) != 1 || pending[0].ContainerName != "Acme" {
		t.Errorf("expected one pending invite to Acme, got %+v", pending)
	}

	var consumed invitation.ConsumeResponse
	if code := call(t, h, http.MethodPost, "/api/v0/invites/consume", bob, map[string]string{"token": invite.Token}, &consumed); code != http.StatusOK {
		t.Fatalf("consume invite: expected 200, got %d", code)
	}
	if consumed.ContainerID != workspace.ID {
		t.Errorf("expected container %s, got %s", workspace.ID, consumed.ContainerID)
	}

	if code := call(t, h, http.MethodPost, "/api/v0/invites/consume", bob, map[string]string{"token": invite.Token}, nil); code != http.StatusUnauthorized {
		t.Errorf("reused invite: expected 401, got %d", code)
	}

	var workspaces []*types.Container
	if code := call(t, h, http.MethodGet, "/api/v0/workspaces", bob, nil, &workspaces); code != http.StatusOK {
		t.Fatalf("list workspaces: expected 200, got %d", code)
	}
	if len(workspaces) != 1 || workspaces[0].ID != workspace.ID {
		t.Errorf("expected bob to see workspace %s, got %+v", workspace.ID, workspaces)
	}

	if code := call(t, h, http.MethodDelete, "/api/v0/workspaces/"+workspace.ID, bob, nil, nil); code != http.StatusForbidden {
		t.Errorf("member delete: expected 403, got %d", code)
	}
}

func TestRouter_ProjectTasks(t *testing.T) {
	h := newTestRouter()

	alice := login(t, h, "alice@example.com", "Alice")

	var workspace, project types.Container
	if code := call(t, h, http.MethodPost, "/api/v0/workspaces", alice, map[string]string{"name": "Acme"}, &workspace); code != http.StatusCreated {
		t.Fatalf("create workspace: expected 201, got %d", code)
	}
	if code := call(t, h, http.MethodPost, "/api/v0/workspaces/"+workspace.ID+"/projects", alice, map[string]string{"name": "Launch"}, &project); code != http.StatusCreated {
		t.Fatalf("create project: expected 201, got %d", code)
	}

	var created types.Task
	if code := call(t, h, http.MethodPost, "/api/v0/projects/"+project.ID+"/tasks", alice, map[string]string{"title": "Write docs"}, &created); code != http.StatusCreated {
		t.Fatalf("create task: expected 201, got %d", code)
	}

	status := types.TaskCompleted
	if code := call(t, h, http.MethodPut, "/api/v0/tasks/"+created.ID, alice, types.TaskUpdate{Status: &status}, nil); code != http.StatusOK {
		t.Fatalf("update task: expected 200, got %d", code)
	}

	var detail types.ContainerDetail
	if code := call(t, h, http.MethodGet, "/api/v0/projects/"+project.ID, alice, nil, &detail); code != http.StatusOK {
		t.Fatalf("get project: expected 200, got %d", code)
	}
	if detail.Progress == nil || detail.Progress.TotalTasks != 1 || detail.Progress.CompletedTasks != 1 {
		t.Errorf("expected 1/1 tasks completed, got %+v", detail.Progress)
	}

	if code := call(t, h, http.MethodGet, "/api/v0/workspaces/"+project.ID, alice, nil, nil); code != http.StatusNotFound {
		t.Errorf("project under workspace route: expected 404, got %d", code)
	}
}

func TestRouter_PrincipalAdministration(t *testing.T) {
	h := newTestRouter()

	root := login(t, h, "root@example.com", "Root")
	alice := login(t, h, "alice@example.com", "Alice")
	bob := login(t, h, "bob@example.com", "Bob")

	var me types.Principal
	if code := call(t, h, http.MethodGet, "/api/v0/auth/me", alice, nil, &me); code != http.StatusOK {
		t.Fatalf("get me: expected 200, got %d", code)
	}

	if code := call(t, h, http.MethodGet, "/api/v0/users", alice, nil, nil); code != http.StatusForbidden {
		t.Errorf("member list principals: expected 403, got %d", code)
	}

	var principals []*types.Principal
	if code := call(t, h, http.MethodGet, "/api/v0/users", root, nil, &principals); code != http.StatusOK {
		t.Fatalf("admin list principals: expected 200, got %d", code)
	}
	if len(principals) != 3 {
		t.Errorf("expected 3 principals, got %d", len(principals))
	}

	if code := call(t, h, http.MethodGet, "/api/v0/users/"+me.ID, bob, nil, nil); code != http.StatusForbidden {
		t.Errorf("view other principal: expected 403, got %d", code)
	}
	if code := call(t, h, http.MethodGet, "/api/v0/users/"+me.ID, alice, nil, nil); code != http.StatusOK {
		t.Errorf("view own principal: expected 200, got %d", code)
	}

	var workspace types.Container
	if code := call(t, h, http.MethodPost, "/api/v0/workspaces", alice, map[string]string{"name": "Acme"}, &workspace); code != http.StatusCreated {
		t.Fatalf("create workspace: expected 201, got %d", code)
	}

	if code := call(t, h, http.MethodDelete, "/api/v0/users/"+me.ID, bob, nil, nil); code != http.StatusForbidden {
		t.Errorf("member delete other: expected 403, got %d", code)
	}
	if code := call(t, h, http.MethodDelete, "/api/v0/users/"+me.ID, alice, nil, nil); code != http.StatusConflict {
		t.Errorf("sole admin self delete: expected 409, got %d", code)
	}
	if code := call(t, h, http.MethodDelete, "/api/v0/users/"+me.ID, root, nil, nil); code != http.StatusConflict {
		t.Errorf("admin delete of sole admin: expected 409, got %d", code)
	}

	if code := call(t, h, http.MethodDelete, "/api/v0/workspaces/"+workspace.ID, alice, nil, nil); code != http.StatusOK {
		t.Fatalf("delete workspace: expected 200, got %d", code)
	}
	if code := call(t, h, http.MethodDelete, "/api/v0/users/"+me.ID, root, nil, nil); code != http.StatusOK {
		t.Fatalf("admin delete: expected 200, got %d", code)
	}

	creds := map[string]string{"email": "alice@example.com", "password": "password123"}
	if code := call(t, h, http.MethodPost, "/api/v0/auth/login", "", creds, nil); code != http.StatusUnauthorized {
		t.Errorf("login after delete: expected 401, got %d", code)
	}
}
