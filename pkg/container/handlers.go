// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package container

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/apperrors"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/workspaces", a.createWorkspace)
	r.Get("/workspaces", a.listWorkspaces)
	r.Get("/workspaces/{id}", a.get(types.KindWorkspace))
	r.Put("/workspaces/{id}", a.update(types.KindWorkspace))
	r.Delete("/workspaces/{id}", a.delete(types.KindWorkspace))
	r.Post("/workspaces/{id}/projects", a.createProject)
	r.Get("/workspaces/{id}/projects", a.listProjects)

	r.Get("/projects/{id}", a.get(types.KindProject))
	r.Put("/projects/{id}", a.update(types.KindProject))
	r.Delete("/projects/{id}", a.delete(types.KindProject))
}

func (a *API) requester(w http.ResponseWriter, r *http.Request) (string, bool) {
	principalID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
	}
	return principalID, ok
}

func (a *API) decode(w http.ResponseWriter, r *http.Request) (*types.ContainerInput, bool) {
	in := new(types.ContainerInput)
	if err := httptypes.DecodeJSON(r, in, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return nil, false
	}
	return in, true
}

func (a *API) createWorkspace(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "container.API.createWorkspace")
	defer span.End()

	creator, ok := a.requester(w, r)
	if !ok {
		return
	}

	in, ok := a.decode(w, r)
	if !ok {
		return
	}

	workspace, err := a.service.CreateWorkspace(ctx, in, creator)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, workspace, "workspace created")
}

func (a *API) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "container.API.listWorkspaces")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	workspaces, err := a.service.ListWorkspaces(ctx, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, workspaces, "")
}

func (a *API) createProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "container.API.createProject")
	defer span.End()

	creator, ok := a.requester(w, r)
	if !ok {
		return
	}

	in, ok := a.decode(w, r)
	if !ok {
		return
	}

	project, err := a.service.CreateProject(ctx, chi.URLParam(r, "id"), in, creator)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, project, "project created")
}

func (a *API) listProjects(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "container.API.listProjects")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	projects, err := a.service.ListProjects(ctx, chi.URLParam(r, "id"), requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, projects, "")
}

func (a *API) get(kind types.ContainerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "container.API.get")
		defer span.End()

		requestedBy, ok := a.requester(w, r)
		if !ok {
			return
		}

		detail, err := a.service.Get(ctx, kind, chi.URLParam(r, "id"), requestedBy)
		if err != nil {
			httptypes.WriteError(w, err, a.logger)
			return
		}

		httptypes.WriteJSON(w, http.StatusOK, detail, "")
	}
}

func (a *API) update(kind types.ContainerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "container.API.update")
		defer span.End()

		requestedBy, ok := a.requester(w, r)
		if !ok {
			return
		}

		in, ok := a.decode(w, r)
		if !ok {
			return
		}

		updated, err := a.service.Update(ctx, kind, chi.URLParam(r, "id"), in, requestedBy)
		if err != nil {
			httptypes.WriteError(w, err, a.logger)
			return
		}

		httptypes.WriteJSON(w, http.StatusOK, updated, string(kind)+" updated")
	}
}

func (a *API) delete(kind types.ContainerKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := a.tracer.Start(r.Context(), "container.API.delete")
		defer span.End()

		requestedBy, ok := a.requester(w, r)
		if !ok {
			return
		}

		if err := a.service.Delete(ctx, kind, chi.URLParam(r, "id"), requestedBy); err != nil {
			httptypes.WriteError(w, err, a.logger)
			return
		}

		httptypes.WriteJSON(w, http.StatusOK, nil, string(kind)+" deleted")
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.logger = logger

	return a
}
