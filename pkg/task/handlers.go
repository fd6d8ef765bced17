// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package task

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

type AssignRequest struct {
	AssigneeID string `json:"assignee_id"`
}

type CommentRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

type CommentStatusRequest struct {
	Status types.CommentStatus `json:"status" validate:"required,oneof=Pending Resolved"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/projects/{id}/tasks", a.create)
	r.Get("/projects/{id}/tasks", a.listByProject)

	r.Get("/tasks", a.listAssigned)
	r.Get("/tasks/{id}", a.get)
	r.Put("/tasks/{id}", a.update)
	r.Delete("/tasks/{id}", a.delete)
	r.Post("/tasks/{id}/assign", a.assign)
	r.Post("/tasks/{id}/comments", a.addComment)
	r.Put("/tasks/{id}/comments/{commentID}", a.setCommentStatus)
	r.Delete("/tasks/{id}/comments/{commentID}", a.deleteComment)
}

func (a *API) requester(w http.ResponseWriter, r *http.Request) (string, bool) {
	principalID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
	}
	return principalID, ok
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.create")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	in := new(types.TaskInput)
	if err := httptypes.DecodeJSON(r, in, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	t, err := a.service.Create(ctx, chi.URLParam(r, "id"), in, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, t, "task created")
}

func (a *API) listByProject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.listByProject")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	tasks, err := a.service.ListByProject(ctx, chi.URLParam(r, "id"), requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, tasks, "")
}

func (a *API) listAssigned(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.listAssigned")
	defer span.End()

	principalID, ok := a.requester(w, r)
	if !ok {
		return
	}

	tasks, err := a.service.ListAssigned(ctx, principalID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, tasks, "")
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.get")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	detail, err := a.service.Get(ctx, chi.URLParam(r, "id"), requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, detail, "")
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.update")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	in := new(types.TaskUpdate)
	if err := httptypes.DecodeJSON(r, in, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	t, err := a.service.Update(ctx, chi.URLParam(r, "id"), in, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, t, "task updated")
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.delete")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	if err := a.service.Delete(ctx, chi.URLParam(r, "id"), requestedBy); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "task deleted")
}

func (a *API) assign(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.assign")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	var req AssignRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	t, err := a.service.Assign(ctx, chi.URLParam(r, "id"), req.AssigneeID, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, t, "task assigned")
}

func (a *API) addComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.addComment")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	var req CommentRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	c, err := a.service.AddComment(ctx, chi.URLParam(r, "id"), req.Message, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, c, "comment added")
}

func (a *API) setCommentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.setCommentStatus")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	var req CommentStatusRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	c, err := a.service.SetCommentStatus(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "commentID"), req.Status, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, c, "comment updated")
}

func (a *API) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "task.API.deleteComment")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteComment(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "commentID"), requestedBy); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "comment deleted")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.logger = logger

	return a
}
