// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/apperrors"
	httptypes "github.com/canonical/workspace-service/internal/http/types"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/pkg/authentication"
)

type IssueRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ConsumeRequest struct {
	Token string `json:"token" validate:"required"`
}

type ConsumeResponse struct {
	ContainerID string `json:"container_id"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/containers/{id}/invites", a.issue)
	r.Get("/containers/{id}/invites", a.listForContainer)
	r.Delete("/containers/{id}/invites/{token}", a.revoke)
	r.Post("/invites/consume", a.consume)
	r.Get("/invites", a.listPending)
}

func (a *API) issue(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.issue")
	defer span.End()

	requestedBy, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	var req IssueRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	invite, err := a.service.Issue(ctx, chi.URLParam(r, "id"), req.Email, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, invite, "invitation sent")
}

func (a *API) listForContainer(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.listForContainer")
	defer span.End()

	requestedBy, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	invites, err := a.service.ListForContainer(ctx, chi.URLParam(r, "id"), requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, invites, "")
}

func (a *API) revoke(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.revoke")
	defer span.End()

	requestedBy, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	if err := a.service.Revoke(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "token"), requestedBy); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "invitation revoked")
}

func (a *API) consume(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.consume")
	defer span.End()

	principalID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	var req ConsumeRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	containerID, err := a.service.Consume(ctx, req.Token, principalID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, ConsumeResponse{ContainerID: containerID}, "successfully joined")
}

// listPending lists the invites addressed to the caller's own email.
func (a *API) listPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.listPending")
	defer span.End()

	claims, ok := authentication.GetClaims(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	invites, err := a.service.ListPendingForEmail(ctx, claims.Email)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, invites, "")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.logger = logger

	return a
}
