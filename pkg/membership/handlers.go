// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package membership

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

type AddMemberRequest struct {
	PrincipalID string     `json:"principal_id" validate:"required"`
	Role        types.Role `json:"role" validate:"omitempty,oneof=Admin Member"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/containers/{id}/members", a.listMembers)
	r.Post("/containers/{id}/members", a.addMember)
	r.Delete("/containers/{id}/members/{principalID}", a.removeMember)
	r.Post("/containers/{id}/members/{principalID}/promote", a.promote)
	r.Post("/containers/{id}/members/{principalID}/demote", a.demote)
	r.Post("/containers/{id}/leave", a.leave)
}

func (a *API) requester(w http.ResponseWriter, r *http.Request) (string, bool) {
	principalID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
	}
	return principalID, ok
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.listMembers")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	members, err := a.service.ListMembers(ctx, chi.URLParam(r, "id"), requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, members, "")
}

func (a *API) addMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.addMember")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	var req AddMemberRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	m, err := a.service.AddMember(ctx, chi.URLParam(r, "id"), req.PrincipalID, req.Role, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, m, "member added")
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.removeMember")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	if err := a.service.RemoveMember(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "principalID"), requestedBy); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "member removed")
}

func (a *API) promote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.promote")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	if err := a.service.Promote(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "principalID"), requestedBy); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "member promoted")
}

func (a *API) demote(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.demote")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	if err := a.service.Demote(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "principalID"), requestedBy); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "member demoted")
}

func (a *API) leave(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "membership.API.leave")
	defer span.End()

	principalID, ok := a.requester(w, r)
	if !ok {
		return
	}

	if err := a.service.Leave(ctx, chi.URLParam(r, "id"), principalID); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "left container")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.logger = logger

	return a
}
