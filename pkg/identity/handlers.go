// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

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

type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string           `json:"token"`
	Principal *types.Principal `json:"principal"`
}

type ProfileRequest struct {
	Name       string `json:"name" validate:"required"`
	ProfileURL string `json:"profile_url"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterPublicEndpoints mounts the routes reachable without a session token.
func (a *API) RegisterPublicEndpoints(r chi.Router) {
	r.Post("/auth/register", a.register)
	r.Post("/auth/login", a.login)
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Get("/auth/me", a.me)
	r.Put("/auth/me", a.updateProfile)
	r.Post("/auth/verify-password", a.verifyPassword)

	r.Get("/users", a.listPrincipals)
	r.Get("/users/all", a.listPrincipals)
	r.Get("/users/{id}", a.getPrincipal)
	r.Delete("/users/{id}", a.deletePrincipal)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.register")
	defer span.End()

	var req RegisterRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	p, err := a.service.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, p, "principal registered")
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.login")
	defer span.End()

	var req LoginRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	token, p, err := a.service.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, LoginResponse{Token: token, Principal: p}, "login successful")
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.me")
	defer span.End()

	principalID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	p, err := a.service.GetPrincipal(ctx, principalID)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, p, "")
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.updateProfile")
	defer span.End()

	principalID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	var req ProfileRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	p, err := a.service.UpdateProfile(ctx, principalID, req.Name, req.ProfileURL)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, p, "profile updated")
}

func (a *API) verifyPassword(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.verifyPassword")
	defer span.End()

	principalID, ok := authentication.GetUserID(ctx)
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
		return
	}

	var req VerifyPasswordRequest
	if err := httptypes.DecodeJSON(r, &req, a.validate); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	if err := a.service.VerifyPassword(ctx, principalID, req.Password); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "password verified")
}

func (a *API) requester(w http.ResponseWriter, r *http.Request) (string, bool) {
	principalID, ok := authentication.GetUserID(r.Context())
	if !ok {
		httptypes.WriteError(w, apperrors.ErrMissingToken, a.logger)
	}
	return principalID, ok
}

func (a *API) listPrincipals(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.listPrincipals")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	principals, err := a.service.ListPrincipals(ctx, requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, principals, "")
}

func (a *API) getPrincipal(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.getPrincipal")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	p, err := a.service.LookupPrincipal(ctx, chi.URLParam(r, "id"), requestedBy)
	if err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, p, "")
}

func (a *API) deletePrincipal(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "identity.API.deletePrincipal")
	defer span.End()

	requestedBy, ok := a.requester(w, r)
	if !ok {
		return
	}

	if err := a.service.DeletePrincipal(ctx, chi.URLParam(r, "id"), requestedBy); err != nil {
		httptypes.WriteError(w, err, a.logger)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, nil, "principal deleted")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.logger = logger

	return a
}
