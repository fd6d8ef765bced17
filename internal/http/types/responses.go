// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/logging"
)

const maxBodyBytes = 1 << 20

// Response is the envelope of every successful JSON response.
type Response struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the body written for failed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		Response{
			Data:    data,
			Message: message,
			Status:  status,
		},
	)
}

// WriteError maps err onto its status category, internal errors are logged and hidden from the caller.
func WriteError(w http.ResponseWriter, err error, logger logging.LoggerInterface) {
	kind := apperrors.KindOf(err)
	status := kind.HTTPStatus()
	message := err.Error()

	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if kind == apperrors.KindInternal {
		logger.Errorf("request failed: %v", err)
		message = http.StatusText(http.StatusInternalServerError)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(
		ErrorResponse{
			Status:  status,
			Kind:    string(kind),
			Message: message,
		},
	)
}

// DecodeJSON reads the request body into v and validates its struct tags.
func DecodeJSON(r *http.Request, v any, validate *validator.Validate) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v); err != nil {
		return apperrors.Validation(fmt.Sprintf("invalid request body: %v", err))
	}

	if validate == nil {
		return nil
	}

	if err := validate.Struct(v); err != nil {
		return apperrors.FromValidator(err)
	}

	return nil
}
