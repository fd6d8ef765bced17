// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package apperrors holds the business error taxonomy shared by every service.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	KindInternal           Kind = "Internal"
	KindInvalidCredentials Kind = "InvalidCredentials"
	KindMissingToken       Kind = "MissingToken"
	KindInvalidToken       Kind = "InvalidToken"
	KindAccessDenied       Kind = "AccessDenied"
	KindContainerNotFound  Kind = "ContainerNotFound"
	KindMemberNotFound     Kind = "MemberNotFound"
	KindNotFound           Kind = "NotFound"
	KindAlreadyMember      Kind = "AlreadyMember"
	KindAlreadyAdmin       Kind = "AlreadyAdmin"
	KindNotAdmin           Kind = "NotAdmin"
	KindAlreadyExists      Kind = "AlreadyExists"
	KindLastAdminProtected Kind = "LastAdminProtected"
	KindContainerNotEmpty  Kind = "ContainerNotEmpty"
	KindExpiredInvite      Kind = "ExpiredInvite"
	KindValidation         Kind = "ValidationError"
)

// HTTPStatus maps a kind to its stable status category.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindInvalidCredentials, KindMissingToken, KindInvalidToken:
		return http.StatusUnauthorized
	case KindAccessDenied:
		return http.StatusForbidden
	case KindContainerNotFound, KindMemberNotFound, KindNotFound:
		return http.StatusNotFound
	case KindAlreadyMember, KindAlreadyAdmin, KindNotAdmin, KindAlreadyExists, KindLastAdminProtected, KindContainerNotEmpty:
		return http.StatusConflict
	case KindExpiredInvite:
		return http.StatusGone
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is a business error. Two errors match under errors.Is when their kinds are equal.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

var (
	ErrInvalidCredentials = New(KindInvalidCredentials, "invalid credentials")
	ErrMissingToken       = New(KindMissingToken, "missing authorization token")
	ErrInvalidToken       = New(KindInvalidToken, "invalid token")
	ErrAccessDenied       = New(KindAccessDenied, "access denied")
	ErrContainerNotFound  = New(KindContainerNotFound, "container not found")
	ErrMemberNotFound     = New(KindMemberNotFound, "member not found")
	ErrNotFound           = New(KindNotFound, "resource not found")
	ErrAlreadyMember      = New(KindAlreadyMember, "principal is already a member")
	ErrAlreadyAdmin       = New(KindAlreadyAdmin, "member is already an admin")
	ErrNotAdmin           = New(KindNotAdmin, "member is not an admin")
	ErrAlreadyExists      = New(KindAlreadyExists, "resource already exists")
	ErrLastAdminProtected = New(KindLastAdminProtected, "container must keep at least one admin")
	ErrContainerNotEmpty  = New(KindContainerNotEmpty, "container still has projects")
	ErrExpiredInvite      = New(KindExpiredInvite, "invite has expired")
	ErrValidation         = New(KindValidation, "validation failed")
)

// Validation returns a ValidationError carrying message.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// KindOf returns the kind of the first business error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsBusiness reports whether err carries a business error.
func IsBusiness(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
