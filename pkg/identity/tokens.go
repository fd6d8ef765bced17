// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/workspace-service/internal/types"
)

var errMissingSubject = errors.New("token has no subject")

type sessionClaims struct {
	Email string     `json:"email"`
	Role  types.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTSigner issues and verifies HS256 session tokens.
type JWTSigner struct {
	secret   []byte
	issuer   string
	lifetime time.Duration

	now func() time.Time
}

func (j *JWTSigner) Sign(principalID, email string, role types.Role) (string, error) {
	now := j.now()

	claims := sessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principalID,
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.lifetime)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

func (j *JWTSigner) Parse(raw string) (*types.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	}

	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	claims := new(sessionClaims)
	_, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(*jwt.Token) (interface{}, error) { return j.secret, nil },
		opts...,
	)
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, errMissingSubject
	}

	return &types.Claims{
		PrincipalID: claims.Subject,
		Email:       claims.Email,
		Role:        claims.Role,
	}, nil
}

func NewJWTSigner(secret, issuer string, lifetime time.Duration) *JWTSigner {
	return &JWTSigner{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
		now:      time.Now,
	}
}
