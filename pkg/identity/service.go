// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/workspace-service/internal/apperrors"
	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/tracing"
	"github.com/canonical/workspace-service/internal/types"
)

type registration struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
	Name     string `validate:"required,max=100"`
}

type profile struct {
	Name       string `validate:"required,max=100"`
	ProfileURL string `validate:"omitempty,url,max=2048"`
}

// unknownPrincipalPassword is hashed once so that logins for unknown emails pay the same bcrypt cost
const unknownPrincipalPassword = "unknown-principal"

type Service struct {
	storage StorageInterface
	hasher  HasherInterface
	signer  SignerInterface

	admins    map[string]struct{}
	dummyHash func() (string, error)

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Register(ctx context.Context, email, password, name string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.Register")
	defer span.End()

	email = normalizeEmail(email)
	name = strings.TrimSpace(name)

	if err := s.validate.Struct(registration{Email: email, Password: password, Name: name}); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := types.RoleMember
	if _, ok := s.admins[email]; ok {
		role = types.RoleAdmin
	}

	p, err := s.storage.CreatePrincipal(ctx, &types.Principal{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, apperrors.New(apperrors.KindAlreadyExists, "email already taken")
		}
		return nil, fmt.Errorf("failed to create principal: %w", err)
	}

	s.logger.Security().UserCreated(p.ID)

	return p, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (string, *types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.Authenticate")
	defer span.End()

	email = normalizeEmail(email)

	if email == "" || password == "" {
		return "", nil, apperrors.Validation("email and password are required")
	}

	p, err := s.storage.GetPrincipalByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.compareDummy(password)
			s.logger.Security().AuthnLoginFail(email)
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to get principal: %w", err)
	}

	if err := s.hasher.Compare(p.PasswordHash, password); err != nil {
		s.logger.Security().AuthnLoginFail(email)
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.IssueToken(ctx, p.ID, p.Email, p.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Security().AuthnLoginSuccess(p.ID)

	return token, p, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

// compareDummy spends one hash comparison on a password that cannot match.
func (s *Service) compareDummy(password string) {
	hash, err := s.dummyHash()
	if err != nil {
		s.logger.Errorf("failed to prepare dummy hash: %v", err)
		return
	}

	_ = s.hasher.Compare(hash, password)
}

func (s *Service) IssueToken(ctx context.Context, principalID, email string, role types.Role) (string, error) {
	_, span := s.tracer.Start(ctx, "identity.Service.IssueToken")
	defer span.End()

	token, err := s.signer.Sign(principalID, email, role)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return token, nil
}

func (s *Service) ResolveToken(ctx context.Context, token string) (*types.Claims, error) {
	_, span := s.tracer.Start(ctx, "identity.Service.ResolveToken")
	defer span.End()

	if token == "" {
		return nil, apperrors.ErrMissingToken
	}

	claims, err := s.signer.Parse(token)
	if err != nil {
		s.logger.Security().AuthnTokenInvalid(err.Error())
		return nil, apperrors.Wrap(apperrors.KindInvalidToken, apperrors.ErrInvalidToken.Message, err)
	}

	return claims, nil
}

func (s *Service) GetPrincipal(ctx context.Context, id string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.GetPrincipal")
	defer span.End()

	p, err := s.storage.GetPrincipalByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "principal not found")
		}
		return nil, fmt.Errorf("failed to get principal: %w", err)
	}

	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id, name, profileURL string) (*types.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.UpdateProfile")
	defer span.End()

	name = strings.TrimSpace(name)

	if err := s.validate.Struct(profile{Name: name, ProfileURL: profileURL}); err != nil {
		return nil, apperrors.FromValidator(err)
	}

	p, err := s.storage.UpdatePrincipal(ctx, id, name, profileURL)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "principal not found")
		}
		return nil, fmt.Errorf("failed to update principal: %w", err)
	}

	return p, nil
}

// VerifyPassword re-checks the credential of an already authenticated principal.
func (s *Service) VerifyPassword(ctx context.Context, id, password string) error {
	ctx, span := s.tracer.Start(ctx, "identity.Service.VerifyPassword")
	defer span.End()

	p, err := s.GetPrincipal(ctx, id)
	if err != nil {
		return err
	}

	if err := s.hasher.Compare(p.PasswordHash, password); err != nil {
		s.logger.Security().AuthnLoginFail(p.Email)
		return apperrors.ErrInvalidCredentials
	}

	return nil
}

func NewService(
	storage StorageInterface,
	hasher HasherInterface,
	signer SignerInterface,
	adminEmails []string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.hasher = hasher
	s.signer = signer
	s.validate = validator.New(validator.WithRequiredStructEnabled())

	s.admins = make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		if e = normalizeEmail(e); e != "" {
			s.admins[e] = struct{}{}
		}
	}

	s.dummyHash = sync.OnceValues(func() (string, error) {
		return hasher.Hash(unknownPrincipalPassword)
	})

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
