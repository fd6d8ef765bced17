// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

const (
	eventSystemStartup     = "sys_startup"
	eventSystemShutdown    = "sys_shutdown"
	eventAuthnLoginSuccess = "authn_login_success"
	eventAuthnLoginFail    = "authn_login_fail"
	eventAuthnTokenInvalid = "authn_token_invalid"
	eventAuthzFailure      = "authz_fail"
	eventAdminAction       = "admin_action"
	eventUserCreated       = "user_created"
	eventUserDeleted       = "user_deleted"

	appID = "workspace-service"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) log(event string, level string, description string, fields ...zap.Field) {
	fields = append(
		fields,
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", event),
		zap.String("level", level),
	)

	switch level {
	case "WARN":
		s.l.Warn(description, fields...)
	default:
		s.l.Info(description, fields...)
	}
}

func (s *SecurityLogger) SystemStartup() {
	s.log(eventSystemStartup, "WARN", "workspace service is starting")
}

func (s *SecurityLogger) SystemShutdown() {
	s.log(eventSystemShutdown, "WARN", "workspace service is shutting down")
}

func (s *SecurityLogger) AuthnLoginSuccess(userID string) {
	s.log(eventAuthnLoginSuccess+":"+userID, "INFO", "user login succeeded", zap.String("user", userID))
}

func (s *SecurityLogger) AuthnLoginFail(userID string) {
	s.log(eventAuthnLoginFail+":"+userID, "WARN", "user login failed", zap.String("user", userID))
}

func (s *SecurityLogger) AuthnTokenInvalid(reason string) {
	s.log(eventAuthnTokenInvalid, "WARN", "session token rejected", zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.log(eventAuthzFailure+":"+userID+","+resource, "WARN", "user attempted an unauthorized operation", zap.String("user", userID), zap.String("resource", resource))
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.log(eventAdminAction+":"+userID+","+action+","+resource, "WARN", "admin operation performed", zap.String("user", userID), zap.String("action", action), zap.String("resource", resource))
}

func (s *SecurityLogger) UserCreated(userID string) {
	s.log(eventUserCreated+":"+userID, "WARN", "user registered", zap.String("user", userID))
}

func (s *SecurityLogger) UserDeleted(userID, requestedBy string) {
	s.log(eventUserDeleted+":"+requestedBy+","+userID, "WARN", "user deleted", zap.String("user", userID), zap.String("requested_by", requestedBy))
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
