// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	HTTPReadTimeout  time.Duration `envconfig:"http_read_timeout" default:"15s"`
	HTTPWriteTimeout time.Duration `envconfig:"http_write_timeout" default:"60s"`
	HTTPIdleTimeout  time.Duration `envconfig:"http_idle_timeout" default:"60s"`

	StorageBackend string `envconfig:"storage_backend" default:"postgres"`

	DSN string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	JWTSecret       string        `envconfig:"jwt_secret" required:"true"`
	JWTIssuer       string        `envconfig:"jwt_issuer" default:"workspace-service"`
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"24h"`
	BcryptCost      int           `envconfig:"bcrypt_cost" default:"10"`

	// AdminEmails are granted the global Admin role when they register.
	AdminEmails []string `envconfig:"admin_emails"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"24h"`

	// ReconcileInterval of zero disables the background reconciler.
	ReconcileInterval time.Duration `envconfig:"reconcile_interval" default:"0"`
}
