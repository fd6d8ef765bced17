// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

type DBClientInterface interface {
	// Statement returns a builder bound to the transaction in ctx, or to the pool outside one
	Statement(context.Context) sq.StatementBuilderType
	// WithTx runs fn in one transaction, nested calls join the outer one
	WithTx(context.Context, func(context.Context) error) error
	Ping(context.Context) error
	Close()
}
