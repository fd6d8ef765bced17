// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"testing"
)

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil},
		{name: "up", args: []string{"up"}},
		{name: "status", args: []string{"status"}},
		{name: "check", args: []string{"check"}},
		{name: "down", args: []string{"down"}},
		{name: "down to version", args: []string{"down", "3"}},
		{name: "down to zero", args: []string{"down", "0"}},
		{name: "unknown command", args: []string{"sideways"}, wantErr: true},
		{name: "version on up", args: []string{"up", "3"}, wantErr: true},
		{name: "negative version", args: []string{"down", "-1"}, wantErr: true},
		{name: "non numeric version", args: []string{"down", "latest"}, wantErr: true},
		{name: "too many args", args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := migrateArgs(migrateCmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("migrateArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}
