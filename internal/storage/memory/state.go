// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"maps"
	"slices"

	"github.com/canonical/workspace-service/internal/types"
)

// row pairs a record with its insertion sequence, used for stable ordering.
type row[T any] struct {
	v   T
	seq uint64
}

type state struct {
	seq uint64

	principals map[string]row[types.Principal]
	emails     map[string]string

	containers map[string]row[types.Container]
	children   map[string]map[string]struct{}
	members    map[string]map[string]row[types.Membership]

	invites map[string]row[types.Invite]

	tasks    map[string]row[types.Task]
	activity map[string][]types.Activity
	comments map[string][]row[types.Comment]
}

func newState() *state {
	return &state{
		principals: make(map[string]row[types.Principal]),
		emails:     make(map[string]string),
		containers: make(map[string]row[types.Container]),
		children:   make(map[string]map[string]struct{}),
		members:    make(map[string]map[string]row[types.Membership]),
		invites:    make(map[string]row[types.Invite]),
		tasks:      make(map[string]row[types.Task]),
		activity:   make(map[string][]types.Activity),
		comments:   make(map[string][]row[types.Comment]),
	}
}

func (s *state) next() uint64 {
	s.seq++
	return s.seq
}

// clone copies every table so that a failed transaction can be rolled back.
func (s *state) clone() *state {
	c := &state{
		seq:        s.seq,
		principals: maps.Clone(s.principals),
		emails:     maps.Clone(s.emails),
		containers: maps.Clone(s.containers),
		children:   make(map[string]map[string]struct{}, len(s.children)),
		members:    make(map[string]map[string]row[types.Membership], len(s.members)),
		invites:    maps.Clone(s.invites),
		tasks:      maps.Clone(s.tasks),
		activity:   make(map[string][]types.Activity, len(s.activity)),
		comments:   make(map[string][]row[types.Comment], len(s.comments)),
	}

	for k, v := range s.children {
		c.children[k] = maps.Clone(v)
	}
	for k, v := range s.members {
		c.members[k] = maps.Clone(v)
	}
	for k, v := range s.activity {
		c.activity[k] = slices.Clone(v)
	}
	for k, v := range s.comments {
		c.comments[k] = slices.Clone(v)
	}

	return c
}

func sorted[T any](rows []row[T]) []row[T] {
	slices.SortFunc(rows, func(a, b row[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	return rows
}
