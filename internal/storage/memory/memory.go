// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package memory is an in-process storage backend for development and tests.
// Transactions are serialized on a single mutex and rolled back from a snapshot on error.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

var _ storage.StorageInterface = (*Storage)(nil)

type txKey struct{}

type Storage struct {
	mu    sync.Mutex
	state *state

	now func() time.Time

	logger logging.LoggerInterface
}

// lock takes the store mutex unless ctx already runs inside one of this store's transactions.
func (s *Storage) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}

	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Storage) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Storage)
	return owner == s
}

func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()

	snapshot := s.state.clone()
	committed := false

	defer func() {
		if !committed {
			s.state = snapshot
		}
		s.mu.Unlock()
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.logger.Debugf("rolling back transaction: %v", err)
		return err
	}

	committed = true
	return nil
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

/* Principals */

func (s *Storage) CreatePrincipal(ctx context.Context, p *types.Principal) (*types.Principal, error) {
	defer s.lock(ctx)()

	email := strings.ToLower(p.Email)
	if _, ok := s.state.emails[email]; ok {
		return nil, storage.ErrDuplicateKey
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := *p
	created.ID = id
	created.Email = email
	if created.Role == "" {
		created.Role = types.RoleMember
	}
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt

	s.state.principals[id] = row[types.Principal]{v: created, seq: s.state.next()}
	s.state.emails[email] = id

	return &created, nil
}

func (s *Storage) GetPrincipalByID(ctx context.Context, id string) (*types.Principal, error) {
	defer s.lock(ctx)()

	r, ok := s.state.principals[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	p := r.v
	return &p, nil
}

func (s *Storage) GetPrincipalByEmail(ctx context.Context, email string) (*types.Principal, error) {
	defer s.lock(ctx)()

	id, ok := s.state.emails[strings.ToLower(email)]
	if !ok {
		return nil, storage.ErrNotFound
	}

	p := s.state.principals[id].v
	return &p, nil
}

func (s *Storage) UpdatePrincipal(ctx context.Context, id, name, profileURL string) (*types.Principal, error) {
	defer s.lock(ctx)()

	r, ok := s.state.principals[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	r.v.Name = name
	r.v.ProfileURL = profileURL
	r.v.UpdatedAt = s.now()
	s.state.principals[id] = r

	p := r.v
	return &p, nil
}

func (s *Storage) ListPrincipals(ctx context.Context) ([]*types.Principal, error) {
	defer s.lock(ctx)()

	rows := make([]row[types.Principal], 0, len(s.state.principals))
	for _, r := range s.state.principals {
		rows = append(rows, r)
	}

	principals := make([]*types.Principal, 0, len(rows))
	for _, r := range sorted(rows) {
		p := r.v
		principals = append(principals, &p)
	}

	return principals, nil
}

// LockPrincipal is GetPrincipalByID, the transaction already holds the store lock
func (s *Storage) LockPrincipal(ctx context.Context, id string) (*types.Principal, error) {
	return s.GetPrincipalByID(ctx, id)
}

// DeletePrincipal drops the memberships of the principal and clears it from authored records.
func (s *Storage) DeletePrincipal(ctx context.Context, id string) error {
	defer s.lock(ctx)()

	r, ok := s.state.principals[id]
	if !ok {
		return storage.ErrNotFound
	}

	delete(s.state.principals, id)
	delete(s.state.emails, r.v.Email)

	for _, members := range s.state.members {
		delete(members, id)
	}

	for k, c := range s.state.containers {
		if c.v.CreatedBy == id {
			c.v.CreatedBy = ""
			s.state.containers[k] = c
		}
	}

	for k, i := range s.state.invites {
		if i.v.InvitedBy == id {
			i.v.InvitedBy = ""
			s.state.invites[k] = i
		}
	}

	s.clearTaskAuthor(id)

	return nil
}

/* Containers */

func (s *Storage) CreateContainer(ctx context.Context, c *types.Container) (*types.Container, error) {
	defer s.lock(ctx)()

	if _, ok := s.state.principals[c.CreatedBy]; !ok {
		return nil, storage.ErrForeignKeyViolation
	}

	if c.ParentID != "" {
		if _, ok := s.state.containers[c.ParentID]; !ok {
			return nil, storage.ErrForeignKeyViolation
		}
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	created := *c
	created.ID = id
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt

	s.state.containers[id] = row[types.Container]{v: created, seq: s.state.next()}
	s.state.members[id] = make(map[string]row[types.Membership])

	return &created, nil
}

func (s *Storage) GetContainer(ctx context.Context, id string) (*types.Container, error) {
	defer s.lock(ctx)()

	r, ok := s.state.containers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	c := r.v
	return &c, nil
}

// LockContainer is GetContainer, the transaction already holds the store lock
func (s *Storage) LockContainer(ctx context.Context, id string) (*types.Container, error) {
	return s.GetContainer(ctx, id)
}

func (s *Storage) UpdateContainer(ctx context.Context, c *types.Container) (*types.Container, error) {
	defer s.lock(ctx)()

	r, ok := s.state.containers[c.ID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	r.v.Name = c.Name
	r.v.Description = c.Description
	r.v.DueDate = c.DueDate
	r.v.UpdatedAt = s.now()
	s.state.containers[c.ID] = r

	updated := r.v
	return &updated, nil
}

func (s *Storage) DeleteContainer(ctx context.Context, id string) error {
	defer s.lock(ctx)()

	if _, ok := s.state.containers[id]; !ok {
		return storage.ErrNotFound
	}

	for _, r := range s.state.containers {
		if r.v.ParentID == id {
			return storage.ErrForeignKeyViolation
		}
	}

	delete(s.state.containers, id)
	delete(s.state.members, id)
	delete(s.state.children, id)

	for _, kids := range s.state.children {
		delete(kids, id)
	}

	for token, r := range s.state.invites {
		if r.v.ContainerID == id {
			delete(s.state.invites, token)
		}
	}

	for taskID, r := range s.state.tasks {
		if r.v.ProjectID == id {
			s.deleteTask(taskID)
		}
	}

	return nil
}

func (s *Storage) ListContainersByPrincipal(ctx context.Context, principalID string, kind types.ContainerKind) ([]*types.Container, error) {
	defer s.lock(ctx)()

	return s.collectContainers(func(c *types.Container) bool {
		if kind != "" && c.Kind != kind {
			return false
		}
		_, ok := s.state.members[c.ID][principalID]
		return ok
	}), nil
}

func (s *Storage) ListProjectsByWorkspace(ctx context.Context, workspaceID, principalID string) ([]*types.Container, error) {
	defer s.lock(ctx)()

	linked := s.state.children[workspaceID]

	return s.collectContainers(func(c *types.Container) bool {
		if _, ok := linked[c.ID]; !ok {
			return false
		}
		_, ok := s.state.members[c.ID][principalID]
		return ok
	}), nil
}

func (s *Storage) CountProjects(ctx context.Context, workspaceID string) (int, error) {
	defer s.lock(ctx)()

	count := 0
	for _, r := range s.state.containers {
		if r.v.ParentID == workspaceID {
			count++
		}
	}

	return count, nil
}

func (s *Storage) LinkChild(ctx context.Context, parentID, childID string) error {
	defer s.lock(ctx)()

	if _, ok := s.state.containers[parentID]; !ok {
		return storage.ErrForeignKeyViolation
	}
	if _, ok := s.state.containers[childID]; !ok {
		return storage.ErrForeignKeyViolation
	}

	if s.state.children[parentID] == nil {
		s.state.children[parentID] = make(map[string]struct{})
	}
	s.state.children[parentID][childID] = struct{}{}

	return nil
}

func (s *Storage) ListUnlinkedProjects(ctx context.Context) ([]*types.Container, error) {
	defer s.lock(ctx)()

	return s.collectContainers(func(c *types.Container) bool {
		if !c.IsProject() {
			return false
		}
		_, ok := s.state.children[c.ParentID][c.ID]
		return !ok
	}), nil
}

func (s *Storage) collectContainers(match func(*types.Container) bool) []*types.Container {
	rows := make([]row[types.Container], 0)
	for _, r := range s.state.containers {
		if match(&r.v) {
			rows = append(rows, r)
		}
	}

	containers := make([]*types.Container, 0, len(rows))
	for _, r := range sorted(rows) {
		c := r.v
		containers = append(containers, &c)
	}

	return containers
}

/* Memberships */

func (s *Storage) AddMember(ctx context.Context, containerID, principalID string, role types.Role) error {
	defer s.lock(ctx)()

	members, ok := s.state.members[containerID]
	if !ok {
		return storage.ErrForeignKeyViolation
	}

	p, ok := s.state.principals[principalID]
	if !ok {
		return storage.ErrForeignKeyViolation
	}

	if _, ok := members[principalID]; ok {
		return storage.ErrDuplicateKey
	}

	members[principalID] = row[types.Membership]{
		v: types.Membership{
			ContainerID: containerID,
			PrincipalID: principalID,
			Role:        role,
			Email:       p.v.Email,
			Name:        p.v.Name,
			CreatedAt:   s.now(),
		},
		seq: s.state.next(),
	}

	return nil
}

func (s *Storage) ListMembers(ctx context.Context, containerID string) ([]*types.Membership, error) {
	defer s.lock(ctx)()

	rows := make([]row[types.Membership], 0, len(s.state.members[containerID]))
	for _, r := range s.state.members[containerID] {
		rows = append(rows, r)
	}

	members := make([]*types.Membership, 0, len(rows))
	for _, r := range sorted(rows) {
		m := r.v
		// display data follows the principal, as the postgres join does
		if p, ok := s.state.principals[m.PrincipalID]; ok {
			m.Email = p.v.Email
			m.Name = p.v.Name
		}
		members = append(members, &m)
	}

	return members, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, containerID, principalID string, role types.Role) error {
	defer s.lock(ctx)()

	r, ok := s.state.members[containerID][principalID]
	if !ok {
		return storage.ErrNotFound
	}

	r.v.Role = role
	s.state.members[containerID][principalID] = r

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, containerID, principalID string) error {
	defer s.lock(ctx)()

	if _, ok := s.state.members[containerID][principalID]; !ok {
		return storage.ErrNotFound
	}

	delete(s.state.members[containerID], principalID)

	return nil
}

func (s *Storage) ListMembershipsByPrincipal(ctx context.Context, principalID string) ([]*types.Membership, error) {
	defer s.lock(ctx)()

	memberships := make([]*types.Membership, 0)
	for _, members := range s.state.members {
		r, ok := members[principalID]
		if !ok {
			continue
		}

		m := r.v
		m.Email = s.state.principals[principalID].v.Email
		m.Name = s.state.principals[principalID].v.Name
		memberships = append(memberships, &m)
	}

	slices.SortFunc(memberships, func(a, b *types.Membership) int {
		return strings.Compare(a.ContainerID, b.ContainerID)
	})

	return memberships, nil
}

/* Invites */

func (s *Storage) CreateInvite(ctx context.Context, i *types.Invite) (*types.Invite, error) {
	defer s.lock(ctx)()

	if _, ok := s.state.containers[i.ContainerID]; !ok {
		return nil, storage.ErrForeignKeyViolation
	}
	if _, ok := s.state.principals[i.InvitedBy]; !ok {
		return nil, storage.ErrForeignKeyViolation
	}
	if _, ok := s.state.invites[i.Token]; ok {
		return nil, storage.ErrDuplicateKey
	}

	created := *i
	created.Email = strings.ToLower(i.Email)
	created.CreatedAt = s.now()

	s.state.invites[i.Token] = row[types.Invite]{v: created, seq: s.state.next()}

	return &created, nil
}

func (s *Storage) GetInvite(ctx context.Context, token string) (*types.Invite, error) {
	defer s.lock(ctx)()

	r, ok := s.state.invites[token]
	if !ok {
		return nil, storage.ErrNotFound
	}

	i := r.v
	return &i, nil
}

func (s *Storage) ConsumeInvite(ctx context.Context, containerID, token string) (*types.Invite, error) {
	defer s.lock(ctx)()

	r, ok := s.state.invites[token]
	if !ok || r.v.ContainerID != containerID {
		return nil, storage.ErrNotFound
	}

	delete(s.state.invites, token)

	i := r.v
	return &i, nil
}

func (s *Storage) ListInvitesByEmail(ctx context.Context, email string, now time.Time) ([]*types.PendingInvite, error) {
	defer s.lock(ctx)()

	email = strings.ToLower(email)

	rows := make([]row[types.Invite], 0)
	for _, r := range s.state.invites {
		if r.v.Email == email && !r.v.ExpiresAt.Before(now) {
			rows = append(rows, r)
		}
	}

	invites := make([]*types.PendingInvite, 0, len(rows))
	for _, r := range sorted(rows) {
		c := s.state.containers[r.v.ContainerID].v
		invites = append(invites, &types.PendingInvite{
			Invite:        r.v,
			ContainerName: c.Name,
			ContainerKind: c.Kind,
		})
	}

	return invites, nil
}

func (s *Storage) ListInvitesByContainer(ctx context.Context, containerID string) ([]*types.Invite, error) {
	defer s.lock(ctx)()

	rows := make([]row[types.Invite], 0)
	for _, r := range s.state.invites {
		if r.v.ContainerID == containerID {
			rows = append(rows, r)
		}
	}

	invites := make([]*types.Invite, 0, len(rows))
	for _, r := range sorted(rows) {
		i := r.v
		invites = append(invites, &i)
	}

	return invites, nil
}

func (s *Storage) DeleteInvite(ctx context.Context, containerID, token string) error {
	defer s.lock(ctx)()

	r, ok := s.state.invites[token]
	if !ok || r.v.ContainerID != containerID {
		return storage.ErrNotFound
	}

	delete(s.state.invites, token)

	return nil
}

func (s *Storage) DeleteExpiredInvites(ctx context.Context, now time.Time) (int64, error) {
	defer s.lock(ctx)()

	var n int64
	for token, r := range s.state.invites {
		if r.v.ExpiresAt.Before(now) {
			delete(s.state.invites, token)
			n++
		}
	}

	return n, nil
}

func NewStorage(logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.state = newState()
	s.now = time.Now
	s.logger = logger

	return s
}
