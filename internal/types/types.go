// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMember Role = "Member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type ContainerKind string

const (
	KindWorkspace ContainerKind = "workspace"
	KindProject   ContainerKind = "project"
)

// Principal is an authenticated user account.
type Principal struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	Name         string    `db:"name" json:"name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         Role      `db:"role" json:"role"`
	ProfileURL   string    `db:"profile_url" json:"profile_url,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Claims are the session token claims resolved for a request.
type Claims struct {
	PrincipalID string
	Email       string
	Role        Role
}

// Container is either a Workspace or a Project.
type Container struct {
	ID          string        `db:"id" json:"id"`
	Kind        ContainerKind `db:"kind" json:"kind"`
	Name        string        `db:"name" json:"name"`
	Description string        `db:"description" json:"description"`
	CreatedBy   string        `db:"created_by" json:"created_by"`
	// ParentID is empty for workspaces.
	ParentID  string     `db:"parent_id" json:"parent_id,omitempty"`
	DueDate   *time.Time `db:"due_date" json:"due_date,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

func (c *Container) IsProject() bool {
	return c.Kind == KindProject
}

// ContainerDetail is a container with its members and, for projects, task progress.
type ContainerDetail struct {
	Container
	Members  []*Membership `json:"members"`
	Progress *Progress     `json:"progress,omitempty"`
}

type ContainerInput struct {
	Name        string     `json:"name" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

type Membership struct {
	ContainerID string    `db:"container_id" json:"container_id"`
	PrincipalID string    `db:"principal_id" json:"principal_id"`
	Role        Role      `db:"role" json:"role"`
	Email       string    `db:"email" json:"email,omitempty"`
	Name        string    `db:"name" json:"name,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Invite struct {
	Token       string    `db:"token" json:"token"`
	ContainerID string    `db:"container_id" json:"container_id"`
	Email       string    `db:"email" json:"email"`
	InvitedBy   string    `db:"invited_by" json:"invited_by"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// PendingInvite is an invite joined with the container it grants access to.
type PendingInvite struct {
	Invite
	ContainerName string        `json:"container_name"`
	ContainerKind ContainerKind `json:"container_kind"`
}

type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "Low"
	PriorityMedium TaskPriority = "Medium"
	PriorityHigh   TaskPriority = "High"
)

type Task struct {
	ID          string       `db:"id" json:"id"`
	ProjectID   string       `db:"project_id" json:"project_id"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description"`
	Status      TaskStatus   `db:"status" json:"status"`
	Priority    TaskPriority `db:"priority" json:"priority"`
	AssigneeID  string       `db:"assignee_id" json:"assignee_id,omitempty"`
	CreatedBy   string       `db:"created_by" json:"created_by"`
	DueDate     *time.Time   `db:"due_date" json:"due_date,omitempty"`
	CreatedAt   time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at" json:"updated_at"`
}

type TaskInput struct {
	Title       string       `json:"title" validate:"required,max=200"`
	Description string       `json:"description" validate:"max=5000"`
	Status      TaskStatus   `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	Priority    TaskPriority `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	AssigneeID  string       `json:"assignee_id"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
}

// TaskUpdate carries the optional fields of a task update, nil means unchanged.
type TaskUpdate struct {
	Title       *string       `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string       `json:"description" validate:"omitempty,max=5000"`
	Status      *TaskStatus   `json:"status" validate:"omitempty,oneof='Not Started' 'In Progress' Completed"`
	Priority    *TaskPriority `json:"priority" validate:"omitempty,oneof=Low Medium High"`
	DueDate     *time.Time    `json:"due_date,omitempty"`
}

type Activity struct {
	ID          string    `db:"id" json:"id"`
	TaskID      string    `db:"task_id" json:"task_id"`
	PrincipalID string    `db:"principal_id" json:"principal_id"`
	Action      string    `db:"action" json:"action"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CommentStatus string

const (
	CommentPending  CommentStatus = "Pending"
	CommentResolved CommentStatus = "Resolved"
)

type Comment struct {
	ID        string        `db:"id" json:"id"`
	TaskID    string        `db:"task_id" json:"task_id"`
	AuthorID  string        `db:"author_id" json:"author_id"`
	Message   string        `db:"message" json:"message"`
	Status    CommentStatus `db:"status" json:"status"`
	CreatedAt time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt time.Time     `db:"updated_at" json:"updated_at"`
}

// TaskDetail is a task with its activity log and comments.
type TaskDetail struct {
	Task
	Activity []*Activity `json:"activity"`
	Comments []*Comment  `json:"comments"`
}

type Progress struct {
	TotalTasks     int     `json:"total_tasks"`
	CompletedTasks int     `json:"completed_tasks"`
	Percentage     float64 `json:"percentage"`
}

func NewProgress(total, completed int) *Progress {
	p := &Progress{TotalTasks: total, CompletedTasks: completed}
	if total > 0 {
		p.Percentage = float64(completed) * 100 / float64(total)
	}
	return p
}
