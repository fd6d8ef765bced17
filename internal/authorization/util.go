// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

// Operation is an action a principal attempts on a container.
type Operation int

const (
	ViewContainer Operation = iota
	ModifyContainer
	DeleteContainer
	CreateChildContainer
	InviteMember
	ManageInvites
	AddMember
	RemoveMember
	PromoteMember
	DemoteMember
	CreateTask
	ModifyTask
)

var operationNames = map[Operation]string{
	ViewContainer:        "view_container",
	ModifyContainer:      "modify_container",
	DeleteContainer:      "delete_container",
	CreateChildContainer: "create_child_container",
	InviteMember:         "invite_member",
	ManageInvites:        "manage_invites",
	AddMember:            "add_member",
	RemoveMember:         "remove_member",
	PromoteMember:        "promote_member",
	DemoteMember:         "demote_member",
	CreateTask:           "create_task",
	ModifyTask:           "modify_task",
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return "unknown"
}

// RequiresAdmin reports whether the operation is reserved to container admins.
func (o Operation) RequiresAdmin() bool {
	switch o {
	case ViewContainer, CreateTask, ModifyTask:
		return false
	default:
		return true
	}
}

func ContainerResource(kind, id string) string {
	return kind + ":" + id
}
