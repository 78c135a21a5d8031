// Package domain contains core concepts of the chat rendering system.
// This file defines Sender identities and their chat capabilities.
// No runtime, storage, or UI logic should be added here.
package domain

import "github.com/google/uuid"

// Permissions are the chat capabilities the host server granted a sender.
type Permissions struct {
	Colors     bool // may keep color markup in messages
	Formatting bool // may use arbitrary markup tags
	ItemLink   bool // may substitute {i}/{item} with the held item
}

// Sender is the immutable identity of a chatting player, as seen by the
// rendering pipeline.
type Sender struct {
	ID          uuid.UUID
	Name        string
	DisplayName string
	Perms       Permissions
	HeldItem    string // display markup of the held item, empty when none
}
