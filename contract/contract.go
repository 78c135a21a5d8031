//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-render/domain"

	"github.com/google/uuid"
)

// IMuteStore answers mute questions about a sender.
type IMuteStore interface {
	IsMuted(id uuid.UUID) bool
	RemainingMillis(id uuid.UUID) int64
}

// IIgnoreStore records one-directional ignore choices: the viewer decided
// to no longer see the sender.
type IIgnoreStore interface {
	IsIgnored(viewer, sender uuid.UUID) bool
}

// IColorStore looks up the chat color a sender picked for themselves.
type IColorStore interface {
	Preference(id uuid.UUID) domain.ColorPreference
}

// IGroupProvider exposes the permission groups a sender inherits, in
// provider order. Implementations may be backed by an external service
// and are allowed to fail.
type IGroupProvider interface {
	InheritedGroups(id uuid.UUID) ([]domain.Group, error)
}

// IFormatConfig is the configuration surface the rendering pipeline reads.
type IFormatConfig interface {
	GlobalFormat() string
	GroupFormat(group string) (string, bool)
	UseStaticFormat() bool
	UseItemDisplay() bool
}
