// Package groups provides group-membership lookups for the group chat
// format. Hosts with an external permission service plug their own
// implementation of contract.IGroupProvider; StaticProvider serves the
// memberships declared in the formatting document instead.
package groups

import (
	"chat-render/config"
	"chat-render/domain"
	"chat-render/errors"
	"fmt"

	"github.com/google/uuid"
)

type StaticProvider struct {
	members map[uuid.UUID][]domain.Group
}

// NewStaticProvider indexes the declared groups by member id. A member that
// is not a valid UUID is a configuration mistake and fails the whole build.
func NewStaticProvider(defs []config.GroupDef) (*StaticProvider, error) {
	members := make(map[uuid.UUID][]domain.Group)
	for _, def := range defs {
		for _, raw := range def.Members {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("group %q member %q: %w", def.Name, raw, err)
			}
			members[id] = append(members[id], domain.Group{Name: def.Name, Weight: def.Weight})
		}
	}
	return &StaticProvider{members: members}, nil
}

// InheritedGroups returns the declared groups of id in declaration order.
// Unknown senders are an error, mirroring an external service that has no
// record of the user.
func (p *StaticProvider) InheritedGroups(id uuid.UUID) ([]domain.Group, error) {
	groups, ok := p.members[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrUnknownUser, id)
	}
	return groups, nil
}
