package render

import (
	"chat-render/contract"
	"chat-render/domain"
	"chat-render/errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Placeholder tokens recognized in chat format templates.
const (
	PlaceholderDisplayName = "%display-name%"
	PlaceholderUsername    = "%username%"
	PlaceholderMessage     = "%message%"
)

// IResolver produces the templated chat line for a sender, given the already
// formatted message body.
type IResolver interface {
	Render(sender domain.Sender, displayName, message string) (string, error)
}

// StaticResolver formats every message with the single global template.
type StaticResolver struct {
	cfg contract.IFormatConfig
}

func NewStaticResolver(cfg contract.IFormatConfig) *StaticResolver {
	return &StaticResolver{cfg: cfg}
}

// Render substitutes the placeholders of the global format. A blank or
// missing global format is a configuration error and is surfaced, never
// papered over with empty output.
func (r *StaticResolver) Render(sender domain.Sender, displayName, message string) (string, error) {
	format := r.cfg.GlobalFormat()
	if strings.TrimSpace(format) == "" {
		return "", errors.ErrBlankGlobalFormat
	}
	return substitute(format, sender, displayName, message), nil
}

// GroupResolver formats messages with the template of the sender's heaviest
// permission group, memoized in a FormatCache. Provider failures and lookup
// misses degrade to the static resolver for that render.
type GroupResolver struct {
	log      *slog.Logger
	cfg      contract.IFormatConfig
	provider contract.IGroupProvider
	cache    *FormatCache
	static   *StaticResolver

	absentOnce sync.Once
}

func NewGroupResolver(log *slog.Logger, cfg contract.IFormatConfig, provider contract.IGroupProvider, cache *FormatCache) *GroupResolver {
	return &GroupResolver{
		log:      log,
		cfg:      cfg,
		provider: provider,
		cache:    cache,
		static:   NewStaticResolver(cfg),
	}
}

func (r *GroupResolver) Render(sender domain.Sender, displayName, message string) (string, error) {
	if r.provider == nil {
		r.absentOnce.Do(func() {
			r.log.Warn("No group provider is configured while 'use-static-format' is disabled, " +
				"defaulting to the static format for chat messages")
		})
		return r.static.Render(sender, displayName, message)
	}

	format, err := r.cache.Get(sender.ID, r.loadGroupFormat)
	if err != nil {
		r.log.Warn("Group format lookup failed, falling back to the static format",
			"sender", sender.ID, "err", err)
		return r.static.Render(sender, displayName, message)
	}
	return substitute(format, sender, displayName, message), nil
}

// loadGroupFormat picks the configured format of the heaviest inherited
// group that has a non-blank one.
func (r *GroupResolver) loadGroupFormat(id uuid.UUID) (string, error) {
	groups, err := r.provider.InheritedGroups(id)
	if err != nil {
		return "", fmt.Errorf("inherited groups of %s: %w", id, err)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Weight > groups[j].Weight
	})

	for _, group := range groups {
		format, ok := r.cfg.GroupFormat(group.Name)
		if !ok || strings.TrimSpace(format) == "" {
			continue
		}
		return format, nil
	}
	return "", fmt.Errorf("%w: %s", errors.ErrNoGroupFormat, id)
}

func substitute(format string, sender domain.Sender, displayName, message string) string {
	replaced := strings.ReplaceAll(format, PlaceholderDisplayName, displayName)
	replaced = strings.ReplaceAll(replaced, PlaceholderUsername, sender.Name)
	return strings.ReplaceAll(replaced, PlaceholderMessage, message)
}
