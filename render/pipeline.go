package render

import (
	"chat-render/contract"
	"chat-render/domain"
	"chat-render/markup"
	"chat-render/moderation"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Item-link tokens a sender can type to show off the held item.
const (
	itemTokenShort = "{i}"
	itemTokenLong  = "{item}"
)

// Pipeline turns a raw chat message into its final displayable markup:
// mute/ignore filtering, optional censoring, sanitization, color application,
// format resolution and placeholder substitution.
type Pipeline struct {
	log     *slog.Logger
	cfg     contract.IFormatConfig
	mutes   contract.IMuteStore
	ignores contract.IIgnoreStore
	colors  contract.IColorStore
	static  *StaticResolver
	group   *GroupResolver
	censor  *moderation.Moderator
}

// NewPipeline wires the rendering stages. mutes, ignores, colors, provider
// and censor may each be nil; the corresponding stage is then skipped (the
// group resolver degrades to static when provider is nil).
func NewPipeline(
	log *slog.Logger,
	cfg contract.IFormatConfig,
	mutes contract.IMuteStore,
	ignores contract.IIgnoreStore,
	colors contract.IColorStore,
	provider contract.IGroupProvider,
	cache *FormatCache,
	censor *moderation.Moderator,
) *Pipeline {
	return &Pipeline{
		log:     log,
		cfg:     cfg,
		mutes:   mutes,
		ignores: ignores,
		colors:  colors,
		static:  NewStaticResolver(cfg),
		group:   NewGroupResolver(log, cfg, provider, cache),
		censor:  censor,
	}
}

// Render produces the final chat line for sender, or a cancellation carrying
// a mute notice. Only a blank global format crosses this boundary as an
// error; every other failure degrades internally.
func (p *Pipeline) Render(sender domain.Sender, message string, viewers []uuid.UUID) (domain.RenderResult, bool, error) {
	if p.mutes != nil && p.mutes.IsMuted(sender.ID) {
		notice := "You are muted!"
		if remaining := p.mutes.RemainingMillis(sender.ID); remaining > 0 {
			notice = "You are muted for " + FormatDuration(remaining)
		}
		return domain.RenderResult{Notice: notice}, true, nil
	}

	kept := viewers
	if p.ignores != nil {
		kept = lo.Filter(viewers, func(viewer uuid.UUID, _ int) bool {
			return !p.ignores.IsIgnored(viewer, sender.ID)
		})
	}

	body := message
	if p.censor != nil {
		var words []string
		body, words = p.censor.Censor(body)
		if len(words) > 0 {
			p.log.Debug("Censored chat message", "sender", sender.ID, "words", words)
		}
	}

	body = markup.Sanitize(body, sender.Perms.Colors, sender.Perms.Formatting)
	body = applyColor(body, p.preference(sender.ID))

	resolver := IResolver(p.group)
	if p.cfg.UseStaticFormat() {
		resolver = p.static
	}
	line, err := resolver.Render(sender, sender.DisplayName, body)
	if err != nil {
		return domain.RenderResult{}, false, err
	}

	line = p.substituteItem(sender, message, line)
	return domain.RenderResult{Text: line, Viewers: kept}, false, nil
}

func (p *Pipeline) preference(id uuid.UUID) domain.ColorPreference {
	if p.colors == nil {
		return domain.ColorPreference{}
	}
	return p.colors.Preference(id)
}

// substituteItem replaces the literal {i}/{item} tokens in the rendered line
// with the closable markup of the held item. The tokens stay literal text
// unless item display is enabled, the sender holds the item-link capability,
// typed one of the tokens, and actually holds an item.
func (p *Pipeline) substituteItem(sender domain.Sender, raw, line string) string {
	if !p.cfg.UseItemDisplay() || !sender.Perms.ItemLink || sender.HeldItem == "" {
		return line
	}
	if !strings.Contains(raw, itemTokenShort) && !strings.Contains(raw, itemTokenLong) {
		return line
	}

	item := markup.ItemName(sender.HeldItem)
	line = strings.ReplaceAll(line, itemTokenShort, item)
	return strings.ReplaceAll(line, itemTokenLong, item)
}

// applyColor wraps the sanitized body with the sender's color preference.
// Exactly one rule applies: gradient spec, hex spec, named tag, then the
// neutral default.
func applyColor(body string, pref domain.ColorPreference) string {
	switch {
	case pref.IsGradient():
		return pref.Custom + body + "</gradient>"
	case pref.IsHex():
		return "<color:" + pref.Custom + ">" + body + "</color>"
	case pref.Tag != "":
		return pref.Tag + body + markup.ClosingTag(pref.Tag)
	default:
		return markup.NeutralOpen + body + markup.NeutralClose
	}
}
