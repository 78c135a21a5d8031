// Package markup normalizes and sanitizes the formatting directives embedded
// in chat text: legacy section-style color escapes, canonical markup tags,
// and item display names.
package markup

import (
	"strings"
	"unicode"
)

// SectionChar is the legacy single-character color-escape prefix used by
// older clients.
const SectionChar = '§'

// legacyTags maps legacy color and decoration codes to canonical markup tags.
var legacyTags = map[rune]string{
	'0': "<black>",
	'1': "<dark_blue>",
	'2': "<dark_green>",
	'3': "<dark_aqua>",
	'4': "<dark_red>",
	'5': "<dark_purple>",
	'6': "<gold>",
	'7': "<gray>",
	'8': "<dark_gray>",
	'9': "<blue>",
	'a': "<green>",
	'b': "<aqua>",
	'c': "<red>",
	'd': "<light_purple>",
	'e': "<yellow>",
	'f': "<white>",
	'k': "<obfuscated>",
	'l': "<bold>",
	'm': "<strikethrough>",
	'n': "<underlined>",
	'o': "<italic>",
	'r': "<reset>",
}

// ConvertLegacy rewrites legacy section-style escapes into canonical markup
// tags, one-to-one and order-preserving. Unknown codes and a trailing bare
// section character are dropped rather than kept as literal text.
func ConvertLegacy(s string) string {
	return rewriteLegacy(s, true)
}

// StripLegacy removes legacy escapes without converting them.
func StripLegacy(s string) string {
	return rewriteLegacy(s, false)
}

func rewriteLegacy(s string, convert bool) string {
	if !strings.ContainsRune(s, SectionChar) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] != SectionChar {
			b.WriteRune(rs[i])
			continue
		}
		if i+1 >= len(rs) {
			break
		}
		if convert {
			if tag, ok := legacyTags[unicode.ToLower(rs[i+1])]; ok {
				b.WriteString(tag)
			}
		}
		i++
	}
	return b.String()
}
