package markup

import "strings"

// NeutralOpen and NeutralClose are the default wrapping pair applied when a
// sender has no color of their own.
const (
	NeutralOpen  = "<white>"
	NeutralClose = "</white>"
)

// EscapeTags neutralizes markup-tag syntax so user-supplied tags render as
// literal text instead of altering the display.
func EscapeTags(s string) string {
	return strings.ReplaceAll(s, "<", `\<`)
}

// ClosingTag derives the closing tag for a named opening tag by the same
// naming rule that assigned it, e.g. "<red>" closes with "</red>".
// Malformed input yields the empty string.
func ClosingTag(open string) string {
	if len(open) < 3 || open[0] != '<' || open[len(open)-1] != '>' {
		return ""
	}
	return "</" + open[1:len(open)-1] + ">"
}

// Sanitize enforces permission-tiered cleanup on a raw chat message.
//
// Senders without the colors capability lose every legacy escape, have all
// remaining tag syntax escaped, and end up wrapped in the neutral pair.
// Senders with colors but without the formatting capability keep colors that
// arrived as legacy escapes, while any tag they typed themselves is escaped;
// escaping runs before conversion so converted tags survive intact. Senders
// holding both capabilities are fully trusted and only get legacy escapes
// normalized to canonical tags.
//
// Sanitize never fails; empty input yields the wrapped empty string.
func Sanitize(raw string, canColor, canFormat bool) string {
	switch {
	case !canColor:
		return NeutralOpen + EscapeTags(StripLegacy(raw)) + NeutralClose
	case !canFormat:
		return ConvertLegacy(EscapeTags(raw))
	default:
		return ConvertLegacy(raw)
	}
}
