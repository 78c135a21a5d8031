package markup

import "strings"

// ItemName prepares item display markup for inline substitution by closing
// the first tag found in it. Item names arrive as an opening tag followed by
// text ("<color:#FF0000>Sword") and would bleed their color into the rest of
// the chat line if left unclosed.
//
// Only the first "<...>" pair is inspected; input without one, or with the
// delimiters out of order, is returned unchanged.
func ItemName(display string) string {
	start := strings.IndexByte(display, '<')
	if start == -1 {
		return display
	}
	length := strings.IndexByte(display[start:], '>')
	if length == -1 {
		return display
	}

	inner := display[start+1 : start+length]
	switch {
	case strings.Contains(inner, "color"):
		return display + "</color>"
	case strings.Contains(inner, "gradient"):
		return display + "</gradient>"
	default:
		return display + "</" + inner + ">"
	}
}
