package selector

import (
	"strconv"
	"strings"
)

// Escape escapes a string for use as a CSS identifier, following the
// serialization rules of the CSS Syntax specification. The result is safe
// to emit after "#", "." or before "|" in selector text.
func Escape(s string) string {
	if !needsEscape(s) {
		return s
	}
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == 0:
			b.WriteRune('�')
		case r < 0x20 || r == 0x7f:
			writeHexEscape(&b, r)
		case r >= '0' && r <= '9' && (i == 0 || (i == 1 && s[0] == '-')):
			writeHexEscape(&b, r)
		case r == '-' && len(s) == 1:
			b.WriteString("\\-")
		case r >= 0x80 || r == '-' || r == '_' ||
			r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}

func writeHexEscape(b *strings.Builder, r rune) {
	b.WriteByte('\\')
	b.WriteString(strconv.FormatInt(int64(r), 16))
	b.WriteByte(' ')
}

func needsEscape(s string) bool {
	for i, r := range s {
		if r >= 0x80 || r == '-' && len(s) > 1 || r == '_' ||
			r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' && i > 0 && !(i == 1 && s[0] == '-') {
			continue
		}
		return true
	}
	return false
}
