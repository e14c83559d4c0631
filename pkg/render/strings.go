package render

import (
	"fmt"
	"strings"
)

// escapeExpandable escapes raw interpolated-string content for a
// double-quoted literal. Characters below 128 with no dedicated escape pass
// through verbatim; anything at or above 128 becomes a `u{HEX} sequence with
// uppercase hex and no leading zeros.
func escapeExpandable(raw string) string {
	var out strings.Builder

	out.Grow(len(raw))

	for _, char := range raw {
		switch char {
		case 0:
			out.WriteString("`0")
		case '\a':
			out.WriteString("`a")
		case '\b':
			out.WriteString("`b")
		case '\f':
			out.WriteString("`f")
		case '\n':
			out.WriteString("`n")
		case '\r':
			out.WriteString("`r")
		case '\t':
			out.WriteString("`t")
		case '\v':
			out.WriteString("`v")
		case '`':
			out.WriteString("``")
		case '"':
			out.WriteString("`\"")
		case '$':
			out.WriteString("`$")
		case '\x1b':
			out.WriteString("`e")
		default:
			if char >= 128 {
				fmt.Fprintf(&out, "`u{%X}", char)
			} else {
				out.WriteRune(char)
			}
		}
	}

	return out.String()
}

// doubleSingleQuotes escapes single-quoted string content, where the only
// escape is doubling an embedded quote.
func doubleSingleQuotes(raw string) string {
	return strings.ReplaceAll(raw, "'", "''")
}
