package mons

import (
	"fmt"
	"strings"
)

const snapshotURLPrefix = "https://mons.link/snapshot/"

// SnapshotURL builds a human-debuggable link encoding g's FEN. It is
// not a stable wire format: only the FEN text it carries is, the URL
// itself exists for pasting into chat or a bug report.
func SnapshotURL(g *MonsGame) string {
	return snapshotURLPrefix + percentEncodeFEN(EncodeFEN(g)) + "/"
}

// percentEncodeFEN percent-encodes every byte outside the unreserved
// set (RFC 3986: ALPHA / DIGIT / "-" / "." / "_" / "~"), using
// uppercase hex digits. Go's net/url escapers leave more characters
// unescaped than that (sub-delims are valid in a path segment), so a
// dedicated encoder is used instead.
func percentEncodeFEN(fen string) string {
	var b strings.Builder
	for i := 0; i < len(fen); i++ {
		c := fen[i]
		if isUnreservedByte(c) {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}

func isUnreservedByte(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	default:
		return false
	}
}
