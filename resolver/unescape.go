package resolver

import "strings"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Unescape decodes form-style percent escapes in s: '+' becomes a space and
// "%XX" becomes the byte 0xXX. Malformed escapes are copied through as-is,
// so Unescape never fails.
func Unescape(s string) string {
	first := strings.IndexAny(s, "%+")
	if first == -1 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	sb.WriteString(s[:first])

	for i := first; i < len(s); i++ {
		switch c := s[i]; c {
		case '%':
			if i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
				sb.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
				i += 2
			} else {
				sb.WriteByte(c)
			}
		case '+':
			sb.WriteByte(' ')
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}
