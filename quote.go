package docsearch

import "strings"

// URLSafeChars are the characters QuoteURL leaves untouched in addition to
// letters, digits and "_.-~".
const URLSafeChars = ";/?:@&=$,><-[]"

const upperhex = "0123456789ABCDEF"

// QuoteURL percent-encodes a complete URL built from user text. Spaces
// become "+", characters in URLSafeChars and unreserved characters are
// kept, and every other byte of the UTF-8 encoding is written as %XX.
func QuoteURL(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			sb.WriteByte('+')
		case isUnreserved(c) || strings.IndexByte(URLSafeChars, c) >= 0:
			sb.WriteByte(c)
		default:
			sb.WriteByte('%')
			sb.WriteByte(upperhex[c>>4])
			sb.WriteByte(upperhex[c&15])
		}
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '_' || c == '.' || c == '-' || c == '~'
}
