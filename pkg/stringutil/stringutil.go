// Package stringutil has small text helpers: truncation, e-mail shape checks,
// HTML entity escaping and title casing.
package stringutil

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Ellipsis is appended by Shrink when asked to mark truncated text.
const Ellipsis = "..."

// Shrink cuts s to at most maxSize runes. With addDots the cut text ends in
// "..." and the dots count towards maxSize; when maxSize leaves no room for the
// dots they are left off.
func Shrink(s string, maxSize int, addDots bool) string {
	if utf8.RuneCountInString(s) <= maxSize {
		return s
	}
	if maxSize <= 0 {
		return ""
	}
	if addDots && maxSize > len(Ellipsis) {
		return string([]rune(s)[:maxSize-len(Ellipsis)]) + Ellipsis
	}
	return string([]rune(s)[:maxSize])
}

// emailPattern is deliberately loose: something, '@', something, '.', then at
// least two non-digits.
var emailPattern = regexp.MustCompile(`^[\S\s]+[@][\S\s]+[.][^\d]{2,}$`)

// IsValidEmail reports whether s has the basic shape of an e-mail address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

var (
	entityEncoder = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	entityDecoder = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">")
)

// HTMLEntities escapes &, < and >.
func HTMLEntities(s string) string {
	return entityEncoder.Replace(s)
}

// StripHTMLEntities turns &amp;, &lt; and &gt; back into characters.
func StripHTMLEntities(s string) string {
	return entityDecoder.Replace(s)
}

// TitleCase upper-cases the first letter of every space separated word and
// leaves the rest of each word alone.
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
