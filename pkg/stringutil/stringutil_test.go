package stringutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShrink(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		max     int
		addDots bool
		want    string
	}{
		{"fits", "short", 10, true, "short"},
		{"exact fit", "12345", 5, true, "12345"},
		{"cut", "hello world", 5, false, "hello"},
		{"cut with dots", "hello world", 8, true, "hello..."},
		{"no room for dots", "hello world", 3, true, "hel"},
		{"runes not bytes", "héllo wörld", 7, true, "héll..."},
		{"zero", "abc", 0, true, ""},
		{"negative", "abc", -1, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shrink(tt.in, tt.max, tt.addDots))
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "first.last@example.com", "x+tag@sub.domain.org"}
	invalid := []string{"", "plainaddress", "@example.com", "user@", "user@host", "user@host.c", "user@host.12"}

	for _, s := range valid {
		assert.True(t, IsValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsValidEmail(s), s)
	}
}

func TestHTMLEntities(t *testing.T) {
	in := `<a href="x?a=1&b=2">Tom & Jerry</a>`
	escaped := HTMLEntities(in)
	assert.Equal(t, `&lt;a href="x?a=1&amp;b=2"&gt;Tom &amp; Jerry&lt;/a&gt;`, escaped)
	assert.Equal(t, in, StripHTMLEntities(escaped))
	assert.Equal(t, "&lt;", StripHTMLEntities("&amp;lt;"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Hello World", TitleCase("hello world"))
	assert.Equal(t, "McDonald's IPhone", TitleCase("mcDonald's iPhone"))
	assert.Equal(t, "Élan  Vital", TitleCase("élan  vital"))
	assert.Equal(t, "", TitleCase(""))
}
