// Package urlutil decodes query strings into flat maps and encodes flat maps
// back into query strings.
package urlutil

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Params splits a raw query string into key/value pairs. A leading '?' is
// ignored, '+' is read as a space, pieces that fail to percent-decode are kept
// as they are, and a repeated key keeps its last value.
func Params(rawQuery string) map[string]string {
	params := make(map[string]string)
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		params[decode(key)] = decode(value)
	}
	return params
}

// ParamsFromURL is Params applied to the query part of rawURL.
func ParamsFromURL(rawURL string) (map[string]string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	return Params(u.RawQuery), nil
}

func decode(s string) string {
	s = strings.ReplaceAll(s, "+", " ")
	if d, err := url.PathUnescape(s); err == nil {
		return d
	}
	return s
}

// EncodeObject writes the scalar entries of obj as "k=v&k=v", keys sorted.
// Values that are not strings, booleans or numbers are skipped.
func EncodeObject(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v, ok := scalar(obj[k])
		if !ok {
			continue
		}
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(v))
	}
	return strings.Join(parts, "&")
}

func scalar(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(x), true
	}
	return "", false
}
