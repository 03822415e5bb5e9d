package utils

import (
	"maps"
	"slices"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ApplyOverrides replaces existing keys of the JSON object body with the values in overrides.
//
// A key is looked up among the top-level keys first. When it is not there, the objects
// sitting directly under the top level are searched in document order and the first one
// holding the key is updated. Nothing deeper is searched and arrays are never entered.
// Keys found nowhere are dropped, so the body never gains a key it did not declare.
// Replacement values are not type checked and may change a value's shape.
//
// Overrides are applied in sorted key order, which makes the result deterministic.
func ApplyOverrides(body []byte, overrides map[string]any) ([]byte, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("body is not valid JSON")
	}
	if !gjson.ParseBytes(body).IsObject() {
		return nil, errors.New("body is not a JSON object")
	}

	var err error
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		path, ok := locateKey(body, key)
		if !ok {
			continue
		}
		if body, err = sjson.SetBytes(body, path, overrides[key]); err != nil {
			return nil, errors.Wrapf(err, "override %q", key)
		}
	}
	return body, nil
}

// locateKey returns the escaped path of key at the top level or one object level below.
func locateKey(body []byte, key string) (string, bool) {
	escaped := escapePathComponent(key)
	root := gjson.ParseBytes(body)
	if root.Get(escaped).Exists() {
		return escaped, true
	}

	var path string
	root.ForEach(func(name, value gjson.Result) bool {
		if value.IsObject() && value.Get(escaped).Exists() {
			path = escapePathComponent(name.String()) + "." + escaped
			return false
		}
		return true
	})
	return path, path != ""
}

// escapePathComponent makes key a literal gjson/sjson path component.
func escapePathComponent(key string) string {
	var sb strings.Builder
	sb.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c < 0x80 && !isPlainPathByte(c) {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

func isPlainPathByte(c byte) bool {
	return c == '_' || c == '-' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
