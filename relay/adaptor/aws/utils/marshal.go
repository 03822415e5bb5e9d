package utils

import (
	"bytes"
	"encoding/json"

	"github.com/Laisky/errors/v2"
)

// MarshalPayload serializes v as compact JSON without HTML escaping,
// so prompts containing markup reach the vendor verbatim.
func MarshalPayload(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "marshal payload")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// BuildPayload serializes a vendor default body and applies the overrides.
func BuildPayload(body any, overrides map[string]any) (string, error) {
	payload, err := MarshalPayload(body)
	if err != nil {
		return "", err
	}
	if len(overrides) > 0 {
		if payload, err = ApplyOverrides(payload, overrides); err != nil {
			return "", errors.Wrap(err, "apply inference parameters")
		}
	}
	return string(payload), nil
}
