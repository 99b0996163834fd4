package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrPatchNotObject is returned when a payload is valid JSON but not an object.
var ErrPatchNotObject = errors.New("payload must be a JSON object")

// Patch holds the whitelisted fields of an update payload. A key present
// with a falsy value (false, 0, "", null) is still present.
type Patch map[Field]json.RawMessage

// ParsePatch decodes a JSON object and keeps only whitelisted keys.
func ParsePatch(data []byte) (Patch, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		if json.Valid(trimmed) {
			return nil, ErrPatchNotObject
		}
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, err
	}

	p := make(Patch, len(doc))
	for k, v := range doc {
		if f, ok := LookupField(k); ok {
			p[f] = v
		}
	}
	return p, nil
}

// Force sets f to the JSON encoding of s, replacing whatever was submitted.
func (p Patch) Force(f Field, s string) {
	raw, _ := json.Marshal(s)
	p[f] = raw
}
