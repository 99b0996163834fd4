package domain

import (
	"bytes"
	"encoding/json"
)

// Projection is the secret-free view of a channel returned to readers.
// A projection of a known channel always carries every whitelisted key,
// with null for values the record does not have. The zero Projection
// stands for an unknown channel and encodes as {}.
type Projection struct {
	found  bool
	values map[Field]json.RawMessage
}

// Found reports whether the projection was built from an existing record.
func (p Projection) Found() bool { return p.found }

// Get returns the raw value for f, nil when unset.
func (p Projection) Get(f Field) json.RawMessage { return p.values[f] }

// MarshalJSON emits the whitelisted keys in table order.
func (p Projection) MarshalJSON() ([]byte, error) {
	if !p.found {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(f))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		v, ok := p.values[f]
		if !ok || len(v) == 0 {
			buf.WriteString("null")
			continue
		}
		if err := json.Compact(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
