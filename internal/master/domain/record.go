package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// Record is the full persisted state of one channel, including its secret.
// Whitelisted values are kept as raw JSON so any JSON type round-trips
// untouched. Keys outside the whitelist are kept in extra so that rewriting
// the document never loses data added by hand.
type Record struct {
	Secret string

	values map[Field]json.RawMessage
	extra  map[string]json.RawMessage
}

// NewRecord builds a record from a secret and whitelisted values.
func NewRecord(secret string, values map[Field]json.RawMessage) Record {
	r := Record{Secret: secret, values: make(map[Field]json.RawMessage, len(values))}
	for f, v := range values {
		r.values[f] = v
	}
	return r
}

// Value returns the raw JSON stored for f.
func (r Record) Value(f Field) (json.RawMessage, bool) {
	v, ok := r.values[f]
	return v, ok
}

// Clone returns a deep enough copy for copy-on-write updates: maps are
// duplicated, raw values are never mutated in place so they are shared.
func (r Record) Clone() Record {
	return Record{
		Secret: r.Secret,
		values: maps.Clone(r.values),
		extra:  maps.Clone(r.extra),
	}
}

// Merge copies every field present in p onto r and returns the fields that
// were written. Fields absent from p are left alone.
func (r *Record) Merge(p Patch) []Field {
	if r.values == nil {
		r.values = make(map[Field]json.RawMessage, len(p))
	}

	var written []Field
	for _, f := range Fields {
		v, ok := p[f]
		if !ok {
			continue
		}
		r.values[f] = v
		written = append(written, f)
	}
	return written
}

// Project returns the public view of r.
func (r Record) Project() Projection {
	p := Projection{found: true, values: make(map[Field]json.RawMessage, len(Fields))}
	for _, f := range Fields {
		if v, ok := r.values[f]; ok {
			p.values[f] = v
		}
	}
	return p
}

// MarshalJSON writes the record as stored on disk, secret included.
func (r Record) MarshalJSON() ([]byte, error) {
	doc := make(map[string]json.RawMessage, len(r.values)+len(r.extra)+1)
	maps.Copy(doc, r.extra)
	for f, v := range r.values {
		doc[string(f)] = v
	}
	if r.Secret != "" {
		secret, err := json.Marshal(r.Secret)
		if err != nil {
			return nil, err
		}
		doc[SecretKey] = secret
	}
	return json.Marshal(doc)
}

var errSecretNotString = errors.New("secret must be a string")

// UnmarshalJSON reads a record from the channels document.
func (r *Record) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	if doc == nil {
		return errors.New("channel record must be an object")
	}

	rec := Record{values: make(map[Field]json.RawMessage)}
	for k, v := range doc {
		if k == SecretKey {
			if err := json.Unmarshal(v, &rec.Secret); err != nil {
				return fmt.Errorf("%w: %v", errSecretNotString, err)
			}
			continue
		}
		if f, ok := LookupField(k); ok {
			rec.values[f] = v
			continue
		}
		if rec.extra == nil {
			rec.extra = make(map[string]json.RawMessage)
		}
		rec.extra[k] = v
	}

	*r = rec
	return nil
}
