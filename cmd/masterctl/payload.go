package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
	"github.com/cappelnord/codeklavier-ar-master/pkg/mastersdk"
	"github.com/spf13/pflag"
)

// payloadFlags builds an update document from --json and repeated --set.
type payloadFlags struct {
	document string
	sets     []string
	strict   bool
}

func (p *payloadFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&p.document, "json", "", "update document as a JSON object")
	fs.StringArrayVar(&p.sets, "set", nil, "field=value to set; value is JSON when it parses, a string otherwise (repeatable)")
	fs.BoolVar(&p.strict, "strict", true, "reject fields the master ignores")
}

func (p *payloadFlags) fields() (map[string]any, error) {
	fields := map[string]any{}

	if p.document != "" {
		if err := json.Unmarshal([]byte(p.document), &fields); err != nil {
			return nil, fmt.Errorf("--json must be a JSON object: %w", err)
		}
		if fields == nil {
			return nil, errors.New("--json must be a JSON object")
		}
	}

	for _, s := range p.sets {
		key, raw, ok := strings.Cut(s, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("--set %q: expected field=value", s)
		}
		fields[key] = parseValue(raw)
	}

	if len(fields) == 0 {
		return nil, errors.New("nothing to send: use --json or --set")
	}

	if p.strict {
		for key := range fields {
			if _, ok := domain.LookupField(key); !ok {
				return nil, fmt.Errorf("field %q is not accepted by the master (use --strict=false to send anyway)", key)
			}
		}
	}
	return fields, nil
}

// parseValue turns "true", "1.5", "null" or `"x"` into their JSON values
// and leaves everything else as a plain string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

func (p *payloadFlags) sign(secret string) (mastersdk.SignedPayload, error) {
	fields, err := p.fields()
	if err != nil {
		return mastersdk.SignedPayload{}, err
	}
	return mastersdk.Sign(secret, fields)
}
