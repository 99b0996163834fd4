package service

import (
	"encoding/base64"
	"strings"
)

var payloadEncodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// decodePayload decodes the base64 payload of a set request. Clients
// commonly forget to escape '+', which query parsing turns into a space,
// so spaces are mapped back before anything else; a trailing space is a
// trailing '+'. Line breaks and tabs around the payload are dropped.
func decodePayload(s string) ([]byte, error) {
	s = strings.Trim(strings.ReplaceAll(s, " ", "+"), "\r\n\t")

	var firstErr error
	for _, enc := range payloadEncodings {
		data, err := enc.DecodeString(s)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
