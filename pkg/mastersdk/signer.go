package mastersdk

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/cappelnord/codeklavier-ar-master/pkg/cryptox"
)

// SignedPayload is what a set request carries.
type SignedPayload struct {
	// Payload is the standard base64 encoding of the JSON document.
	Payload string

	// Hash is the lowercase hex HMAC-SHA256 of the JSON document.
	Hash string
}

// Sign encodes fields as JSON and signs the bytes with secret.
func Sign(secret string, fields map[string]any) (SignedPayload, error) {
	doc, err := json.Marshal(fields)
	if err != nil {
		return SignedPayload{}, fmt.Errorf("failed to encode payload: %w", err)
	}
	return SignRaw(secret, doc), nil
}

// SignRaw signs an already encoded document.
func SignRaw(secret string, doc []byte) SignedPayload {
	return SignedPayload{
		Payload: base64.StdEncoding.EncodeToString(doc),
		Hash:    cryptox.SignHex(secret, doc),
	}
}
