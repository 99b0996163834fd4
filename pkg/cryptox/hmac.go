package cryptox

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignHex returns the lowercase hex HMAC-SHA256 of msg keyed with secret.
func SignHex(secret string, msg []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(msg)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHex reports whether claimed is exactly SignHex(secret, msg).
// The comparison is byte-for-byte, so an uppercase digest does not match,
// and runs in constant time.
func VerifyHex(secret string, msg []byte, claimed string) bool {
	want := SignHex(secret, msg)
	return hmac.Equal([]byte(want), []byte(claimed))
}
