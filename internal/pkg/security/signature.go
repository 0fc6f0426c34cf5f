// Package security implements the shared-secret request signing used by the
// pre-dispatch signature gate.
package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignRequest computes the hex HMAC-SHA256 of method, path and body under the
// shared secret. Clients send the result in the X-Signature header.
func SignRequest(secret, method, path string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(method))
	mac.Write([]byte(path))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a presented signature in constant time.
func VerifySignature(secret, method, path string, body []byte, signature string) bool {
	presented, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(method))
	mac.Write([]byte(path))
	mac.Write(body)
	return hmac.Equal(presented, mac.Sum(nil))
}
