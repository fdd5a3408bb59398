package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// ComputeSignature returns the hex-encoded HMAC-SHA512 of body keyed with
// secret. This is the fingerprint the processor sends alongside each webhook
// delivery.
func ComputeSignature(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks presented against the HMAC-SHA512 of body under
// secret. The comparison is constant-time. body must be the raw request body
// exactly as received; hashing a re-serialized copy breaks the comparison.
// Returns false for empty inputs, never panics.
func VerifySignature(body []byte, presented, secret string) bool {
	if len(body) == 0 || presented == "" || secret == "" {
		return false
	}
	computed := ComputeSignature(body, secret)
	return hmac.Equal([]byte(computed), []byte(presented))
}
