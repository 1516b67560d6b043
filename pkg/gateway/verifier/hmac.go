package verifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// SignPayload computes the signature scheme shared by the Stripe-style and
// generic strategies and by outbound delivery signing: hex encoded
// HMAC-SHA256 over "<unix timestamp>.<raw body>".
func SignPayload(secret string, timestamp int64, rawBody []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(rawBody)
	return hex.EncodeToString(mac.Sum(nil))
}

// signatureMatches compares a candidate hex signature in constant time.
func signatureMatches(secret string, timestamp int64, rawBody []byte, candidate string) bool {
	expected := SignPayload(secret, timestamp, rawBody)
	return hmac.Equal([]byte(expected), []byte(candidate))
}
