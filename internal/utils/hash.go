package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns the hex HMAC-SHA256 of token under key. The redis
// session set keeps refresh tokens in this form, so a leaked set never
// exposes usable tokens.
func Fingerprint(token, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
