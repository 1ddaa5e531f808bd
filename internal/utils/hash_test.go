package utils

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	// RFC 4231 test case 2
	assert.Equal(t,
		"5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843",
		Fingerprint("what do ya want for nothing?", "Jefe"))

	assert.Equal(t, Fingerprint("a", "k"), Fingerprint("a", "k"))
	assert.NotEqual(t, Fingerprint("a", "k1"), Fingerprint("a", "k2"))
	assert.Len(t, Fingerprint("token", "key"), sha256.Size*2)
}
