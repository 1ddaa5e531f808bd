// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

const argon2idPrefix = "$argon2id$"

// Bounds for parameters read back from stored hashes. Values outside them
// either panic in argon2.IDKey or let a tampered row exhaust the host.
const (
	argon2MaxMemoryKiB  = 1 << 20
	argon2MaxIterations = 16
	argon2MaxKeyLen     = 128
)

// Argon2idVerifier implements [PasswordVerifier] with Argon2id. Hashes are
// stored in the PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// so the parameters of old hashes keep verifying after a tuning change.
type Argon2idVerifier struct {
	// Argon2id tuning parameters for new hashes.
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

// NewArgon2idVerifier returns a verifier with the OWASP recommended
// parameters: 1 iteration, 64 MiB, 4 threads and a 256-bit key.
func NewArgon2idVerifier() *Argon2idVerifier {
	return &Argon2idVerifier{
		time:    1,
		memory:  64 * 1024,
		threads: 4,
		keyLen:  32,
		saltLen: 16,
	}
}

func (a *Argon2idVerifier) Hash(password string) (string, error) {
	salt := make([]byte, a.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, a.time, a.memory, a.threads, a.keyLen)

	return fmt.Sprintf("%sv=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2idPrefix, argon2.Version, a.memory, a.time, a.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (a *Argon2idVerifier) Verify(password, hash string) (bool, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: malformed argon2id hash", ErrCredentialStoreCorruption)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported argon2id version %q", ErrCredentialStoreCorruption, parts[2])
	}

	var memory, iterations uint32
	var threads uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &threads); err != nil {
		return false, fmt.Errorf("%w: malformed argon2id parameters: %w", ErrCredentialStoreCorruption, err)
	}
	if iterations < 1 || iterations > argon2MaxIterations ||
		threads < 1 ||
		memory < 1 || memory > argon2MaxMemoryKiB {
		return false, fmt.Errorf("%w: argon2id parameters out of range: %s", ErrCredentialStoreCorruption, parts[3])
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: malformed argon2id salt: %w", ErrCredentialStoreCorruption, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(want) == 0 || len(want) > argon2MaxKeyLen {
		return false, fmt.Errorf("%w: malformed argon2id key", ErrCredentialStoreCorruption)
	}

	got := argon2.IDKey([]byte(password), salt, iterations, memory, threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
