package service

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
)

// BcryptVerifier implements [PasswordVerifier] with bcrypt. The comparison
// is constant-time.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier returns a verifier hashing new passwords with cost.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

func (b *BcryptVerifier) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: malformed password hash: %w", ErrCredentialStoreCorruption, err)
	}
}

func (b *BcryptVerifier) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// hashDispatcher hashes with the configured algorithm and verifies stored
// hashes with whichever algorithm produced them.
type hashDispatcher struct {
	primary PasswordVerifier
	bcrypt  PasswordVerifier
	argon2  PasswordVerifier
}

// NewPasswordVerifier returns the [PasswordVerifier] selected by
// cfg.PasswordHasher.
func NewPasswordVerifier(cfg config.App) PasswordVerifier {
	d := &hashDispatcher{
		bcrypt: NewBcryptVerifier(cfg.PasswordHashCost),
		argon2: NewArgon2idVerifier(),
	}

	d.primary = d.bcrypt
	if cfg.PasswordHasher == config.PasswordHasherArgon2id {
		d.primary = d.argon2
	}
	return d
}

func (d *hashDispatcher) Hash(password string) (string, error) {
	return d.primary.Hash(password)
}

func (d *hashDispatcher) Verify(password, hash string) (bool, error) {
	if strings.HasPrefix(hash, argon2idPrefix) {
		return d.argon2.Verify(password, hash)
	}
	return d.bcrypt.Verify(password, hash)
}
