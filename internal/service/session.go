package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

// SingleActiveSession keeps exactly one refresh token per user in the
// refresh_token field of the user record. Recording a token silently ends
// the previous session, e.g. on another device.
type SingleActiveSession struct {
	store store.CredentialStore
	ttl   time.Duration
	now   func() time.Time
}

// NewSingleActiveSession returns a registry backed by credentialStore.
// ttl is used to stamp the stored expiry read by the session sweeper.
func NewSingleActiveSession(credentialStore store.CredentialStore, ttl time.Duration) *SingleActiveSession {
	return &SingleActiveSession{
		store: credentialStore,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Record stores token and its expiry in one write, so a concurrent sweep
// never sees the new token next to a stale expiry.
func (s *SingleActiveSession) Record(ctx context.Context, userID int64, token string) error {
	if err := s.store.UpdateField(ctx, userID, store.FieldRefreshToken, token, s.expiry()); err != nil {
		return s.storeError(err)
	}

	return nil
}

func (s *SingleActiveSession) Active(ctx context.Context, userID int64) (string, error) {
	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		return "", s.storeError(err)
	}

	return user.RefreshToken, nil
}

func (s *SingleActiveSession) Clear(ctx context.Context, userID int64) error {
	err := s.store.UpdateField(ctx, userID, store.FieldRefreshToken, nil,
		store.Set(store.FieldRefreshTokenExpiresAt, nil))
	if err != nil {
		return s.storeError(err)
	}

	return nil
}

// Rotate swaps the refresh_token field with a conditional update, so at most
// one of several concurrent callers presenting the same token succeeds.
func (s *SingleActiveSession) Rotate(ctx context.Context, userID int64, presented, next string) error {
	err := s.store.SwapField(ctx, userID, store.FieldRefreshToken, presented, next, s.expiry())
	if errors.Is(err, store.ErrFieldMismatch) {
		return ErrSessionMismatch
	}
	if err != nil {
		return s.storeError(err)
	}

	return nil
}

func (s *SingleActiveSession) expiry() store.Assignment {
	return store.Set(store.FieldRefreshTokenExpiresAt, s.now().Add(s.ttl).UTC())
}

func (s *SingleActiveSession) storeError(err error) error {
	if errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	return fmt.Errorf("session store: %w", err)
}
