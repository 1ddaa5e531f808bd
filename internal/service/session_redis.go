package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

const sessionKeyPrefix = "auth:sessions:"

// rotateScript replaces a member of the session set only if it is present.
// KEYS[1] session set, KEYS[2] latest token
// ARGV[1] presented fingerprint, ARGV[2] next fingerprint, ARGV[3] next token, ARGV[4] ttl ms
var rotateScript = redis.NewScript(`
if redis.call('SISMEMBER', KEYS[1], ARGV[1]) == 0 then
	return 0
end
redis.call('SREM', KEYS[1], ARGV[1])
redis.call('SADD', KEYS[1], ARGV[2])
redis.call('PEXPIRE', KEYS[1], ARGV[4])
redis.call('SET', KEYS[2], ARGV[3], 'PX', ARGV[4])
return 1
`)

// MultiSession keeps a set of independently rotating refresh tokens per
// user in redis, one per device. Clear revokes all of them at once.
//
// Set members are HMAC fingerprints of the tokens. The set expires after the
// refresh token lifetime of its most recent member.
type MultiSession struct {
	client         redis.UniversalClient
	fingerprintKey string
	ttl            time.Duration
}

// NewMultiSession returns a redis-backed registry. fingerprintKey keys the
// HMAC applied to tokens before they are stored in the set.
func NewMultiSession(client redis.UniversalClient, fingerprintKey string, ttl time.Duration) *MultiSession {
	return &MultiSession{
		client:         client,
		fingerprintKey: fingerprintKey,
		ttl:            ttl,
	}
}

func (m *MultiSession) Record(ctx context.Context, userID int64, token string) error {
	setKey, latestKey := sessionKeys(userID)

	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, setKey, m.fingerprint(token))
		pipe.PExpire(ctx, setKey, m.ttl)
		pipe.Set(ctx, latestKey, token, m.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error recording session: %w", err)
	}

	return nil
}

func (m *MultiSession) Active(ctx context.Context, userID int64) (string, error) {
	_, latestKey := sessionKeys(userID)

	token, err := m.client.Get(ctx, latestKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("error reading session: %w", err)
	}

	return token, nil
}

func (m *MultiSession) Clear(ctx context.Context, userID int64) error {
	setKey, latestKey := sessionKeys(userID)

	if err := m.client.Del(ctx, setKey, latestKey).Err(); err != nil {
		return fmt.Errorf("error clearing sessions: %w", err)
	}

	return nil
}

func (m *MultiSession) Rotate(ctx context.Context, userID int64, presented, next string) error {
	setKey, latestKey := sessionKeys(userID)

	swapped, err := rotateScript.Run(ctx, m.client,
		[]string{setKey, latestKey},
		m.fingerprint(presented), m.fingerprint(next), next, m.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return fmt.Errorf("error rotating session: %w", err)
	}
	if swapped == 0 {
		return ErrSessionMismatch
	}

	return nil
}

func (m *MultiSession) fingerprint(token string) string {
	return utils.Fingerprint(token, m.fingerprintKey)
}

func sessionKeys(userID int64) (set, latest string) {
	set = sessionKeyPrefix + strconv.FormatInt(userID, 10)
	return set, set + ":latest"
}
