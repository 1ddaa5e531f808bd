package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// MemoryUserStore is an in-process [CredentialStore] and
// [ExpiredSessionCleaner]. A single mutex guards every read and write, which
// makes SwapField a plain compare-and-set.
type MemoryUserStore struct {
	mu         sync.Mutex
	users      map[int64]models.User
	byUsername map[string]int64
	byEmail    map[string]int64
	nextID     int64
	now        func() time.Time
}

// NewMemoryUserStore returns an empty store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users:      make(map[int64]models.User),
		byUsername: make(map[string]int64),
		byEmail:    make(map[string]int64),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (m *MemoryUserStore) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byUsername[models.NormalizeUsername(identifier)]; ok {
		return m.users[id], nil
	}
	if id, ok := m.byEmail[identifier]; ok {
		return m.users[id], nil
	}

	return models.User{}, ErrUserNotFound
}

func (m *MemoryUserStore) FindByID(ctx context.Context, userID int64) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return u, nil
}

func (m *MemoryUserStore) Save(ctx context.Context, user models.User, opts SaveOptions) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}
	if !opts.SkipValidation {
		if err := validateUser(user); err != nil {
			return models.User{}, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	user.UpdatedAt = now

	var prev models.User
	if user.UserID != 0 {
		var ok bool
		if prev, ok = m.users[user.UserID]; !ok {
			return models.User{}, ErrUserNotFound
		}
	}

	if id, ok := m.byUsername[user.Username]; ok && user.Username != "" && id != user.UserID {
		return models.User{}, ErrUserAlreadyExists
	}
	if id, ok := m.byEmail[user.Email]; ok && user.Email != "" && id != user.UserID {
		return models.User{}, ErrUserAlreadyExists
	}

	if user.UserID == 0 {
		m.nextID++
		user.UserID = m.nextID
		user.CreatedAt = now
	} else {
		user.CreatedAt = prev.CreatedAt
		delete(m.byUsername, prev.Username)
		delete(m.byEmail, prev.Email)
	}

	m.put(user)
	return user, nil
}

func (m *MemoryUserStore) UpdateField(ctx context.Context, userID int64, field Field, value any, also ...Assignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	set, err := assignments(field, value, also)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return m.assign(userID, set)
}

func (m *MemoryUserStore) SwapField(ctx context.Context, userID int64, field Field, expected, next any, also ...Assignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	set, err := assignments(field, next, also)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok || !equalValues(field.get(u), expected) {
		return ErrFieldMismatch
	}

	return m.assign(userID, set)
}

func (m *MemoryUserStore) ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var cleared int64
	for id, u := range m.users {
		if u.RefreshTokenExpiresAt.IsZero() || !u.RefreshTokenExpiresAt.Before(now) {
			continue
		}
		u.RefreshToken = ""
		u.RefreshTokenExpiresAt = time.Time{}
		u.UpdatedAt = m.now()
		m.users[id] = u
		cleared++
	}

	return cleared, nil
}

// assign applies every assignment to a copy of the user and stores it only
// if all of them succeed. Must be called with mu held.
func (m *MemoryUserStore) assign(userID int64, set []Assignment) error {
	prev, ok := m.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	u := prev
	for _, a := range set {
		if err := a.Field.set(&u, a.Value); err != nil {
			return err
		}
	}

	if id, ok := m.byUsername[u.Username]; ok && id != userID {
		return ErrUserAlreadyExists
	}
	if id, ok := m.byEmail[u.Email]; ok && id != userID {
		return ErrUserAlreadyExists
	}
	delete(m.byUsername, prev.Username)
	delete(m.byEmail, prev.Email)

	u.UpdatedAt = m.now()
	m.put(u)
	return nil
}

func (m *MemoryUserStore) put(u models.User) {
	m.users[u.UserID] = u
	if u.Username != "" {
		m.byUsername[u.Username] = u.UserID
	}
	if u.Email != "" {
		m.byEmail[u.Email] = u.UserID
	}
}
