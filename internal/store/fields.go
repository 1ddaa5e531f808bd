package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Field names a single updatable column of the users table.
type Field string

const (
	FieldUsername              Field = "username"
	FieldEmail                 Field = "email"
	FieldFullName              Field = "full_name"
	FieldAvatar                Field = "avatar"
	FieldCoverImage            Field = "cover_image"
	FieldPasswordHash          Field = "password_hash"
	FieldRefreshToken          Field = "refresh_token"
	FieldRefreshTokenExpiresAt Field = "refresh_token_expires_at"
)

// Assignment is one extra column written together with the main field of
// UpdateField or SwapField.
type Assignment struct {
	Field Field
	Value any
}

// Set builds an [Assignment].
func Set(field Field, value any) Assignment {
	return Assignment{Field: field, Value: value}
}

// assignments puts field first and validates every name.
func assignments(field Field, value any, also []Assignment) ([]Assignment, error) {
	all := append([]Assignment{{Field: field, Value: value}}, also...)
	for _, a := range all {
		if !a.Field.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, a.Field)
		}
	}
	return all, nil
}

// String implements [fmt.Stringer].
func (f Field) String() string {
	return string(f)
}

// Valid reports whether f is one of the known fields. Only known fields
// ever reach a SQL statement.
func (f Field) Valid() bool {
	switch f {
	case FieldUsername, FieldEmail, FieldFullName, FieldAvatar, FieldCoverImage,
		FieldPasswordHash, FieldRefreshToken, FieldRefreshTokenExpiresAt:
		return true
	}
	return false
}

func (f Field) isTime() bool {
	return f == FieldRefreshTokenExpiresAt
}

// get returns the value of f in u, nil for a cleared field.
func (f Field) get(u models.User) any {
	var s string
	switch f {
	case FieldUsername:
		s = u.Username
	case FieldEmail:
		s = u.Email
	case FieldFullName:
		s = u.FullName
	case FieldAvatar:
		s = u.Avatar
	case FieldCoverImage:
		s = u.CoverImage
	case FieldPasswordHash:
		s = u.PasswordHash
	case FieldRefreshToken:
		s = u.RefreshToken
	case FieldRefreshTokenExpiresAt:
		if u.RefreshTokenExpiresAt.IsZero() {
			return nil
		}
		return u.RefreshTokenExpiresAt
	}
	if s == "" {
		return nil
	}
	return s
}

// set assigns value to f in u. A nil value clears the field.
func (f Field) set(u *models.User, value any) error {
	if f.isTime() {
		switch v := value.(type) {
		case nil:
			u.RefreshTokenExpiresAt = time.Time{}
		case time.Time:
			u.RefreshTokenExpiresAt = v
		default:
			return ErrInvalidFieldValue
		}
		return nil
	}

	var s string
	switch v := value.(type) {
	case nil:
	case string:
		s = v
	default:
		return ErrInvalidFieldValue
	}

	switch f {
	case FieldUsername:
		u.Username = s
	case FieldEmail:
		u.Email = s
	case FieldFullName:
		u.FullName = s
	case FieldAvatar:
		u.Avatar = s
	case FieldCoverImage:
		u.CoverImage = s
	case FieldPasswordHash:
		u.PasswordHash = s
	case FieldRefreshToken:
		u.RefreshToken = s
	}
	return nil
}

// equalValues compares two field values, treating nil and "" and the zero
// time as the same cleared value.
func equalValues(a, b any) bool {
	return normalizeValue(a) == normalizeValue(b)
}

func normalizeValue(v any) any {
	switch x := v.(type) {
	case string:
		if x == "" {
			return nil
		}
	case time.Time:
		if x.IsZero() {
			return nil
		}
		return x.UTC().UnixNano()
	}
	return v
}

func validateUser(u models.User) error {
	if u.Username == "" || u.Email == "" || u.PasswordHash == "" {
		return ErrInvalidUser
	}
	return nil
}
