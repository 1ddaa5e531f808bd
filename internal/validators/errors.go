package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyIdentifier       = errors.New("username or email is required")
	ErrEmptyPassword         = errors.New("password is required")
	ErrEmptyUsername         = errors.New("username is required")
	ErrEmptyEmail            = errors.New("email is required")
	ErrEmptyFullName         = errors.New("full name is required")
	ErrEmptyRefreshToken     = errors.New("refresh token is required")
	ErrMalformedRefreshToken = errors.New("malformed refresh token")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidUsername       = errors.New("invalid username")
	ErrValueTooLong          = errors.New("value is too long")
)
