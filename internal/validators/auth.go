package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldIdentifier   = "identifier"
	FieldPassword     = "password"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldFullName     = "full_name"
	FieldRefreshToken = "refresh_token"
)

// Column limits of the users table.
const (
	maxUsernameLength = 64
	maxEmailLength    = 255
	maxFullNameLength = 255
	// bcrypt ignores input past 72 bytes
	maxPasswordLength = 72
)

// AuthRequestValidator implements [Validator] for the authentication request
// models: RegisterRequest, LoginRequest and RefreshRequest, in value or
// pointer form. Blank means empty after trimming spaces.
type AuthRequestValidator struct {
	validate *validator.Validate
}

// NewAuthRequestValidator constructs a new AuthRequestValidator and returns
// it as the Validator interface.
func NewAuthRequestValidator() Validator {
	return &AuthRequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches validation to the type-specific method. Optional fields
// restrict validation to the named subset.
func (v *AuthRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)
	case models.RefreshRequest:
		return v.validateRefreshRequest(ctx, value, fields...)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AuthRequestValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			if isBlank(request.FullName) {
				return ErrEmptyFullName
			}
			if len(request.FullName) > maxFullNameLength {
				return fmt.Errorf("%w: %s", ErrValueTooLong, FieldFullName)
			}
		case FieldUsername:
			if isBlank(request.Username) {
				return ErrEmptyUsername
			}
			if len(strings.TrimSpace(request.Username)) > maxUsernameLength {
				return fmt.Errorf("%w: %s", ErrValueTooLong, FieldUsername)
			}
			username := strings.TrimSpace(request.Username)
			if strings.ContainsFunc(username, unicode.IsSpace) {
				return ErrInvalidUsername
			}
			if err := v.validate.VarCtx(ctx, username, "printascii,excludesall=@"); err != nil {
				return ErrInvalidUsername
			}
		case FieldEmail:
			if isBlank(request.Email) {
				return ErrEmptyEmail
			}
			if len(request.Email) > maxEmailLength {
				return fmt.Errorf("%w: %s", ErrValueTooLong, FieldEmail)
			}
			if err := v.validate.VarCtx(ctx, strings.TrimSpace(request.Email), "email"); err != nil {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := validatePassword(request.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateLoginRequest(ctx context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if isBlank(request.LoginIdentifier()) {
				return ErrEmptyIdentifier
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AuthRequestValidator) validateRefreshRequest(ctx context.Context, request models.RefreshRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRefreshToken}
	}

	for _, f := range fields {
		switch f {
		case FieldRefreshToken:
			if isBlank(request.RefreshToken) {
				return ErrEmptyRefreshToken
			}
			if err := v.validate.VarCtx(ctx, request.RefreshToken, "jwt"); err != nil {
				return ErrMalformedRefreshToken
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validatePassword(password string) error {
	if isBlank(password) {
		return ErrEmptyPassword
	}
	if len(password) > maxPasswordLength {
		return fmt.Errorf("%w: %s", ErrValueTooLong, FieldPassword)
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
