package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/models"
)

const usersTable = "users"

// userColumns is the column order shared by every SELECT and scanUser.
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"full_name",
	"avatar",
	"cover_image",
	"password_hash",
	"refresh_token",
	"refresh_token_expires_at",
	"created_at",
	"updated_at",
}

func buildFindByUsernameOrEmailQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Or{
			sq.Eq{"username": models.NormalizeUsername(identifier)},
			sq.Eq{"email": identifier},
		}).
		Limit(1).
		ToSql()
}

func buildFindByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns[1:]...).
		Values(
			u.Username,
			u.Email,
			u.FullName,
			nullString(u.Avatar),
			nullString(u.CoverImage),
			u.PasswordHash,
			nullString(u.RefreshToken),
			nullTime(u.RefreshTokenExpiresAt),
			u.CreatedAt,
			u.UpdatedAt,
		).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Update(usersTable).
		SetMap(map[string]any{
			"username":                 u.Username,
			"email":                    u.Email,
			"full_name":                u.FullName,
			"avatar":                   nullString(u.Avatar),
			"cover_image":              nullString(u.CoverImage),
			"password_hash":            u.PasswordHash,
			"refresh_token":            nullString(u.RefreshToken),
			"refresh_token_expires_at": nullTime(u.RefreshTokenExpiresAt),
			"updated_at":               u.UpdatedAt,
		}).
		Where(sq.Eq{"user_id": u.UserID}).
		ToSql()
}

func buildUpdateFieldQuery(b sq.StatementBuilderType, userID int64, field Field, value any, now time.Time, also ...Assignment) (string, []any, error) {
	set, err := assignments(field, value, also)
	if err != nil {
		return "", nil, err
	}

	return setAssignments(b.Update(usersTable), set, now).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// buildSwapFieldQuery builds the conditional update behind SwapField. A nil
// expected value renders as "IS NULL".
func buildSwapFieldQuery(b sq.StatementBuilderType, userID int64, field Field, expected, next any, now time.Time, also ...Assignment) (string, []any, error) {
	set, err := assignments(field, next, also)
	if err != nil {
		return "", nil, err
	}

	return setAssignments(b.Update(usersTable), set, now).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{field.String(): normalizeArg(expected)}).
		ToSql()
}

func setAssignments(u sq.UpdateBuilder, set []Assignment, now time.Time) sq.UpdateBuilder {
	for _, a := range set {
		u = u.Set(a.Field.String(), normalizeArg(a.Value))
	}
	return u.Set("updated_at", now)
}

func buildClearExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("refresh_token", nil).
		Set("refresh_token_expires_at", nil).
		Set("updated_at", now).
		Where(sq.NotEq{"refresh_token_expires_at": nil}).
		Where(sq.Lt{"refresh_token_expires_at": now}).
		ToSql()
}

// normalizeArg maps empty strings and zero times to SQL NULL.
func normalizeArg(v any) any {
	switch x := v.(type) {
	case string:
		return nullString(x)
	case time.Time:
		return nullTime(x)
	}
	return v
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
