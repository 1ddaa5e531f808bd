// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-keeper/models"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildFindByUsernameOrEmailQuery(t *testing.T) {
	tests := []struct {
		name       string
		builder    sq.StatementBuilderType
		identifier string
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:       "postgres placeholders",
			builder:    dollar,
			identifier: " Alice ",
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				require.Contains(t, q, "from users")
				require.Contains(t, q, "username = $1")
				require.Contains(t, q, "email = $2")
				require.Contains(t, q, " or ")
				require.Contains(t, q, "limit 1")

				// username is normalized, email is compared as given
				require.Equal(t, []any{"alice", " Alice "}, args)
			},
		},
		{
			name:       "sqlite placeholders",
			builder:    question,
			identifier: "bob@x.io",
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, query, "$1")
				require.Equal(t, 2, strings.Count(query, "?"))
				require.Len(t, args, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindByUsernameOrEmailQuery(tt.builder, tt.identifier)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildFindByIDQuery_SelectsAllExpectedColumns(t *testing.T) {
	query, args, err := buildFindByIDQuery(dollar, 42)
	require.NoError(t, err)

	q := strings.ToLower(query)
	for _, c := range userColumns {
		require.Contains(t, q, c)
	}
	require.Equal(t, []any{int64(42)}, args)
}

func Test_buildInsertUserQuery(t *testing.T) {
	now := time.Now()
	query, args, err := buildInsertUserQuery(dollar, models.User{
		Username:     "alice",
		Email:        "alice@x.io",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning user_id")
	require.NotContains(t, q, "(user_id,")
	require.Len(t, args, len(userColumns)-1)

	// empty optional fields are stored as NULL
	require.Nil(t, args[3])
	require.Nil(t, args[6])
	require.Nil(t, args[7])
}

func Test_buildUpdateFieldQuery(t *testing.T) {
	now := time.Now()

	t.Run("known field", func(t *testing.T) {
		query, args, err := buildUpdateFieldQuery(dollar, 1, FieldRefreshToken, "tok", now)
		require.NoError(t, err)
		require.Contains(t, query, "SET refresh_token = $1, updated_at = $2 WHERE user_id = $3")
		require.Equal(t, []any{"tok", now, int64(1)}, args)
	})

	t.Run("empty string clears", func(t *testing.T) {
		_, args, err := buildUpdateFieldQuery(dollar, 1, FieldRefreshToken, "", now)
		require.NoError(t, err)
		require.Nil(t, args[0])
	})

	t.Run("unknown field", func(t *testing.T) {
		_, _, err := buildUpdateFieldQuery(dollar, 1, Field("password"), "x", now)
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

func Test_buildSwapFieldQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildSwapFieldQuery(dollar, 3, FieldRefreshToken, "old", "new", now)
	require.NoError(t, err)
	require.Contains(t, query, "WHERE user_id = $3 AND refresh_token = $4")
	require.Equal(t, []any{"new", now, int64(3), "old"}, args)

	query, args, err = buildSwapFieldQuery(dollar, 3, FieldRefreshToken, nil, "new", now)
	require.NoError(t, err)
	require.Contains(t, query, "refresh_token IS NULL")
	require.Len(t, args, 3)
}

func Test_buildClearExpiredSessionsQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildClearExpiredSessionsQuery(question, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "refresh_token_expires_at is not null")
	require.Contains(t, q, "refresh_token_expires_at < ?")
	require.Equal(t, []any{nil, nil, now, now}, args)
}
