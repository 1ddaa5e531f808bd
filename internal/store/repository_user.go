package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// UserRepository is the SQL-backed implementation of [CredentialStore] and
// [ExpiredSessionCleaner]. It works on the "users" table of PostgreSQL or
// SQLite depending on the driver of the underlying [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type UserRepository struct {
	db  *DB
	now func() time.Time
}

// NewUserRepository constructs a SQL [CredentialStore] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) *UserRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating user repository")
	return &UserRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FindByUsernameOrEmail implements [CredentialStore].
//
// Error handling:
//   - no matching row → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (models.User, error) {
	query, args, err := buildFindByUsernameOrEmailQuery(r.db.builder, identifier)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "FindByUsernameOrEmail", query, args)
}

// FindByID implements [CredentialStore].
func (r *UserRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	query, args, err := buildFindByIDQuery(r.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "FindByID", query, args)
}

// Save implements [CredentialStore]. A zero UserID inserts a new row and
// returns it with the database-assigned id; otherwise the row is replaced.
//
// Error handling:
//   - unique violation (username or email) → [ErrUserAlreadyExists].
//   - update of a missing row → [ErrUserNotFound].
func (r *UserRepository) Save(ctx context.Context, user models.User, opts SaveOptions) (models.User, error) {
	log := logger.FromContext(ctx)

	if !opts.SkipValidation {
		if err := validateUser(user); err != nil {
			return models.User{}, err
		}
	}

	now := r.now()
	user.UpdatedAt = now

	if user.UserID == 0 {
		user.CreatedAt = now

		query, args, err := buildInsertUserQuery(r.db.builder, user)
		if err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
			if isUniqueViolation(err) {
				return models.User{}, ErrUserAlreadyExists
			}
			log.Err(err).Str("func", "*UserRepository.Save").Stringer("class", r.db.classify(err)).Msg("error inserting user")
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return user, nil
	}

	query, args, err := buildUpdateUserQuery(r.db.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, "Save", query, args)
	if err != nil {
		return models.User{}, err
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// UpdateField implements [CredentialStore].
func (r *UserRepository) UpdateField(ctx context.Context, userID int64, field Field, value any, also ...Assignment) error {
	query, args, err := buildUpdateFieldQuery(r.db.builder, userID, field, value, r.now(), also...)
	if err != nil {
		return err
	}

	affected, err := r.exec(ctx, "UpdateField", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SwapField implements [CredentialStore] with a single conditional UPDATE;
// the database serializes concurrent updates of the same row, so at most one
// caller observes an affected row.
func (r *UserRepository) SwapField(ctx context.Context, userID int64, field Field, expected, next any, also ...Assignment) error {
	query, args, err := buildSwapFieldQuery(r.db.builder, userID, field, expected, next, r.now(), also...)
	if err != nil {
		return err
	}

	affected, err := r.exec(ctx, "SwapField", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFieldMismatch
	}

	return nil
}

// ClearExpiredSessions implements [ExpiredSessionCleaner].
func (r *UserRepository) ClearExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildClearExpiredSessionsQuery(r.db.builder, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "ClearExpiredSessions", query, args)
}

// Classify exposes the driver's error classification to callers outside the
// package.
func (r *UserRepository) Classify(err error) ErrorClassification {
	return r.db.classify(err)
}

func (r *UserRepository) findOne(ctx context.Context, fn, query string, args []any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*UserRepository."+fn).Stringer("class", r.db.classify(err)).Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *UserRepository) exec(ctx context.Context, fn, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*UserRepository."+fn).Stringer("class", r.db.classify(err)).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

// scanUser reads one row in [userColumns] order.
func scanUser(row *sql.Row) (models.User, error) {
	var (
		u            models.User
		avatar       sql.NullString
		coverImage   sql.NullString
		refreshToken sql.NullString
		expiresAt    sql.NullTime
	)

	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&avatar,
		&coverImage,
		&u.PasswordHash,
		&refreshToken,
		&expiresAt,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	u.Avatar = avatar.String
	u.CoverImage = coverImage.String
	u.RefreshToken = refreshToken.String
	if expiresAt.Valid {
		u.RefreshTokenExpiresAt = expiresAt.Time
	}

	return u, nil
}
