package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/models"
)

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table. Queries are built with squirrel in the pool's dialect.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsByEmailQuery(r.db.statementBuilder(), email)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.ExistsByEmail").Msg("error checking email")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// CreateUser inserts user and returns it as stored.
//
// The unique constraint on email is the backstop for concurrent
// registrations: a violation is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.db.statementBuilder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created := user
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Email, &created.Role, &created.LanguagePreference)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("email already exists")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Str("func", "*userRepository.CreateUser").Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.statementBuilder(), email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		user   models.User
		secret sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.LanguagePreference, &secret)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error selecting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	user.SigningSecret = secret.String

	return user, nil
}

func (r *userRepository) FindProfilesByEmail(ctx context.Context, email string) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectProfilesByEmailQuery(r.db.statementBuilder(), email)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindProfilesByEmail").Msg("error selecting profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	profiles := make([]models.User, 0, 1)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.ID, &user.Email, &user.Role, &user.LanguagePreference); err != nil {
			log.Err(err).Str("func", "*userRepository.FindProfilesByEmail").Msg("error scanning profile")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		profiles = append(profiles, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

// SetSigningSecretIfAbsent runs a conditional UPDATE followed by a SELECT in
// one transaction. Concurrent callers racing for the same user all return
// the secret that won the UPDATE.
func (r *userRepository) SetSigningSecretIfAbsent(ctx context.Context, userID int64, secret string) (string, error) {
	log := logger.FromContext(ctx)
	sb := r.db.statementBuilder()

	updateQuery, updateArgs, err := buildSetSigningSecretQuery(sb, userID, secret)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	selectQuery, selectArgs, err := buildSelectSigningSecretQuery(sb, userID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored sql.NullString
	err = r.db.withTx(ctx, func(ctx context.Context, tx queryer) error {
		if _, execErr := tx.ExecContext(ctx, updateQuery, updateArgs...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}

		scanErr := tx.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&stored)
		if errors.Is(scanErr, sql.ErrNoRows) {
			return ErrNoUserWasFound
		}
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.SetSigningSecretIfAbsent").
			Int64("user_id", userID).
			Msg("error provisioning signing secret")
		return "", err
	}

	if !stored.Valid || stored.String == "" {
		return "", fmt.Errorf("%w: signing secret is still empty", ErrExecutingQuery)
	}

	return stored.String, nil
}
