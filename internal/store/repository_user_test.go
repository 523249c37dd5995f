package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, dialect: DialectPostgres, logger: l},
		logger: l,
	}
	return repo, mock
}

func strPtr(s string) *string { return &s }

func TestExistsByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM users WHERE email = $1 LIMIT 1")).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.True(t, exists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT 1 FROM users").
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		exists, err := repo.ExistsByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT 1 FROM users").WillReturnError(errors.New("boom"))

		_, err := repo.ExistsByEmail(ctx, "ana@example.com")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := models.User{
		Email:         "ana@example.com",
		PasswordHash:  "hash",
		Role:          strPtr("admin"),
		SigningSecret: "secret",
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email,password_hash,role,language_preference,signing_secret) VALUES ($1,$2,$3,$4,$5) RETURNING id, email, role, language_preference")).
		WithArgs("ana@example.com", "hash", "admin", nil, "secret").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "language_preference"}).
			AddRow(int64(7), "ana@example.com", "admin", nil))

	created, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "ana@example.com", created.Email)
	require.NotNil(t, created.Role)
	assert.Equal(t, "admin", *created.Role)
	assert.Nil(t, created.LanguagePreference)
	assert.Equal(t, "secret", created.SigningSecret)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestCreateUser_OtherError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.NotNullViolation})

	_, err := repo.CreateUser(context.Background(), models.User{Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestFindUserByEmail(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "email", "password_hash", "role", "language_preference", "signing_secret"}

	t.Run("found with secret", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, password_hash, role, language_preference, signing_secret FROM users WHERE email = $1")).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "ana@example.com", "hash", nil, "es", "secret"))

		user, err := repo.FindUserByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Nil(t, user.Role)
		require.NotNil(t, user.LanguagePreference)
		assert.Equal(t, "es", *user.LanguagePreference)
		assert.Equal(t, "secret", user.SigningSecret)
	})

	t.Run("found without secret", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(int64(1), "ana@example.com", "hash", nil, nil, nil))

		user, err := repo.FindUserByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.False(t, user.HasSigningSecret())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows(columns))

		_, err := repo.FindUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(sql.ErrConnDone)

		_, err := repo.FindUserByEmail(ctx, "ana@example.com")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestFindProfilesByEmail(t *testing.T) {
	ctx := context.Background()
	columns := []string{"id", "email", "role", "language_preference"}

	t.Run("rows", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, role, language_preference FROM users WHERE email = $1 ORDER BY id")).
			WithArgs("ana@example.com").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(1), "ana@example.com", "admin", "en"))

		profiles, err := repo.FindProfilesByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "admin", *profiles[0].Role)
		assert.Empty(t, profiles[0].PasswordHash)
	})

	t.Run("empty", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(sqlmock.NewRows(columns))

		profiles, err := repo.FindProfilesByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnRows(sqlmock.NewRows(columns).AddRow("not-a-number", "ana@example.com", nil, nil))

		_, err := repo.FindProfilesByEmail(ctx, "ana@example.com")
		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("boom"))

		_, err := repo.FindProfilesByEmail(ctx, "ana@example.com")
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestSetSigningSecretIfAbsent(t *testing.T) {
	ctx := context.Background()
	updateSQL := regexp.QuoteMeta("UPDATE users SET signing_secret = $1 WHERE (id = $2 AND (signing_secret IS NULL OR signing_secret = $3))")
	selectSQL := regexp.QuoteMeta("SELECT signing_secret FROM users WHERE id = $1")

	t.Run("stores new secret", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WithArgs("fresh", int64(3), "").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectSQL).WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"signing_secret"}).AddRow("fresh"))
		mock.ExpectCommit()

		secret, err := repo.SetSigningSecretIfAbsent(ctx, 3, "fresh")
		require.NoError(t, err)
		assert.Equal(t, "fresh", secret)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("keeps existing secret", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(selectSQL).
			WillReturnRows(sqlmock.NewRows([]string{"signing_secret"}).AddRow("winner"))
		mock.ExpectCommit()

		secret, err := repo.SetSigningSecretIfAbsent(ctx, 3, "loser")
		require.NoError(t, err)
		assert.Equal(t, "winner", secret)
	})

	t.Run("unknown user rolls back", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(selectSQL).WillReturnRows(sqlmock.NewRows([]string{"signing_secret"}))
		mock.ExpectRollback()

		_, err := repo.SetSigningSecretIfAbsent(ctx, 99, "fresh")
		assert.ErrorIs(t, err, ErrNoUserWasFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update error rolls back", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnError(errors.New("boom"))
		mock.ExpectRollback()

		_, err := repo.SetSigningSecretIfAbsent(ctx, 3, "fresh")
		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("no conn"))

		_, err := repo.SetSigningSecretIfAbsent(ctx, 3, "fresh")
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit error", func(t *testing.T) {
		repo, mock := newTestUserRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(updateSQL).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectSQL).
			WillReturnRows(sqlmock.NewRows([]string{"signing_secret"}).AddRow("fresh"))
		mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		_, err := repo.SetSigningSecretIfAbsent(ctx, 3, "fresh")
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}
