// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-softjobs/models"
)

const usersTable = "users"

var (
	userColumns    = []string{"id", "email", "password_hash", "role", "language_preference", "signing_secret"}
	profileColumns = []string{"id", "email", "role", "language_preference"}
)

func buildExistsByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select("1").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return sb.Insert(usersTable).
		Columns("email", "password_hash", "role", "language_preference", "signing_secret").
		Values(user.Email, user.PasswordHash, user.Role, user.LanguagePreference, nullableString(user.SigningSecret)).
		Suffix("RETURNING id, email, role, language_preference").
		ToSql()
}

func buildSelectUserByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildSelectProfilesByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return sb.Select(profileColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		OrderBy("id").
		ToSql()
}

// buildSetSigningSecretQuery writes secret only when the row has none yet.
func buildSetSigningSecretQuery(sb sq.StatementBuilderType, userID int64, secret string) (string, []any, error) {
	return sb.Update(usersTable).
		Set("signing_secret", secret).
		Where(sq.And{
			sq.Eq{"id": userID},
			sq.Or{
				sq.Eq{"signing_secret": nil},
				sq.Eq{"signing_secret": ""},
			},
		}).
		ToSql()
}

func buildSelectSigningSecretQuery(sb sq.StatementBuilderType, userID int64) (string, []any, error) {
	return sb.Select("signing_secret").
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
