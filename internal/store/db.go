// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-softjobs/internal/config"
	"github.com/MKhiriev/go-softjobs/internal/logger"
	"github.com/MKhiriev/go-softjobs/migrations"
)

// Supported SQL dialects.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

const sqliteScheme = "sqlite://"

// DB is a connection pool bound to a SQL dialect.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// NewDB opens the database named by cfg. DSNs starting with sqlite:// open a
// SQLite file, everything else is handed to the pgx driver.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := cfg.ConnectionString()

	switch {
	case strings.HasPrefix(dsn, sqliteScheme):
		return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, sqliteScheme), log)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, cfg.RedactedConnectionString())
	}
}

// Dialect returns the SQL dialect of the pool.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the pool's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == DialectSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
