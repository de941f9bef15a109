package client

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/client/migrations"
	"github.com/dmitrijs2005/passvault/internal/client/repositories/entries"
	"github.com/dmitrijs2005/passvault/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/passvault/internal/client/repositories/users"
	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/dbx"
	"github.com/dmitrijs2005/passvault/internal/filex"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Supported values of the driver setting.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

type Repositories struct {
	DB       *sql.DB
	Dialect  dbx.Dialect
	Users    users.Repository
	Entries  entries.Repository
	Metadata metadata.Repository
}

// Close releases the underlying connection pool.
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// DialectFor maps a driver name to its SQL dialect.
func DialectFor(driver string) (dbx.Dialect, error) {
	switch driver {
	case DriverSQLite:
		return dbx.DialectSQLite, nil
	case DriverPostgres:
		return dbx.DialectPostgres, nil
	}
	return "", fmt.Errorf("%w: %q", common.ErrUnsupportedDriver, driver)
}

func gooseDialect(d dbx.Dialect) string {
	if d == dbx.DialectPostgres {
		return "postgres"
	}
	return "sqlite3"
}

// RunMigrations applies the embedded migrations for dialect. It is
// idempotent.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect(dialect)); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, string(dialect)); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// sqliteDSN enables foreign keys so deleting a user cascades to its entries.
func sqliteDSN(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// InitDatabase opens the store, migrates it and wires the repositories.
func InitDatabase(ctx context.Context, driver, dsn string) (*Repositories, error) {
	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, err
	}

	if dialect == dbx.DialectSQLite {
		if !strings.HasPrefix(dsn, "file:") {
			if _, err := filex.EnsureParentDir(dsn); err != nil {
				return nil, err
			}
		}
		dsn = sqliteDSN(dsn)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		DB:       db,
		Dialect:  dialect,
		Users:    users.NewSQLRepository(db, dialect),
		Entries:  entries.NewSQLRepository(db, dialect),
		Metadata: metadata.NewSQLRepository(db, dialect),
	}, nil
}
