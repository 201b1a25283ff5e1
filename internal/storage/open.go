package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/phumgame/internal/config"
	"github.com/dmitrijs2005/phumgame/internal/filex"
	"github.com/dmitrijs2005/phumgame/internal/storage/migrations"
	"github.com/pressly/goose/v3"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// RunMigrations applies the embedded migrations for dialect ("sqlite3" or
// "postgres") to db.
func RunMigrations(ctx context.Context, db *sql.DB, dialect string) error {
	dir := "sqlite"
	if dialect == "postgres" {
		dir = "postgres"
	}

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open builds the Store selected by cfg.StoreDriver and runs its migrations.
// The returned io.Closer releases the underlying database, if any.
func Open(ctx context.Context, cfg *config.Config) (Store, io.Closer, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return NewMemoryStore(), nopCloser{}, nil

	case config.DriverSQLite:
		path, err := filex.DataFile(cfg.DataDir, cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		db, err := sql.Open("sqlite", path)
		if err != nil {
			return nil, nil, err
		}
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
		if err := RunMigrations(ctx, db, "sqlite3"); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		s := NewSQLiteStore(db)
		return s, s, nil

	case config.DriverPostgres:
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("db ping: %w", err)
		}
		if err := RunMigrations(ctx, db, "postgres"); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		s := NewPostgresStore(db)
		return s, s, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
