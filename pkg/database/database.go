// Package database owns the PostgreSQL connection pool shared by all bounded
// contexts. Repositories build SQL with Builder (squirrel, $n placeholders)
// and execute it through the embedded *sqlx.DB or a transaction from WithTx.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/ghuser/shareit/pkg/logger"
)

const (
	driverName     = "pgx"
	connectTimeout = 5 * time.Second
)

// Database wraps the sqlx pool together with a Postgres statement builder.
type Database struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType
	log     logger.Logger
}

// NewPool opens and pings a pgx-backed sqlx pool for url.
func NewPool(ctx context.Context, url string, log logger.Logger) (*Database, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, driverName, url)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	return New(db, log), nil
}

// New wraps an already-open sqlx handle.
func New(db *sqlx.DB, log logger.Logger) *Database {
	return &Database{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		log:     log,
	}
}

// WithTx runs fn inside a transaction. The transaction commits when fn returns
// nil and rolls back otherwise, including on panic.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				d.log.WarnContext(ctx, "database: rollback failed", "error", rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("database: commit: %w", err)
	}
	return nil
}

// Ping checks connectivity for the health endpoint.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.PingContext(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}
