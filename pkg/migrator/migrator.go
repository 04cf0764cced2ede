// Package migrator applies the embedded goose migrations.
package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Commands accepted by Run.
const (
	CmdUp      = "up"
	CmdDown    = "down"
	CmdReset   = "reset"
	CmdStatus  = "status"
	CmdVersion = "version"
)

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// RunCommand opens dbURL with pgx and runs command against it.
func RunCommand(dbURL string, files fs.FS, command string) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("migrator: open database: %w", err)
	}
	defer db.Close() //nolint:errcheck
	return Run(db, files, command)
}

// Up applies pending migrations on an open handle.
func Up(db *sql.DB, files fs.FS) error {
	return Run(db, files, CmdUp)
}

// Run executes a goose command on db. down rolls back one version and reset
// rolls back all of them.
func Run(db *sql.DB, files fs.FS, command string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(files)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrator: set dialect: %w", err)
	}

	var err error
	switch command {
	case CmdUp:
		err = goose.Up(db, ".")
	case CmdDown:
		err = goose.Down(db, ".")
	case CmdReset:
		err = goose.Reset(db, ".")
	case CmdStatus:
		err = goose.Status(db, ".")
	case CmdVersion:
		err = goose.Version(db, ".")
	default:
		return fmt.Errorf("migrator: unknown command %q", command)
	}
	if err != nil {
		return fmt.Errorf("migrator: %s: %w", command, err)
	}
	return nil
}
