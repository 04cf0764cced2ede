// Command migrate runs the embedded goose migrations against
// DEFINITION_DATABASE_URL. The optional argument is one of up (default),
// down, reset, status or version.
package main

import (
	"os"

	"github.com/ghuser/shareit/migrations/shareit"
	"github.com/ghuser/shareit/pkg/config"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(&config.Config{}).Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg).With("tier", "migrate")

	command := migrator.CmdUp
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	if err := migrator.RunCommand(cfg.DefinitionDatabaseURL, shareit.FS, command); err != nil {
		log.Error("migration failed", "command", command, "error", err)
		os.Exit(1)
	}
	log.Info("migration done", "command", command)
}
