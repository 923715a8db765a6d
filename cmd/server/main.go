// Package main implements the entry point for the Glossa API server,
// a spaced-repetition vocabulary trainer for Greek learners.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) instead of serving")
	flag.Parse()

	if err := run(*migrateCmd); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run wires the application together and either executes a migration
// command or starts the HTTP server.
func run(migrateCmd string) error {
	app, err := newApplication()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if migrateCmd != "" {
		return runMigrations(app.db, migrateCmd)
	}

	if err := runMigrations(app.db, "up"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", app.config.Server.Port,
		"log_level", app.config.Server.LogLevel,
		"daily_new_limit", app.config.Scheduler.DailyNewLimit)

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
