// Package migrations embeds the SQL migration files so they can be applied
// by the goose provider at server start and in integration tests.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Up applies every pending migration in FS and logs each one applied.
// db must use a Postgres driver such as pgx's "pgx" stdlib driver.
func Up(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return fmt.Errorf("migrations.Up: create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("migrations.Up: %w", err)
	}
	if log != nil {
		for _, r := range results {
			log.InfoContext(ctx, "migration applied",
				"version", r.Source.Version,
				"file", r.Source.Path,
				"duration_ms", r.Duration.Milliseconds(),
			)
		}
	}
	return nil
}
