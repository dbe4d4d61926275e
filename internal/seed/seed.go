package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// CreateDefaultData inserts a starter teacher when the table is empty,
// so a fresh development database has something to list.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, lgr zerolog.Logger) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM teacher`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count teachers: %w", err)
	}

	if count > 0 {
		return nil
	}

	_, err := db.Exec(ctx, `
		INSERT INTO teacher (name, picture_url, profile)
		VALUES ($1, $2, $3)`,
		"Sample Teacher",
		"https://example.com/sample.jpg",
		"A starter teacher created on first run",
	)
	if err != nil {
		return fmt.Errorf("failed to seed teacher: %w", err)
	}

	lgr.Info().Msg("Seeded starter teacher")
	return nil
}
