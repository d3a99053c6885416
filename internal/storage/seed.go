package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/terra-clan/internship-engine/internal/models"
)

const upsertInternshipSQL = `
	INSERT INTO internships (
		position, id, title, company, description, sector, location,
		is_remote, required_education, required_skills, duration, stipend
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		position = EXCLUDED.position,
		title = EXCLUDED.title,
		company = EXCLUDED.company,
		description = EXCLUDED.description,
		sector = EXCLUDED.sector,
		location = EXCLUDED.location,
		is_remote = EXCLUDED.is_remote,
		required_education = EXCLUDED.required_education,
		required_skills = EXCLUDED.required_skills,
		duration = EXCLUDED.duration,
		stipend = EXCLUDED.stipend,
		updated_at = NOW()
`

// SeedInternships replaces the internships table contents with records, preserving their order.
// It runs in a single transaction so the served catalog never sees a partial import.
func SeedInternships(ctx context.Context, pool *pgxpool.Pool, records []models.Internship) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM internships`); err != nil {
		return fmt.Errorf("failed to clear internships: %w", err)
	}

	batch := &pgx.Batch{}
	for i, in := range records {
		batch.Queue(upsertInternshipSQL,
			i, in.ID, in.Title, in.Company, in.Description,
			string(in.Sector), string(in.Location), in.IsRemote,
			string(in.RequiredEducation), skillStrings(in.RequiredSkills),
			in.Duration, in.Stipend,
		)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert internships: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}

	slog.Info("internships seeded", "count", len(records))
	return nil
}

// SeedFromDSN connects with dsn and seeds the internships table
func SeedFromDSN(ctx context.Context, dsn string, records []models.Internship) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	return SeedInternships(ctx, pool, records)
}

func skillStrings(skills []models.Skill) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = string(s)
	}
	return out
}
