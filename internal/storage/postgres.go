package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/config"
	"github.com/terra-clan/internship-engine/internal/models"
)

var _ catalog.Source = (*PostgresSource)(nil)

const selectInternshipsSQL = `
	SELECT id, title, company, description, sector, location, is_remote,
		required_education, required_skills, duration, stipend
	FROM internships
	ORDER BY position
`

// PostgresSource reads the internship catalog from PostgreSQL. It is only queried at startup.
type PostgresSource struct {
	db *sql.DB
}

// OpenPostgresSource connects to the database described by cfg
func OpenPostgresSource(ctx context.Context, cfg config.DatabaseConfig) (*PostgresSource, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return NewPostgresSource(db), nil
}

// NewPostgresSource wraps an open database handle
func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// LoadInternships implements catalog.Source
func (s *PostgresSource) LoadInternships(ctx context.Context) ([]models.Internship, error) {
	rows, err := s.db.QueryContext(ctx, selectInternshipsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query internships: %w", err)
	}
	defer rows.Close()

	var records []models.Internship
	for rows.Next() {
		var (
			in     models.Internship
			skills []string
		)
		err := rows.Scan(
			&in.ID, &in.Title, &in.Company, &in.Description,
			&in.Sector, &in.Location, &in.IsRemote,
			&in.RequiredEducation, pq.Array(&skills),
			&in.Duration, &in.Stipend,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan internship: %w", err)
		}

		in.RequiredSkills = make([]models.Skill, len(skills))
		for i, sk := range skills {
			in.RequiredSkills[i] = models.Skill(sk)
		}
		records = append(records, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate internships: %w", err)
	}
	return records, nil
}

// HealthCheck verifies database connectivity
func (s *PostgresSource) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database handle
func (s *PostgresSource) Close() error {
	return s.db.Close()
}
