package storage

import (
	"context"
	"io/fs"
	"os"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/internship-engine/internal/catalog"
	"github.com/terra-clan/internship-engine/internal/config"
)

func TestEmbeddedMigrations(t *testing.T) {
	names, err := MigrationNames(Migrations())
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "001_internships.sql", names[0])

	content, err := fs.ReadFile(Migrations(), names[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE TABLE IF NOT EXISTS internships")
}

func TestMigrationNames_SortsAndSkipsNonSQL(t *testing.T) {
	fsys := fstest.MapFS{
		"002_b.sql":     {Data: []byte("SELECT 2")},
		"001_a.sql":     {Data: []byte("SELECT 1")},
		"README.md":     {Data: []byte("notes")},
		"sub/003_c.sql": {Data: []byte("SELECT 3")},
	}

	names, err := MigrationNames(fsys)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_a.sql", "002_b.sql"}, names)
}

func TestSkillStrings(t *testing.T) {
	assert.Equal(t, []string{}, skillStrings(nil))
}

// TestPostgresRoundTrip needs a disposable database; set TEST_DATABASE_DSN to run it.
func TestPostgresRoundTrip(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	require.NoError(t, MigrateFromDSN(ctx, dsn))

	records, err := catalog.FileSource{}.LoadInternships(ctx)
	require.NoError(t, err)
	require.NoError(t, SeedFromDSN(ctx, dsn, records))

	src, err := OpenPostgresSource(ctx, config.DatabaseConfig{DSN: dsn})
	require.NoError(t, err)
	defer src.Close()

	require.NoError(t, src.HealthCheck(ctx))

	fromDB, err := catalog.Load(ctx, src)
	require.NoError(t, err)
	fromFile, err := catalog.New(records)
	require.NoError(t, err)

	assert.Equal(t, fromFile.All(), fromDB.All())
	assert.Equal(t, fromFile.Version(), fromDB.Version())
}
