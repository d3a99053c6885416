package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terra-clan/internship-engine/internal/models"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	out, err := execute(t, "recommend",
		"--education", "Undergraduate",
		"--skills", "computer,programming",
		"--interests", "technology",
		"--location", "mumbai",
		"--top", "3",
	)
	require.NoError(t, err)

	var results []models.MatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.Equal(t, "1", results[0].Internship.ID)
	assert.Equal(t, "11", results[1].Internship.ID)
}

func TestRecommendCommand_RequiresEducation(t *testing.T) {
	_, err := execute(t, "recommend", "--skills", "computer")
	assert.ErrorContains(t, err, "education")
}

func TestSearchCommand(t *testing.T) {
	out, err := execute(t, "search", "--sector", "technology", "--remote")
	require.NoError(t, err)

	var results []models.Internship
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "4", results[0].ID)
	assert.Equal(t, "11", results[1].ID)
}

func TestCatalogValidateCommand(t *testing.T) {
	out, err := execute(t, "catalog", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "catalog OK: 20 internships, 8 sectors")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`internships:
  - id: "a"
    title: Analyst
    company: Acme
    sector: space
    location: remote
    is_remote: false
    required_education: any
`), 0o644))

	out, err = execute(t, "catalog", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "problem(s)")
	assert.Contains(t, out, `unknown sector value "space"`)
	assert.Contains(t, out, "location is remote but is_remote is false")
}

func TestMigrateCommand_RequiresDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")

	_, err := execute(t, "migrate")
	assert.EqualError(t, err, "DATABASE_DSN is required")
}
