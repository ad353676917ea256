package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DEV_DATABASE_URL", "postgres://dev.example/app")
	t.Setenv("PROD_DATABASE_URL", "postgres://prod.example/app")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Development.Name)
	assert.Equal(t, "postgres://dev.example/app", cfg.Development.URL)
	assert.Equal(t, "production", cfg.Production.Name)
	assert.Equal(t, DefaultCandidateTables, cfg.CandidateTables)
	assert.Equal(t, DefaultBucketCatalog, cfg.BucketCatalog)
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestLoadMissingDevURL(t *testing.T) {
	t.Setenv("DEV_DATABASE_URL", "")
	t.Setenv("PROD_DATABASE_URL", "postgres://prod.example/app")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DEV_DATABASE_URL")
}

func TestLoadMissingProdURL(t *testing.T) {
	t.Setenv("DEV_DATABASE_URL", "postgres://dev.example/app")
	t.Setenv("PROD_DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PROD_DATABASE_URL")
}

func TestApplyFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemasync.yaml")
	content := `
candidate_tables:
  - trips
  - expenses
bucket_catalog:
  - name: receipts
    public: false
    file_size_limit: 1048576
output_dir: reports
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg := Config{
		CandidateTables: DefaultCandidateTables,
		BucketCatalog:   DefaultBucketCatalog,
		OutputDir:       ".",
	}
	require.NoError(t, applyFile(&cfg, path))

	assert.Equal(t, []string{"trips", "expenses"}, cfg.CandidateTables)
	require.Len(t, cfg.BucketCatalog, 1)
	assert.Equal(t, "receipts", cfg.BucketCatalog[0].Name)
	assert.EqualValues(t, 1048576, cfg.BucketCatalog[0].FileSizeLimit)
	assert.Equal(t, "reports", cfg.OutputDir)
}

func TestApplyFilePartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemasync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: out\n"), 0644))

	cfg := Config{
		CandidateTables: DefaultCandidateTables,
		BucketCatalog:   DefaultBucketCatalog,
		OutputDir:       ".",
	}
	require.NoError(t, applyFile(&cfg, path))

	assert.Equal(t, DefaultCandidateTables, cfg.CandidateTables, "unset keys keep their defaults")
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestApplyFileMissingIsFine(t *testing.T) {
	cfg := Config{OutputDir: "."}
	require.NoError(t, applyFile(&cfg, filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, ".", cfg.OutputDir)
}

func TestApplyFileBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schemasync.yaml")
	require.NoError(t, os.WriteFile(path, []byte("candidate_tables: {not: a list\n"), 0644))

	cfg := Config{}
	assert.Error(t, applyFile(&cfg, path))
}

func TestDefaultBucketCatalogContents(t *testing.T) {
	names := make([]string, 0, len(DefaultBucketCatalog))
	for _, b := range DefaultBucketCatalog {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"avatars", "trip-photos", "destination-images", "documents"}, names)
}
