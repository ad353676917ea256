package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory on every run.
const DefaultConfigFile = "schemasync.yaml"

// DefaultCandidateTables is the hand-maintained list of application tables
// worth probing. The yaml config can replace it for one-off runs.
var DefaultCandidateTables = []string{
	"profiles",
	"trips",
	"destinations",
	"trip_destinations",
	"itinerary_items",
	"trip_participants",
	"expenses",
	"reviews",
	"favorites",
	"friendships",
	"notifications",
}

// FallbackBucket is one suggested bucket definition emitted when neither
// environment reports any storage buckets.
type FallbackBucket struct {
	Name          string `yaml:"name"`
	Public        bool   `yaml:"public"`
	FileSizeLimit int64  `yaml:"file_size_limit"`
}

// DefaultBucketCatalog holds the commonly-needed buckets for the app.
// Suggestions only: the generator renders these as commented definitions,
// never as findings.
var DefaultBucketCatalog = []FallbackBucket{
	{Name: "avatars", Public: true, FileSizeLimit: 5 << 20},
	{Name: "trip-photos", Public: true, FileSizeLimit: 10 << 20},
	{Name: "destination-images", Public: true, FileSizeLimit: 10 << 20},
	{Name: "documents", Public: false, FileSizeLimit: 20 << 20},
}

// EnvironmentConfig is the connection bootstrap for one compared target.
type EnvironmentConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config is everything a run needs. Credentials always come from the
// environment; the yaml file may only override catalogs and output location.
type Config struct {
	Development     EnvironmentConfig `yaml:"-"`
	Production      EnvironmentConfig `yaml:"-"`
	CandidateTables []string          `yaml:"candidate_tables"`
	BucketCatalog   []FallbackBucket  `yaml:"bucket_catalog"`
	OutputDir       string            `yaml:"output_dir"`
}

// Load reads .env (if present), the connection URLs from the environment and
// the optional yaml overrides. Missing connection URLs are a fatal
// bootstrap error: the tool has nothing to compare without both targets.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Development:     EnvironmentConfig{Name: "development", URL: os.Getenv("DEV_DATABASE_URL")},
		Production:      EnvironmentConfig{Name: "production", URL: os.Getenv("PROD_DATABASE_URL")},
		CandidateTables: DefaultCandidateTables,
		BucketCatalog:   DefaultBucketCatalog,
		OutputDir:       ".",
	}

	if err := applyFile(&cfg, DefaultConfigFile); err != nil {
		return Config{}, err
	}

	if cfg.Development.URL == "" {
		return Config{}, fmt.Errorf("DEV_DATABASE_URL is not set")
	}
	if cfg.Production.URL == "" {
		return Config{}, fmt.Errorf("PROD_DATABASE_URL is not set")
	}

	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(overrides.CandidateTables) > 0 {
		cfg.CandidateTables = overrides.CandidateTables
	}
	if len(overrides.BucketCatalog) > 0 {
		cfg.BucketCatalog = overrides.BucketCatalog
	}
	if overrides.OutputDir != "" {
		cfg.OutputDir = overrides.OutputDir
	}

	return nil
}
