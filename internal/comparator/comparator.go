package comparator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"schemasync/internal/config"
	"schemasync/internal/differ"
	"schemasync/internal/generator"
	"schemasync/internal/models"
	"schemasync/internal/probe"
	"schemasync/internal/report"
	"schemasync/internal/ui"
)

// Comparator runs one full comparison: development first, then production,
// strictly in sequence so the narration reads top to bottom.
type Comparator struct {
	Development probe.Store
	Production  probe.Store
	Config      config.Config
	Observer    probe.Observer
}

func New(dev, prod probe.Store, cfg config.Config, obs probe.Observer) *Comparator {
	if obs == nil {
		obs = probe.NopObserver{}
	}
	return &Comparator{
		Development: dev,
		Production:  prod,
		Config:      cfg,
		Observer:    obs,
	}
}

// Run probes both environments, diffs them, writes the report artifacts and
// prints the summary. Per-probe failures are recorded and never abort the
// run; only artifact-write failures (and a completely unreachable target,
// caught before Run) are fatal.
func (c *Comparator) Run(ctx context.Context) error {
	devReport := probe.Environment(ctx, c.Development, c.Config.Development.Name, c.Config.CandidateTables, c.Observer)
	prodReport := probe.Environment(ctx, c.Production, c.Config.Production.Name, c.Config.CandidateTables, c.Observer)

	diff := differ.Diff(devReport, prodReport)

	comparison := models.ComparisonReport{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		A:           devReport,
		B:           prodReport,
		Differences: diff,
	}

	writer := report.NewWriter(c.Config.OutputDir, time.Now())

	var artifacts []string
	for _, env := range []models.EnvironmentReport{devReport, prodReport} {
		path, err := writer.WriteEnvironment(env)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, path)
	}

	path, err := writer.WriteComparison(comparison)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, path)

	if !diff.IsEmpty() || diff.NoBucketsFound {
		script := generator.Generate(diff, c.Config.BucketCatalog)
		path, err := writer.WriteSyncScript(script)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, path)
	}

	fmt.Println(ui.RenderSummary(diff, artifacts))

	return nil
}
