// Package probe turns read-only queries against one environment into
// structured results. Probing is best-effort and never fails the run: a
// query error becomes data on the result, and the next probe proceeds.
// Narration is pushed through an Observer so the probing logic stays pure.
package probe

import (
	"context"
	"time"

	"schemasync/internal/models"
)

// Store is the read-only query surface a probe run needs. *database.Database
// satisfies it; tests substitute a stub.
type Store interface {
	CountRows(ctx context.Context, table string) (int64, error)
	SampleColumns(ctx context.Context, table string) ([]string, error)
	ListBuckets(ctx context.Context) ([]models.BucketInfo, error)
	ListPolicies(ctx context.Context) ([]models.PolicyRecord, error)
}

// Observer receives each probe outcome as it happens.
type Observer interface {
	TableProbed(env string, result models.ProbeResult)
	StorageProbed(env string, report models.EnvironmentReport)
}

// NopObserver ignores everything.
type NopObserver struct{}

func (NopObserver) TableProbed(string, models.ProbeResult) {}

func (NopObserver) StorageProbed(string, models.EnvironmentReport) {}

// Table probes a single candidate table. Every failure is captured on the
// result; the caller always gets exactly one ProbeResult back.
func Table(ctx context.Context, store Store, table string) models.ProbeResult {
	result := models.ProbeResult{Table: table}

	count, err := store.CountRows(ctx, table)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Exists = true
	result.RowCount = count

	columns, err := store.SampleColumns(ctx, table)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Columns = columns

	return result
}

// Environment probes every candidate table and the storage surface of one
// environment, sequentially, and assembles the per-environment report.
func Environment(ctx context.Context, store Store, env string, tables []string, obs Observer) models.EnvironmentReport {
	report := models.EnvironmentReport{
		Environment: env,
		ProbedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	for _, table := range tables {
		result := Table(ctx, store, table)
		report.Tables = append(report.Tables, result)
		obs.TableProbed(env, result)
	}

	buckets, err := store.ListBuckets(ctx)
	if err != nil {
		report.BucketError = err.Error()
	} else {
		report.Buckets = buckets
	}

	policies, err := store.ListPolicies(ctx)
	if err != nil {
		report.PolicyError = err.Error()
	} else {
		report.Policies = policies
	}

	obs.StorageProbed(env, report)

	return report
}
