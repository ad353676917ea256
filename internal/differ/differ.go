// Package differ computes the structural delta between two environment
// reports. Diff is a pure function: no queries, no state, and sorted output
// so identical inputs always serialize to identical bytes.
package differ

import (
	"sort"

	"schemasync/internal/models"
)

// Diff compares environment A against environment B. Only tables whose
// probe reported exists=true participate; failed probes never count as
// present on either side.
func Diff(a, b models.EnvironmentReport) models.DifferenceSet {
	aTables := existingTables(a)
	bTables := existingTables(b)

	diff := models.DifferenceSet{
		MissingInB: missingFrom(aTables, bTables),
		ExtraInB:   missingFrom(bTables, aTables),
	}

	for name, aResult := range aTables {
		bResult, ok := bTables[name]
		if !ok {
			continue
		}

		missing := columnDifference(aResult.Columns, bResult.Columns)
		extra := columnDifference(bResult.Columns, aResult.Columns)
		if len(missing) == 0 && len(extra) == 0 {
			continue
		}

		if diff.TableDiffs == nil {
			diff.TableDiffs = make(map[string]models.TableDiff)
		}
		diff.TableDiffs[name] = models.TableDiff{
			MissingColumnsInB: missing,
			ExtraColumnsInB:   extra,
		}
	}

	aBuckets := bucketNames(a)
	bBuckets := bucketNames(b)
	diff.MissingBucketsInB = missingFrom(aBuckets, bBuckets)
	diff.ExtraBucketsInB = missingFrom(bBuckets, aBuckets)
	diff.NoBucketsFound = len(aBuckets) == 0 && len(bBuckets) == 0

	return diff
}

func existingTables(report models.EnvironmentReport) map[string]models.ProbeResult {
	tables := make(map[string]models.ProbeResult)
	for _, result := range report.Tables {
		if result.Exists {
			tables[result.Table] = result
		}
	}
	return tables
}

func bucketNames(report models.EnvironmentReport) map[string]struct{} {
	names := make(map[string]struct{})
	for _, bucket := range report.Buckets {
		names[bucket.Name] = struct{}{}
	}
	return names
}

// missingFrom returns the sorted keys of left that are absent from right.
func missingFrom[L any, R any](left map[string]L, right map[string]R) []string {
	missing := []string{}
	for name := range left {
		if _, ok := right[name]; !ok {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// columnDifference returns the sorted column names present in left but not
// in right. Order of the inputs is irrelevant: comparison is set-based.
func columnDifference(left, right []string) []string {
	rightSet := make(map[string]struct{}, len(right))
	for _, column := range right {
		rightSet[column] = struct{}{}
	}

	var missing []string
	for _, column := range left {
		if _, ok := rightSet[column]; !ok {
			missing = append(missing, column)
		}
	}
	sort.Strings(missing)
	return missing
}
