// Package generator renders a difference set as a human-reviewable SQL sync
// script. Nothing in the output is executable against production without a
// person uncommenting it first: column types are unknown to this tool (only
// names are sampled), so every statement that could be wrong or destructive
// is emitted as a comment.
package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lib/pq"

	"schemasync/internal/config"
	"schemasync/internal/models"
)

// Generate renders the sync script for bringing environment B (production)
// up to environment A (development). The fallback catalog is only used when
// neither environment reported any buckets.
func Generate(diff models.DifferenceSet, catalog []config.FallbackBucket) string {
	var b strings.Builder

	b.WriteString("-- schemasync: development -> production\n")
	b.WriteString("-- Review every statement before running. Column types are unknown to\n")
	b.WriteString("-- this tool (name-only comparison), so nothing below is safe to apply\n")
	b.WriteString("-- blindly. Destructive actions are never emitted as statements.\n\n")

	writeMissingTables(&b, diff.MissingInB)
	writeTableDiffs(&b, diff.TableDiffs)
	writeExtraTables(&b, diff.ExtraInB)
	writeBuckets(&b, diff, catalog)

	return b.String()
}

func writeMissingTables(b *strings.Builder, missing []string) {
	if len(missing) == 0 {
		return
	}

	b.WriteString("-- Tables missing in production\n")
	for _, table := range missing {
		fmt.Fprintf(b, "-- TABLE %s exists in development but not in production.\n", table)
		fmt.Fprintf(b, "-- Full DDL cannot be derived from sampled column names; export the\n")
		fmt.Fprintf(b, "-- definition from development and apply it manually.\n")
	}
	b.WriteString("\n")
}

func writeTableDiffs(b *strings.Builder, diffs map[string]models.TableDiff) {
	if len(diffs) == 0 {
		return
	}

	names := make([]string, 0, len(diffs))
	for name := range diffs {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("-- Column differences in shared tables\n")
	for _, name := range names {
		diff := diffs[name]
		for _, column := range diff.MissingColumnsInB {
			fmt.Fprintf(b, "-- manual review needed: column type unknown\n")
			fmt.Fprintf(b, "-- ALTER TABLE public.%s ADD COLUMN %s <type>;\n",
				pq.QuoteIdentifier(name), pq.QuoteIdentifier(column))
		}
		for _, column := range diff.ExtraColumnsInB {
			fmt.Fprintf(b, "-- WARNING: column %s.%s exists only in production; dropping it\n", name, column)
			fmt.Fprintf(b, "-- would lose data and must be decided by a human.\n")
		}
	}
	b.WriteString("\n")
}

func writeExtraTables(b *strings.Builder, extra []string) {
	if len(extra) == 0 {
		return
	}

	b.WriteString("-- Tables present only in production\n")
	for _, table := range extra {
		fmt.Fprintf(b, "-- WARNING: table %s exists only in production. No drop is suggested;\n", table)
		fmt.Fprintf(b, "-- removing it requires human confirmation.\n")
	}
	b.WriteString("\n")
}

func writeBuckets(b *strings.Builder, diff models.DifferenceSet, catalog []config.FallbackBucket) {
	if diff.NoBucketsFound {
		b.WriteString("-- No storage buckets found in either environment. The definitions\n")
		b.WriteString("-- below are suggestions from the application's common catalog, not\n")
		b.WriteString("-- findings. Uncomment the ones you actually need.\n")
		for _, bucket := range catalog {
			fmt.Fprintf(b, "-- INSERT INTO storage.buckets (id, name, public, file_size_limit)\n")
			fmt.Fprintf(b, "--   VALUES ('%s', '%s', %t, %d);\n",
				bucket.Name, bucket.Name, bucket.Public, bucket.FileSizeLimit)
		}
		b.WriteString("\n")
		return
	}

	for _, bucket := range diff.MissingBucketsInB {
		fmt.Fprintf(b, "-- Bucket %q exists in development but not in production; create it\n", bucket)
		fmt.Fprintf(b, "-- with matching visibility and limits.\n")
	}
	for _, bucket := range diff.ExtraBucketsInB {
		fmt.Fprintf(b, "-- WARNING: bucket %q exists only in production; no removal suggested.\n", bucket)
	}
	if len(diff.MissingBucketsInB)+len(diff.ExtraBucketsInB) > 0 {
		b.WriteString("\n")
	}
}
