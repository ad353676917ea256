package ui

import (
	"fmt"
	"sort"
	"strings"

	"schemasync/internal/models"
)

// RenderSummary formats the end-of-run summary block printed after the
// artifacts are written.
func RenderSummary(diff models.DifferenceSet, artifacts []string) string {
	var b strings.Builder

	b.WriteString(summaryTitleStyle.Render("=== Comparison summary ==="))
	b.WriteString("\n")

	if diff.IsEmpty() {
		b.WriteString(summaryOKStyle.Render("No structural differences found."))
		b.WriteString("\n")
	} else {
		writeSection(&b, "Tables missing in production", diff.MissingInB)
		writeSection(&b, "Tables only in production", diff.ExtraInB)
		writeTableDiffSection(&b, diff.TableDiffs)
		writeSection(&b, "Buckets missing in production", diff.MissingBucketsInB)
		writeSection(&b, "Buckets only in production", diff.ExtraBucketsInB)
		if diff.NoBucketsFound {
			b.WriteString(summaryWarningStyle.Render("No buckets found in either environment; see suggestions in the sync script."))
			b.WriteString("\n")
		}
	}

	if len(artifacts) > 0 {
		b.WriteString(summaryHeaderStyle.Render("Artifacts"))
		b.WriteString("\n")
		for _, path := range artifacts {
			b.WriteString(summaryItemStyle.Render(path))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func writeSection(b *strings.Builder, header string, names []string) {
	if len(names) == 0 {
		return
	}

	b.WriteString(summaryHeaderStyle.Render(header))
	b.WriteString("\n")
	for _, name := range names {
		b.WriteString(summaryItemStyle.Render(name))
		b.WriteString("\n")
	}
}

func writeTableDiffSection(b *strings.Builder, diffs map[string]models.TableDiff) {
	if len(diffs) == 0 {
		return
	}

	names := make([]string, 0, len(diffs))
	for name := range diffs {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString(summaryHeaderStyle.Render("Column drift"))
	b.WriteString("\n")
	for _, name := range names {
		diff := diffs[name]
		line := name
		if len(diff.MissingColumnsInB) > 0 {
			line += fmt.Sprintf("  missing in prod: %s", strings.Join(diff.MissingColumnsInB, ", "))
		}
		if len(diff.ExtraColumnsInB) > 0 {
			line += fmt.Sprintf("  only in prod: %s", strings.Join(diff.ExtraColumnsInB, ", "))
		}
		b.WriteString(summaryItemStyle.Render(line))
		b.WriteString("\n")
	}
}
