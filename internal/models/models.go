package models

// ProbeResult records what a single table probe observed in one environment.
// RowCount is only meaningful when Exists is true; Columns is only populated
// when the sample query succeeded. A failed probe carries the failure in
// Error and leaves Exists false.
type ProbeResult struct {
	Table    string   `json:"table"`
	Exists   bool     `json:"exists"`
	RowCount int64    `json:"row_count,omitempty"`
	Columns  []string `json:"columns,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// BucketInfo describes one storage bucket as listed from storage.buckets.
type BucketInfo struct {
	Name             string   `json:"name"`
	Public           bool     `json:"public"`
	FileSizeLimit    int64    `json:"file_size_limit,omitempty"`
	AllowedMimeTypes []string `json:"allowed_mime_types,omitempty"`
}

// PolicyRecord is one row-level-security policy as listed from pg_policies.
type PolicyRecord struct {
	Schema     string `json:"schema"`
	Table      string `json:"table"`
	Name       string `json:"name"`
	Command    string `json:"command"`
	Roles      string `json:"roles"`
	Expression string `json:"expression,omitempty"`
}

// EnvironmentReport aggregates everything probed from one environment.
type EnvironmentReport struct {
	Environment string         `json:"environment"`
	ProbedAt    string         `json:"probed_at"`
	Tables      []ProbeResult  `json:"tables"`
	Buckets     []BucketInfo   `json:"buckets"`
	Policies    []PolicyRecord `json:"policies"`
	// BucketError / PolicyError hold the annotation when the corresponding
	// listing degraded to an empty sequence.
	BucketError string `json:"bucket_error,omitempty"`
	PolicyError string `json:"policy_error,omitempty"`
}

// TableDiff holds the column-level differences for a table present in both
// environments. Tables with no column differences never get an entry.
type TableDiff struct {
	MissingColumnsInB []string `json:"missing_columns_in_b,omitempty"`
	ExtraColumnsInB   []string `json:"extra_columns_in_b,omitempty"`
}

// DifferenceSet is the structural delta between two environment reports,
// derived purely from its inputs. All lists are sorted so repeated runs over
// identical inputs serialize identically.
type DifferenceSet struct {
	MissingInB        []string             `json:"missing_in_b"`
	ExtraInB          []string             `json:"extra_in_b"`
	TableDiffs        map[string]TableDiff `json:"table_diffs,omitempty"`
	MissingBucketsInB []string             `json:"missing_buckets_in_b"`
	ExtraBucketsInB   []string             `json:"extra_buckets_in_b"`
	// NoBucketsFound is set when neither environment listed any buckets,
	// which is what triggers the generator's suggestion catalog.
	NoBucketsFound bool `json:"no_buckets_found,omitempty"`
}

// IsEmpty reports whether the two environments showed no structural drift.
func (d DifferenceSet) IsEmpty() bool {
	return len(d.MissingInB) == 0 &&
		len(d.ExtraInB) == 0 &&
		len(d.TableDiffs) == 0 &&
		len(d.MissingBucketsInB) == 0 &&
		len(d.ExtraBucketsInB) == 0
}

// ComparisonReport is the top-level artifact: both environment reports plus
// the derived difference set.
type ComparisonReport struct {
	RunID       string            `json:"run_id"`
	GeneratedAt string            `json:"generated_at"`
	A           EnvironmentReport `json:"a"`
	B           EnvironmentReport `json:"b"`
	Differences DifferenceSet     `json:"differences"`
}
