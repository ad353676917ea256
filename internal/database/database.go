package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"schemasync/internal/config"
	"schemasync/internal/models"
)

type Database struct {
	Config config.EnvironmentConfig
	DB     *sql.DB
}

func Connect(cfg config.EnvironmentConfig) (*Database, error) {
	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging %s: %w", cfg.Name, err)
	}

	return &Database{
		Config: cfg,
		DB:     db,
	}, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// CountRows runs the existence probe for one table. The table name comes
// from the candidate catalog, never from user input, but it is quoted anyway.
func (d *Database) CountRows(ctx context.Context, table string) (int64, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM public.%s`, pq.QuoteIdentifier(table))

	var count int64
	if err := d.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// SampleColumns fetches at most one row and reports the column names seen in
// the result-set metadata. An empty table still yields its columns.
func (d *Database) SampleColumns(ctx context.Context, table string) ([]string, error) {
	query := fmt.Sprintf(`SELECT * FROM public.%s LIMIT 1`, pq.QuoteIdentifier(table))

	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	return columns, rows.Err()
}

// ListBuckets reads the platform's bucket registry. The storage schema may
// be absent or locked down on either environment.
func (d *Database) ListBuckets(ctx context.Context) ([]models.BucketInfo, error) {
	query := `
	SELECT
		name,
		public,
		COALESCE(file_size_limit, 0),
		COALESCE(allowed_mime_types, '{}')
	FROM
		storage.buckets
	ORDER BY
		name
	`

	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []models.BucketInfo
	for rows.Next() {
		var b models.BucketInfo
		if err := rows.Scan(&b.Name, &b.Public, &b.FileSizeLimit, pq.Array(&b.AllowedMimeTypes)); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}

	return buckets, rows.Err()
}

// ListPolicies reads the row-level-security policies visible to the
// connection role.
func (d *Database) ListPolicies(ctx context.Context) ([]models.PolicyRecord, error) {
	query := `
	SELECT
		schemaname,
		tablename,
		policyname,
		COALESCE(cmd, ''),
		COALESCE(array_to_string(roles, ','), ''),
		COALESCE(qual, '')
	FROM
		pg_policies
	ORDER BY
		schemaname, tablename, policyname
	`

	rows, err := d.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []models.PolicyRecord
	for rows.Next() {
		var p models.PolicyRecord
		if err := rows.Scan(&p.Schema, &p.Table, &p.Name, &p.Command, &p.Roles, &p.Expression); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}
