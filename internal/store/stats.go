package store

import (
	"context"
	"os"

	"github.com/loci-app/loci/internal/srs"
)

// Stats holds database statistics.
type Stats struct {
	DBPath       string `json:"db_path"`
	DBSizeBytes  int64  `json:"db_size_bytes"`
	TotalItems   int    `json:"total_items"`
	DueItems     int    `json:"due_items"`
	TotalReviews int    `json:"total_reviews"`

	// Buckets[b] is the number of items at strength level b.
	Buckets [srs.MaxBucket + 1]int `json:"buckets"`
}

// Stats returns database statistics.
func (s *SQLiteStore) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memories`).Scan(&st.TotalItems)
	s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(review_count), 0) FROM memories`).Scan(&st.TotalReviews)

	due, err := s.DueCount(ctx)
	if err != nil {
		return st, err
	}
	st.DueItems = due

	rows, err := s.db.QueryContext(ctx,
		`SELECT srs_bucket, COUNT(*) FROM memories GROUP BY srs_bucket`)
	if err != nil {
		return st, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket, count int
		rows.Scan(&bucket, &count)
		if bucket >= srs.MinBucket && bucket <= srs.MaxBucket {
			st.Buckets[bucket] = count
		}
	}

	return st, rows.Err()
}
