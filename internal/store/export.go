package store

import (
	"context"

	"github.com/loci-app/loci/internal/model"
)

// ExportAll returns every item ordered by locus, for backup dumps.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.MemoryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM memories ORDER BY locus_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.MemoryItem
	for rows.Next() {
		m, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}
