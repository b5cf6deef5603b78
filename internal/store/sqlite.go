package store

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/loci-app/loci/internal/model"
	"github.com/loci-app/loci/internal/srs"
)

// timeFormat keeps millisecond-exact next_review timestamps across the
// round trip. Plain RFC3339 values parse under it as well.
const timeFormat = time.RFC3339Nano

const itemColumns = `id, locus_id, locus_name, content, mnemonic,
	created_at, updated_at, srs_bucket, next_review, review_count,
	last_reviewed_at, last_rating`

// Compile-time interface check.
var _ Store = (*SQLiteStore)(nil)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db      *sql.DB
	entropy *rand.Rand

	// mu serializes mutating read-modify-write cycles. The reference
	// caller is a single CLI invocation, but the contract is that no two
	// mutations may interleave.
	mu sync.Mutex

	nowFn func() time.Time
}

// NewSQLiteStore opens or creates a SQLite database at the given path.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &SQLiteStore{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
		nowFn:   time.Now,
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) newID() string {
	return ulid.MustNew(ulid.Timestamp(s.nowFn()), s.entropy).String()
}

func (s *SQLiteStore) migrate() error {
	// UNIQUE locus_id enforces one item per locus at the schema level.
	schema := `
	CREATE TABLE IF NOT EXISTS memories (
		id               TEXT PRIMARY KEY,
		locus_id         TEXT NOT NULL UNIQUE,
		locus_name       TEXT NOT NULL,
		content          TEXT NOT NULL,
		mnemonic         TEXT,
		created_at       TEXT NOT NULL,
		updated_at       TEXT NOT NULL,
		srs_bucket       INTEGER NOT NULL DEFAULT 0,
		next_review      TEXT NOT NULL,
		review_count     INTEGER NOT NULL DEFAULT 0,
		last_reviewed_at TEXT,
		last_rating      TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_memories_next_review ON memories(next_review);
	CREATE INDEX IF NOT EXISTS idx_memories_created ON memories(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) Place(ctx context.Context, p PlaceParams) (*model.MemoryItem, error) {
	if strings.TrimSpace(p.LocusID) == "" {
		return nil, fmt.Errorf("place: locus id is required")
	}
	if strings.TrimSpace(p.Content) == "" {
		return nil, fmt.Errorf("place: content is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn().UTC()

	// Placement always reseeds the first-review schedule from bucket zero,
	// even when the locus already held a memory. The strength bucket itself
	// survives a re-placement.
	seed, err := srs.Schedule(srs.Medium, srs.MinBucket, now)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	existing, err := getByLocusTx(ctx, tx, p.LocusID)
	if err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}

	var item *model.MemoryItem
	if existing != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE memories
			 SET locus_name = ?, content = ?, mnemonic = ?, updated_at = ?, next_review = ?
			 WHERE locus_id = ?`,
			p.LocusName, p.Content, nullIfEmpty(p.Mnemonic),
			now.Format(timeFormat), seed.NextReview.Format(timeFormat), p.LocusID)
		if err != nil {
			return nil, fmt.Errorf("update memory: %w", err)
		}

		item = existing
		item.LocusName = p.LocusName
		item.Content = p.Content
		item.Mnemonic = p.Mnemonic
		item.UpdatedAt = now
		item.NextReview = seed.NextReview
	} else {
		item = &model.MemoryItem{
			ID:         s.newID(),
			LocusID:    p.LocusID,
			LocusName:  p.LocusName,
			Content:    p.Content,
			Mnemonic:   p.Mnemonic,
			CreatedAt:  now,
			UpdatedAt:  now,
			SRSBucket:  srs.MinBucket,
			NextReview: seed.NextReview,
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO memories (id, locus_id, locus_name, content, mnemonic,
			                       created_at, updated_at, srs_bucket, next_review, review_count)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0)`,
			item.ID, item.LocusID, item.LocusName, item.Content, nullIfEmpty(item.Mnemonic),
			now.Format(timeFormat), now.Format(timeFormat),
			item.SRSBucket, item.NextReview.Format(timeFormat))
		if err != nil {
			return nil, fmt.Errorf("insert memory: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *SQLiteStore) Review(ctx context.Context, locusID string, rating srs.Rating) (*model.MemoryItem, error) {
	if !rating.IsValid() {
		return nil, fmt.Errorf("review %q: %w: %d", locusID, srs.ErrInvalidRating, int(rating))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	item, err := getByLocusTx(ctx, tx, locusID)
	if err != nil {
		return nil, fmt.Errorf("review: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("review %q: %w", locusID, ErrNotFound)
	}

	res, err := srs.Schedule(rating, item.SRSBucket, now)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE memories
		 SET srs_bucket = ?, next_review = ?, review_count = review_count + 1,
		     last_reviewed_at = ?, last_rating = ?
		 WHERE locus_id = ?`,
		res.NewBucket, res.NextReview.Format(timeFormat),
		now.Format(timeFormat), rating.String(), locusID)
	if err != nil {
		return nil, fmt.Errorf("update review state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	item.SRSBucket = res.NewBucket
	item.NextReview = res.NextReview
	item.ReviewCount++
	item.LastReviewedAt = &now
	item.LastRating = &rating

	return item, nil
}

func (s *SQLiteStore) GetAll(ctx context.Context) ([]model.MemoryItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM memories ORDER BY created_at, locus_id`)
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

func (s *SQLiteStore) GetByLocusID(ctx context.Context, locusID string) (*model.MemoryItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM memories WHERE locus_id = ?`, locusID)
	m, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("locus %q: %w", locusID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *SQLiteStore) GetByID(ctx context.Context, id string) (*model.MemoryItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM memories WHERE id = ?`, id)
	m, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("id %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// DueForReview filters the full collection through the scheduler's due
// check rather than an SQL predicate, keeping one authority on dueness.
func (s *SQLiteStore) DueForReview(ctx context.Context) ([]model.MemoryItem, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.nowFn().UTC()
	var due []model.MemoryItem
	for _, m := range all {
		if srs.IsDue(&m.NextReview, now) {
			due = append(due, m)
		}
	}
	return due, nil
}

func (s *SQLiteStore) DueCount(ctx context.Context) (int, error) {
	due, err := s.DueForReview(ctx)
	if err != nil {
		return 0, err
	}
	return len(due), nil
}

func (s *SQLiteStore) TotalCount(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM memories`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) HasMemory(ctx context.Context, locusID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memories WHERE locus_id = ?`, locusID).Scan(&n)
	return n > 0, err
}

func (s *SQLiteStore) DeleteByLocusID(ctx context.Context, locusID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM memories WHERE locus_id = ?`, locusID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM memories`)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// getByLocusTx returns (nil, nil) when the locus holds no item.
func getByLocusTx(ctx context.Context, tx *sql.Tx, locusID string) (*model.MemoryItem, error) {
	row := tx.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM memories WHERE locus_id = ?`, locusID)
	m, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row scanner) (model.MemoryItem, error) {
	var m model.MemoryItem
	var mnemonic, lastReviewedAt, lastRating sql.NullString
	var createdAt, updatedAt, nextReview string

	err := row.Scan(
		&m.ID, &m.LocusID, &m.LocusName, &m.Content, &mnemonic,
		&createdAt, &updatedAt, &m.SRSBucket, &nextReview, &m.ReviewCount,
		&lastReviewedAt, &lastRating,
	)
	if err != nil {
		return m, err
	}

	m.CreatedAt, _ = time.Parse(timeFormat, createdAt)
	m.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	m.NextReview, _ = time.Parse(timeFormat, nextReview)
	if mnemonic.Valid {
		m.Mnemonic = mnemonic.String
	}
	if lastReviewedAt.Valid {
		t, _ := time.Parse(timeFormat, lastReviewedAt.String)
		m.LastReviewedAt = &t
	}
	if lastRating.Valid {
		if r, err := srs.ParseRating(lastRating.String); err == nil {
			m.LastRating = &r
		}
	}

	return m, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
