// Package store provides the memory-item storage interface and SQLite implementation.
package store

import (
	"context"
	"errors"

	"github.com/loci-app/loci/internal/model"
	"github.com/loci-app/loci/internal/srs"
)

// ErrNotFound is returned when no item exists at the requested locus or id.
// Check with errors.Is.
var ErrNotFound = errors.New("store: memory not found")

// PlaceParams holds parameters for placing a memory at a locus.
type PlaceParams struct {
	LocusID   string
	LocusName string
	Content   string
	Mnemonic  string
}

// Store defines the memory storage interface.
type Store interface {
	// Place stores a memory at a locus. An occupied locus is overwritten in
	// place: content fields refresh while id, created_at, srs_bucket and
	// review_count survive. Placement always reseeds the review schedule
	// from the bucket-zero medium interval.
	Place(ctx context.Context, p PlaceParams) (*model.MemoryItem, error)

	// Review applies a rating to the item at the locus and persists the new
	// scheduling state. Content fields are never touched. Returns
	// ErrNotFound if the locus holds no item.
	Review(ctx context.Context, locusID string, rating srs.Rating) (*model.MemoryItem, error)

	GetAll(ctx context.Context) ([]model.MemoryItem, error)
	GetByLocusID(ctx context.Context, locusID string) (*model.MemoryItem, error)
	GetByID(ctx context.Context, id string) (*model.MemoryItem, error)

	// DueForReview returns the items whose scheduled review time has arrived.
	DueForReview(ctx context.Context) ([]model.MemoryItem, error)
	DueCount(ctx context.Context) (int, error)
	TotalCount(ctx context.Context) (int, error)
	HasMemory(ctx context.Context, locusID string) (bool, error)

	// DeleteByLocusID removes the item at the locus if present.
	// Reports whether a removal occurred.
	DeleteByLocusID(ctx context.Context, locusID string) (bool, error)

	// DeleteAll wipes the whole collection (factory reset).
	DeleteAll(ctx context.Context) error

	// Close closes the store.
	Close() error
}
