// Package model defines the core memory-palace data types.
package model

import (
	"time"

	"github.com/loci-app/loci/internal/srs"
)

// MemoryItem is a single fact placed at a locus for later recall.
// At most one item exists per locus; re-placing overwrites in place.
type MemoryItem struct {
	ID          string    `json:"id"`
	LocusID     string    `json:"locus_id"`
	LocusName   string    `json:"locus_name"`
	Content     string    `json:"content"`
	Mnemonic    string    `json:"mnemonic,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	SRSBucket   int       `json:"srs_bucket"`
	NextReview  time.Time `json:"next_review"`
	ReviewCount int       `json:"review_count"`

	// Set only by a review, absent before the first one.
	LastReviewedAt *time.Time  `json:"last_reviewed_at,omitempty"`
	LastRating     *srs.Rating `json:"last_rating,omitempty"`
}
