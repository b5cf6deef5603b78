// Package srs implements the spaced-repetition scheduling law for
// memory-palace reviews: a simplified SM-2 variant keyed to a six-level
// strength bucket.
//
// The package is pure. It holds no state, reads no clock, and touches no
// storage; callers supply now once per call so a computation is consistent
// even if it straddles a clock tick.
package srs

import (
	"fmt"
	"math"
	"time"
)

// Bucket bounds. A bucket is the integer strength level of a memory:
// 0 is newly placed, 5 is fully established.
const (
	MinBucket = 0
	MaxBucket = 5
)

// Base intervals in days and per-review growth multipliers.
const (
	hardIntervalDays = 1.0
	mediumBaseDays   = 3.0
	easyBaseDays     = 7.0

	mediumMultiplier = 2.0
	easyMultiplier   = 2.5
)

// Result is the outcome of scheduling a review.
type Result struct {
	NextReview   time.Time `json:"next_review"`
	NewBucket    int       `json:"new_bucket"`
	IntervalDays int       `json:"interval_days"` // rounded for display
}

// Schedule computes the next review time and bucket transition for a
// review rated at the given bucket. Out-of-range buckets (possible with a
// corrupted stored record) are clamped into [MinBucket, MaxBucket] before
// the law is applied. Invalid ratings return ErrInvalidRating.
//
// The law, per rating:
//   - hard: bucket decays by one (floor 0) and the interval is a fixed
//     single day, resetting the cadence after a failed recall.
//   - medium: bucket is unchanged; interval is 3 × 2.0^bucket days.
//   - easy: bucket advances by one (cap 5); interval is 7 × 2.5^bucket
//     days, with the exponent taken from the bucket the item had going
//     into the review.
//
// Fractional days flow into NextReview unrounded; only IntervalDays is
// rounded, for display.
func Schedule(rating Rating, bucket int, now time.Time) (Result, error) {
	bucket = clampBucket(bucket)

	var newBucket int
	var days float64

	switch rating {
	case Hard:
		newBucket = max(MinBucket, bucket-1)
		days = hardIntervalDays
	case Medium:
		newBucket = bucket
		days = mediumBaseDays * math.Pow(mediumMultiplier, float64(bucket))
	case Easy:
		newBucket = min(MaxBucket, bucket+1)
		days = easyBaseDays * math.Pow(easyMultiplier, float64(bucket))
	default:
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}

	return Result{
		NextReview:   now.Add(daysToDuration(days)),
		NewBucket:    newBucket,
		IntervalDays: int(math.Round(days)),
	}, nil
}

// IsDue reports whether a memory scheduled for nextReview is due at now.
// A nil nextReview means the item was never scheduled and is never due.
func IsDue(nextReview *time.Time, now time.Time) bool {
	if nextReview == nil {
		return false
	}
	return !nextReview.After(now)
}

// TimeUntil renders the time remaining until nextReview as a short human
// string: "Never" for an unscheduled item, "Now" when due, otherwise
// "Nd Mh" or "Mh".
func TimeUntil(nextReview *time.Time, now time.Time) string {
	if nextReview == nil {
		return "Never"
	}

	diff := nextReview.Sub(now)
	if diff <= 0 {
		return "Now"
	}

	days := int(diff / (24 * time.Hour))
	hours := int(diff % (24 * time.Hour) / time.Hour)
	if days > 0 {
		return fmt.Sprintf("%dd %dh", days, hours)
	}
	return fmt.Sprintf("%dh", hours)
}

func daysToDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}

func clampBucket(b int) int {
	if b < MinBucket {
		return MinBucket
	}
	if b > MaxBucket {
		return MaxBucket
	}
	return b
}
