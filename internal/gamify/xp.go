// Package gamify awards experience points for memory-palace activity.
// It is a pure consumer of store events: the store never depends on it.
package gamify

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"
)

// XP awarded per event.
const (
	PlaceXP         = 20 // placing a fact at a locus
	ReviewXP        = 5  // completing a review
	ChallengeItemXP = 5  // per item in a challenge drill
)

// historyLimit bounds the persisted award history.
const historyLimit = 100

// Award is a single XP grant.
type Award struct {
	Points int       `json:"points"`
	Reason string    `json:"reason"`
	At     time.Time `json:"at"`
}

// Ledger accumulates XP in a small JSON file.
type Ledger struct {
	path string

	XP      int     `json:"xp"`
	History []Award `json:"history,omitempty"`
}

// Load reads the ledger at path. A missing file yields an empty ledger.
func Load(path string) (*Ledger, error) {
	l := &Ledger{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read xp ledger: %w", err)
	}
	if err := json.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parse xp ledger: %w", err)
	}
	return l, nil
}

// Add grants points for the given reason and persists the ledger.
func (l *Ledger) Add(points int, reason string) error {
	l.XP += points
	l.History = append(l.History, Award{Points: points, Reason: reason, At: time.Now().UTC()})
	if len(l.History) > historyLimit {
		l.History = l.History[len(l.History)-historyLimit:]
	}
	return l.save()
}

// Level returns the current level: 100 XP per level, starting at 1.
func (l *Ledger) Level() int {
	return 1 + l.XP/100
}

// ChallengeXP computes the XP earned for a drill of itemCount items with
// score correct answers, scaling the full award by the hit rate.
func ChallengeXP(itemCount, score int) int {
	if itemCount <= 0 {
		return 0
	}
	full := float64(itemCount * ChallengeItemXP)
	return int(math.Round(full * float64(score) / float64(itemCount)))
}

func (l *Ledger) save() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write xp ledger: %w", err)
	}
	return nil
}
