package srs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Rating is the user's self-assessment of recall difficulty immediately
// after reviewing a memory.
type Rating int

const (
	Hard   Rating = iota + 1 // Recall failed or took serious effort.
	Medium                   // Recalled, but not comfortably.
	Easy                     // Recalled without hesitation.
)

var (
	ratingNames  = [...]string{Hard: "hard", Medium: "medium", Easy: "easy"}
	ratingByName = map[string]Rating{
		"hard":   Hard,
		"medium": Medium,
		"easy":   Easy,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Rating(0)
	_ json.Marshaler           = Rating(0)
	_ json.Unmarshaler         = (*Rating)(nil)
	_ encoding.TextMarshaler   = Rating(0)
	_ encoding.TextUnmarshaler = (*Rating)(nil)
)

// String returns the wire name of the rating ("hard", "medium", "easy").
// For invalid values it returns "Rating(n)".
func (r Rating) String() string {
	if r.IsValid() {
		return ratingNames[r]
	}
	return fmt.Sprintf("Rating(%d)", int(r))
}

// IsValid reports whether r is a valid rating (Hard through Easy).
func (r Rating) IsValid() bool {
	return r >= Hard && r <= Easy
}

// ParseRating converts a wire name into a Rating.
// Unrecognized names return ErrInvalidRating; there is no default.
func ParseRating(s string) (Rating, error) {
	r, ok := ratingByName[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRating, s)
	}
	return r, nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Rating) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRating, int(r))
	}
	return []byte(ratingNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rating) UnmarshalText(text []byte) error {
	v, err := ParseRating(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON implements json.Marshaler. Rating serializes as a JSON string.
func (r Rating) MarshalJSON() ([]byte, error) {
	text, err := r.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRating, data)
	}
	return r.UnmarshalText([]byte(s))
}
