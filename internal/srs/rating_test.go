package srs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRating(t *testing.T) {
	for name, want := range map[string]Rating{"hard": Hard, "medium": Medium, "easy": Easy} {
		got, err := ParseRating(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}
}

func TestParseRatingRejectsUnknown(t *testing.T) {
	// No default-to-easy: typos must fail loudly.
	for _, s := range []string{"", "eas", "EASY", "ok", "again"} {
		_, err := ParseRating(s)
		assert.ErrorIs(t, err, ErrInvalidRating, "%q", s)
	}
}

func TestRatingJSON(t *testing.T) {
	b, err := json.Marshal(Medium)
	require.NoError(t, err)
	assert.Equal(t, `"medium"`, string(b))

	var r Rating
	require.NoError(t, json.Unmarshal([]byte(`"hard"`), &r))
	assert.Equal(t, Hard, r)

	assert.Error(t, json.Unmarshal([]byte(`"harsh"`), &r))

	_, err = json.Marshal(Rating(7))
	assert.ErrorIs(t, err, ErrInvalidRating)
}
