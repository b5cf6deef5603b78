package gamify

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	l, err := Load(filepath.Join(t.TempDir(), "xp.json"))
	require.NoError(t, err)
	assert.Zero(t, l.XP)
	assert.Equal(t, 1, l.Level())
}

func TestAddPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xp.json")

	l, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, l.Add(PlaceXP, "Created memory"))
	require.NoError(t, l.Add(ReviewXP, "Memory reviewed"))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, reloaded.XP)
	require.Len(t, reloaded.History, 2)
	assert.Equal(t, "Memory reviewed", reloaded.History[1].Reason)
}

func TestLevelCurve(t *testing.T) {
	l := &Ledger{}
	assert.Equal(t, 1, l.Level())
	l.XP = 99
	assert.Equal(t, 1, l.Level())
	l.XP = 100
	assert.Equal(t, 2, l.Level())
	l.XP = 450
	assert.Equal(t, 5, l.Level())
}

func TestChallengeXP(t *testing.T) {
	assert.Equal(t, 50, ChallengeXP(10, 10), "perfect score earns the full award")
	assert.Equal(t, 25, ChallengeXP(10, 5))
	assert.Equal(t, 0, ChallengeXP(10, 0))
	assert.Equal(t, 10, ChallengeXP(3, 2), "partial awards round to nearest")
	assert.Equal(t, 0, ChallengeXP(0, 0))
}
