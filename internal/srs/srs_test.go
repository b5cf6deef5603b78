package srs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestScheduleHard(t *testing.T) {
	for b := MinBucket; b <= MaxBucket; b++ {
		res, err := Schedule(Hard, b, testNow)
		require.NoError(t, err)

		assert.Equal(t, max(MinBucket, b-1), res.NewBucket, "bucket %d", b)
		assert.Equal(t, 1, res.IntervalDays, "bucket %d", b)
		assert.Equal(t, testNow.Add(24*time.Hour), res.NextReview, "bucket %d", b)
	}
}

func TestScheduleMedium(t *testing.T) {
	wantDays := []int{3, 6, 12, 24, 48, 96}

	for b := MinBucket; b <= MaxBucket; b++ {
		res, err := Schedule(Medium, b, testNow)
		require.NoError(t, err)

		assert.Equal(t, b, res.NewBucket, "medium never advances the bucket")
		assert.Equal(t, wantDays[b], res.IntervalDays, "bucket %d", b)
	}
}

func TestScheduleEasy(t *testing.T) {
	// 7 × 2.5^b, exponent taken from the pre-increment bucket.
	wantDays := []int{7, 18, 44, 109, 273, 684}

	for b := MinBucket; b <= MaxBucket; b++ {
		res, err := Schedule(Easy, b, testNow)
		require.NoError(t, err)

		assert.Equal(t, min(MaxBucket, b+1), res.NewBucket, "bucket %d", b)
		assert.Equal(t, wantDays[b], res.IntervalDays, "bucket %d", b)
	}
}

func TestScheduleEasyFractionalPrecision(t *testing.T) {
	// 7 × 2.5 = 17.5 days: the half day reaches the timestamp unrounded
	// while IntervalDays rounds up for display.
	res, err := Schedule(Easy, 1, testNow)
	require.NoError(t, err)

	assert.Equal(t, testNow.Add(420*time.Hour), res.NextReview)
	assert.Equal(t, 18, res.IntervalDays)
}

func TestScheduleBucketBounds(t *testing.T) {
	for _, rating := range []Rating{Hard, Medium, Easy} {
		for b := -3; b <= 8; b++ {
			res, err := Schedule(rating, b, testNow)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, res.NewBucket, MinBucket, "%s bucket %d", rating, b)
			assert.LessOrEqual(t, res.NewBucket, MaxBucket, "%s bucket %d", rating, b)
		}
	}
}

func TestScheduleClampsCorruptBucket(t *testing.T) {
	// A bucket above the cap behaves as if it were the cap.
	high, err := Schedule(Medium, 99, testNow)
	require.NoError(t, err)
	capped, err := Schedule(Medium, MaxBucket, testNow)
	require.NoError(t, err)
	assert.Equal(t, capped, high)

	low, err := Schedule(Easy, -7, testNow)
	require.NoError(t, err)
	floor, err := Schedule(Easy, MinBucket, testNow)
	require.NoError(t, err)
	assert.Equal(t, floor, low)
}

func TestScheduleInvalidRating(t *testing.T) {
	for _, r := range []Rating{Rating(0), Rating(4), Rating(-1)} {
		res, err := Schedule(r, 0, testNow)
		require.ErrorIs(t, err, ErrInvalidRating)
		assert.Zero(t, res)
	}
}

func TestIsDue(t *testing.T) {
	past := testNow.Add(-time.Minute)
	future := testNow.Add(time.Minute)
	exact := testNow

	assert.False(t, IsDue(nil, testNow), "never scheduled is never due")
	assert.True(t, IsDue(&past, testNow))
	assert.True(t, IsDue(&exact, testNow), "due at the exact scheduled instant")
	assert.False(t, IsDue(&future, testNow))
}

func TestTimeUntil(t *testing.T) {
	past := testNow.Add(-time.Hour)
	in2d5h := testNow.Add(53*time.Hour + 30*time.Minute)
	in5h := testNow.Add(5*time.Hour + 30*time.Minute)

	assert.Equal(t, "Never", TimeUntil(nil, testNow))
	assert.Equal(t, "Now", TimeUntil(&past, testNow))
	assert.Equal(t, "Now", TimeUntil(&testNow, testNow))
	assert.Equal(t, "2d 5h", TimeUntil(&in2d5h, testNow))
	assert.Equal(t, "5h", TimeUntil(&in5h, testNow))
}
