package challenge

import (
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC)

func TestItemCount(t *testing.T) {
	assert.Equal(t, 5, ItemCount(Easy))
	assert.Equal(t, 10, ItemCount(Medium))
	assert.Equal(t, 20, ItemCount(Hard))
	assert.Equal(t, 5, ItemCount(Difficulty("bogus")), "unknown difficulty falls back to easy length")
}

func TestGenerateWords(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := Generate(Words, Medium, rng, testNow)

	assert.Len(t, c.Items, 10)
	assert.Equal(t, 50, c.XP)
	assert.Equal(t, Words, c.Kind)
	assert.Contains(t, c.Title, "MEDIUM")

	inBank := make(map[string]bool, len(wordBank))
	for _, w := range wordBank {
		inBank[w] = true
	}
	for _, item := range c.Items {
		assert.True(t, inBank[item], "item %q not from the word bank", item)
	}
}

func TestGenerateNumbers(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := Generate(Numbers, Hard, rng, testNow)

	assert.Len(t, c.Items, 20)
	for _, item := range c.Items {
		n, err := strconv.Atoi(item)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 100)
	}
}

func TestGenerateNames(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := Generate(Names, Easy, rng, testNow)

	inBank := make(map[string]bool, len(nameBank))
	for _, n := range nameBank {
		inBank[n] = true
	}
	assert.Len(t, c.Items, 5)
	for _, item := range c.Items {
		assert.True(t, inBank[item], "item %q not from the name bank", item)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(Words, Easy, rand.New(rand.NewSource(1)), testNow)
	b := Generate(Words, Easy, rand.New(rand.NewSource(1)), testNow)
	assert.Equal(t, a, b)
}

func TestGenerateUnknownKindFallsBackToWords(t *testing.T) {
	c := Generate(Kind("riddles"), Easy, rand.New(rand.NewSource(3)), testNow)
	assert.Equal(t, Words, c.Kind)
	assert.Len(t, c.Items, 5)
}
