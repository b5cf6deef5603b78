// Package challenge generates procedural memory drills: short sequences
// of words, numbers, or names to memorize and recall.
package challenge

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Kind selects the item pool for a drill.
type Kind string

const (
	Words   Kind = "words"
	Numbers Kind = "numbers"
	Names   Kind = "names"
)

// Difficulty controls the number of items in a drill.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var wordBank = []string{
	"Apple", "Book", "Cat", "Dog", "Elephant", "Frog", "Guitar", "House", "Ice", "Jacket",
	"Kite", "Lamp", "Moon", "Nest", "Orange", "Piano", "Queen", "Rain", "Sun", "Tree",
	"Umbrella", "Violin", "Water", "Xylophone", "Yacht", "Zebra", "Anchor", "Balloon", "Camera",
	"Desk", "Eagle", "Feather", "Globe", "Hammer", "Island", "Jelly", "Kangaroo", "Lemon",
	"Mountain", "Notebook", "Ocean", "Pencil", "Quilt", "Robot", "Star", "Tiger", "Unicorn",
	"Volcano", "Whale", "X-ray", "Yo-yo", "Zipper",
}

var nameBank = []string{
	"Alice", "Bob", "Charlie", "David", "Eve", "Frank", "Grace", "Henry", "Ivy", "Jack",
	"Kate", "Liam", "Mia", "Noah", "Olivia", "Paul", "Quinn", "Ryan", "Sarah", "Tom",
	"Uma", "Victor", "Wendy", "Xander", "Yara", "Zack", "Arthur", "Bella", "Caleb", "Daisy",
}

// Challenge is a generated drill.
type Challenge struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Kind       Kind       `json:"kind"`
	Difficulty Difficulty `json:"difficulty"`
	Items      []string   `json:"items"`
	XP         int        `json:"xp"`
}

// ItemCount returns the drill length for a difficulty. Unknown values
// fall back to the easy length.
func ItemCount(d Difficulty) int {
	switch d {
	case Medium:
		return 10
	case Hard:
		return 20
	default:
		return 5
	}
}

// Generate builds a drill of the given kind and difficulty. Items are
// drawn from rng, so a seeded source yields a reproducible drill. Unknown
// kinds fall back to words.
func Generate(kind Kind, difficulty Difficulty, rng *rand.Rand, now time.Time) Challenge {
	count := ItemCount(difficulty)

	items := make([]string, count)
	for i := range items {
		switch kind {
		case Numbers:
			items[i] = strconv.Itoa(rng.Intn(100))
		case Names:
			items[i] = nameBank[rng.Intn(len(nameBank))]
		default:
			kind = Words
			items[i] = wordBank[rng.Intn(len(wordBank))]
		}
	}

	return Challenge{
		ID:         fmt.Sprintf("daily-%d", now.UnixMilli()),
		Title:      fmt.Sprintf("Daily Challenge: %s %s", strings.ToUpper(string(difficulty)), kind),
		Kind:       kind,
		Difficulty: difficulty,
		Items:      items,
		XP:         count * 5,
	}
}
