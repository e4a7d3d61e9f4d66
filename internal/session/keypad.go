package session

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

// Shuffle permutes xs in place with Fisher–Yates.
func Shuffle[T any](rng *rand.Rand, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Permutation returns a uniformly random ordering of [0, n).
func Permutation(rng *rand.Rand, n int) []int {
	p := lo.Range(n)
	Shuffle(rng, p)
	return p
}

// DeriveKeypad builds the keypad letters for current. Up to
// MaxDecoyEntries entries are sampled, entries sharing the current keyword
// are dropped from the sample, and their letters fill the room left by the
// keyword. The result is shuffled and never exceeds KeypadSize.
func DeriveKeypad(rng *rand.Rand, entries []Entry, current Entry) []rune {
	pool := append([]Entry(nil), entries...)
	Shuffle(rng, pool)
	sample := pool[:min(MaxDecoyEntries, len(pool))]

	others := lo.Filter(sample, func(e Entry, _ int) bool {
		return e.Keyword != current.Keyword
	})
	decoys := lo.FlatMap(others, func(e Entry, _ int) []rune {
		return []rune(e.Keyword)
	})

	keyword := []rune(current.Keyword)
	room := max(KeypadSize-len(keyword), 0)
	if len(decoys) > room {
		decoys = decoys[:room]
	}

	keypad := make([]rune, 0, len(decoys)+len(keyword))
	keypad = append(keypad, decoys...)
	keypad = append(keypad, keyword...)
	Shuffle(rng, keypad)

	// Keywords longer than the keypad lose letters here and can only be skipped.
	if len(keypad) > KeypadSize {
		keypad = keypad[:KeypadSize]
	}
	return keypad
}
