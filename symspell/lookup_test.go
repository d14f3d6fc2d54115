package symspell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLookup_PrefixOverflowRejectMatchesBruteForce cross-checks the
// prefix-overflow cheap-reject predicate against a brute-force distance
// scan over a small synthetic lexicon: every candidate the predicate lets
// through must be within maxEditDistance of input, and no candidate within
// range should have been rejected.
func TestLookup_PrefixOverflowRejectMatchesBruteForce(t *testing.T) {
	lexicon := []string{
		"international", "internationally", "internal", "interval",
		"intercept", "interrupt", "intersect", "interview",
	}
	e := newTestEngine(t, 2, 7, 1)
	for _, w := range lexicon {
		e.CreateDictionaryEntry(w, 10, nil)
	}

	input := "internaional"
	maxEditDistance := 2

	got, err := e.LookupWithMaxDistance(input, All, maxEditDistance, false)
	require.NoError(t, err)

	gotTerms := make(map[string]struct{}, len(got))
	for _, s := range got {
		gotTerms[s.Term] = struct{}{}
	}

	d := NewDamerauOSA()
	for _, w := range lexicon {
		dist := d.Distance(input, w, maxEditDistance)
		_, found := gotTerms[w]
		if dist >= 0 {
			require.True(t, found, "expected %q (distance %d) in results", w, dist)
		} else {
			require.False(t, found, "did not expect %q beyond maxEditDistance", w)
		}
	}
}

func TestLookup_ClosestKeepsOnlySmallestDistanceTier(t *testing.T) {
	e := newTestEngine(t, 2, 5, 1)
	e.CreateDictionaryEntry("cat", 5, nil)
	e.CreateDictionaryEntry("cats", 3, nil)
	e.CreateDictionaryEntry("cast", 1, nil)

	result, err := e.LookupWithMaxDistance("cat", Closest, 2, false)
	require.NoError(t, err)
	for _, s := range result {
		require.Equal(t, result[0].Distance, s.Distance)
	}
}
