package symspell

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, maxEditDistance, prefixLength int, countThreshold int64) *Engine {
	t.Helper()
	e, err := NewEngine(Config{
		InitialCapacity:           16,
		MaxDictionaryEditDistance: maxEditDistance,
		PrefixLength:              prefixLength,
		CountThreshold:            countThreshold,
		CompactLevel:              5,
	})
	require.NoError(t, err)
	return e
}

func Test_WordsWithSharedPrefixShouldRetainCounts(t *testing.T) {
	e := newTestEngine(t, 1, 3, 1)

	e.CreateDictionaryEntry("pipe", 5, nil)
	e.CreateDictionaryEntry("pips", 10, nil)

	{
		result, err := e.LookupWithMaxDistance("pip", All, 1, false)
		require.NoError(t, err)
		require.Len(t, result, 2)
		require.Equal(t, "pips", result[0].Term)
		require.EqualValues(t, 10, result[0].Count)
		require.Equal(t, "pipe", result[1].Term)
		require.EqualValues(t, 5, result[1].Count)
	}

	{
		result, err := e.LookupWithMaxDistance("pipe", All, 1, false)
		require.NoError(t, err)
		require.Len(t, result, 2)
		require.Equal(t, "pipe", result[0].Term)
		require.EqualValues(t, 5, result[0].Count)
		require.Equal(t, 0, result[0].Distance)
		require.Equal(t, "pips", result[1].Term)
		require.EqualValues(t, 10, result[1].Count)
	}

	{
		result, err := e.LookupWithMaxDistance("pips", All, 1, false)
		require.NoError(t, err)
		require.Len(t, result, 2)
		require.Equal(t, "pips", result[0].Term)
		require.EqualValues(t, 10, result[0].Count)
		require.Equal(t, "pipe", result[1].Term)
		require.EqualValues(t, 5, result[1].Count)
	}
}

func Test_VerbosityShouldControlLookupResults(t *testing.T) {
	e := newTestEngine(t, 2, 3, 1)

	e.CreateDictionaryEntry("steam", 1, nil)
	e.CreateDictionaryEntry("steams", 2, nil)
	e.CreateDictionaryEntry("steem", 3, nil)

	top, err := e.LookupWithMaxDistance("steems", Top, 2, false)
	require.NoError(t, err)
	require.Len(t, top, 1)

	closest, err := e.LookupWithMaxDistance("steems", Closest, 2, false)
	require.NoError(t, err)
	require.Len(t, closest, 2)

	all, err := e.LookupWithMaxDistance("steems", All, 2, false)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func Test_LookupShouldReturnMostFrequent(t *testing.T) {
	e := newTestEngine(t, 2, 3, 1)

	e.CreateDictionaryEntry("steama", 4, nil)
	e.CreateDictionaryEntry("steamb", 6, nil)
	e.CreateDictionaryEntry("steamc", 2, nil)

	result, err := e.LookupWithMaxDistance("steam", Top, 2, false)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "steamb", result[0].Term)
	require.EqualValues(t, 6, result[0].Count)
}

func Test_LookupShouldFindExactMatch(t *testing.T) {
	e := newTestEngine(t, 2, 3, 1)

	e.CreateDictionaryEntry("steama", 4, nil)
	e.CreateDictionaryEntry("steamb", 6, nil)
	e.CreateDictionaryEntry("steamc", 2, nil)

	result, err := e.LookupWithMaxDistance("steama", Top, 2, false)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "steama", result[0].Term)
}

func Test_LookupShouldNotReturnNonWordDelete(t *testing.T) {
	e := newTestEngine(t, 2, 7, 1)

	e.CreateDictionaryEntry("pawn", 10, nil)

	result, err := e.LookupWithMaxDistance("paw", Top, 0, false)
	require.NoError(t, err)
	require.Empty(t, result)

	result, err = e.LookupWithMaxDistance("awn", Top, 0, false)
	require.NoError(t, err)
	require.Empty(t, result)
}

func Test_LookupShouldNotReturnLowCountWord(t *testing.T) {
	e := newTestEngine(t, 2, 7, 10)

	e.CreateDictionaryEntry("pawn", 1, nil)

	result, err := e.LookupWithMaxDistance("pawn", Top, 0, false)
	require.NoError(t, err)
	require.Empty(t, result)
}

func Test_LookupShouldNotReturnLowCountWordThatsAlsoDeleteWord(t *testing.T) {
	e := newTestEngine(t, 2, 7, 10)

	e.CreateDictionaryEntry("flame", 20, nil)
	e.CreateDictionaryEntry("flam", 1, nil)

	result, err := e.LookupWithMaxDistance("flam", Top, 0, false)
	require.NoError(t, err)
	require.Empty(t, result)
}

func Test_LookupRejectsMaxDistanceAboveConfigured(t *testing.T) {
	e := newTestEngine(t, 1, 3, 1)
	e.CreateDictionaryEntry("pipe", 5, nil)

	_, err := e.LookupWithMaxDistance("pip", Top, 2, false)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func Test_LookupRejectsUninitializedEngine(t *testing.T) {
	e := newTestEngine(t, 2, 7, 1)

	_, err := e.LookupWithMaxDistance("pawn", Top, 2, false)
	require.ErrorIs(t, err, ErrNotInitialized)
}

func Test_LookupIncludeUnknownReturnsPlaceholder(t *testing.T) {
	e := newTestEngine(t, 2, 7, 1)
	e.CreateDictionaryEntry("pawn", 10, nil)

	result, err := e.LookupWithMaxDistance("zzzzz", Top, 2, true)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "zzzzz", result[0].Term)
	require.Equal(t, 3, result[0].Distance)
	require.EqualValues(t, 0, result[0].Count)
}

func Test_CreateDictionaryEntrySaturatesAtMaxInt64(t *testing.T) {
	e := newTestEngine(t, 2, 7, 1)

	e.CreateDictionaryEntry("steam", math.MaxInt64, nil)
	e.CreateDictionaryEntry("steam", 10, nil)

	require.Equal(t, int64(math.MaxInt64), e.words["steam"])
}

func Test_LoadDictionarySurfacesParseError(t *testing.T) {
	e := newTestEngine(t, 2, 7, 1)

	r := strings.NewReader("steam\t5\nbroken-line-no-tab\nsteams\t3\n")
	err := e.LoadDictionary(r)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 2, parseErr.Line)
}

func Test_LoadDictionaryCommitsStagedDeletes(t *testing.T) {
	e := newTestEngine(t, 1, 3, 1)

	r := strings.NewReader("pipe\t5\npips\t10\n")
	require.NoError(t, e.LoadDictionary(r))

	result, err := e.LookupWithMaxDistance("pip", All, 1, false)
	require.NoError(t, err)
	require.Len(t, result, 2)
}

func Test_LookupCompoundSplitsRunTogetherTerms(t *testing.T) {
	e := newTestEngine(t, 2, 7, 1)
	e.CreateDictionaryEntry("where", 100, nil)
	e.CreateDictionaryEntry("is", 100, nil)
	e.CreateDictionaryEntry("my", 100, nil)
	e.CreateDictionaryEntry("car", 100, nil)

	result, err := e.LookupCompound("whereis mycar", 2)
	require.NoError(t, err)
	require.Equal(t, "where is my car", result.Term)
}

func Test_LookupCompoundCorrectsEachTerm(t *testing.T) {
	e := newTestEngine(t, 2, 7, 1)
	e.CreateDictionaryEntry("members", 100, nil)
	e.CreateDictionaryEntry("without", 100, nil)
	e.CreateDictionaryEntry("a", 100, nil)
	e.CreateDictionaryEntry("valid", 100, nil)
	e.CreateDictionaryEntry("email", 100, nil)
	e.CreateDictionaryEntry("address", 100, nil)

	result, err := e.LookupCompound("memmbers without a valid emall address", 2)
	require.NoError(t, err)
	require.Equal(t, "members without a valid email address", result.Term)
}
