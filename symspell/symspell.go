// Package symspell implements the core of the SymSpell spelling-correction
// and word-segmentation algorithm: a delete-variant index over a frequency
// lexicon, a bounded breadth-first lookup over that index, and a phrase-level
// compound lookup that combines single-word lookups with a bigram model.
package symspell

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Verbosity controls how many suggestions Lookup returns and how it orders
// them.
type Verbosity int

const (
	// Top returns at most one suggestion: the smallest-edit-distance
	// candidate, ties broken by highest count.
	Top Verbosity = iota
	// Closest returns every candidate tied at the smallest edit distance
	// found.
	Closest
	// All returns every candidate within the requested edit distance,
	// ordered by distance then by count. Slower: no early termination.
	All
)

const (
	defaultMaxEditDistance = 2
	defaultPrefixLength    = 7
	defaultCountThreshold  = 1
	defaultCompactLevel    = 5
)

// n is the fixed corpus-size constant the Naive-Bayes frequency estimates in
// LookupCompound are normalized against. Its exact value is load-bearing for
// compatibility with lexicons built around the published SymSpell corpus and
// must never be changed.
const n = 1024908267229.0

// Engine builds a DeleteIndex from a Lexicon at construction time and serves
// Lookup and LookupCompound against it. Once constructed it is read-only:
// concurrent readers need no synchronization, but CreateDictionaryEntry and
// the Load* methods are not safe to call concurrently with lookups or with
// each other.
type Engine struct {
	config Config

	maxDictionaryWordLength int

	deletes             map[uint32][]string
	words               map[string]int64
	belowThresholdWords map[string]int64
	preloaded           map[string]struct{}

	bigrams        map[string]int64
	bigramCountMin int64

	hasher       Hasher
	distanceFunc DistanceFunc
	logger       zerolog.Logger
}

// NewEngine validates config and builds an empty Engine ready to receive
// dictionary entries via CreateDictionaryEntry or LoadDictionary.
func NewEngine(config Config, opts ...Option) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		config:              config,
		deletes:             make(map[uint32][]string),
		words:               make(map[string]int64, config.InitialCapacity),
		belowThresholdWords: make(map[string]int64),
		bigrams:             make(map[string]int64),
		bigramCountMin:      math.MaxInt64,
		hasher:              XXHasher{},
		distanceFunc:        NewDamerauOSA(),
		logger:              zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// CreateDictionaryEntry creates or updates a word's count in the lexicon,
// migrating it out of belowThreshold and generating its delete variants the
// first time it reaches config.CountThreshold. When staging is non-nil, the
// new delete variants are appended to it instead of committed immediately;
// call CommitStaged once bulk loading finishes. Returns true if a new word
// was added to the permanent dictionary.
func (e *Engine) CreateDictionaryEntry(key string, count int64, staging *SuggestionStage) bool {
	if count <= 0 {
		if e.config.CountThreshold > 0 {
			return false
		}
		count = 0
	}
	var countPrevious int64

	if e.config.CountThreshold > 1 {
		if c, found := e.belowThresholdWords[key]; found {
			countPrevious = c
			if math.MaxInt64-countPrevious > count {
				count += countPrevious
			} else {
				count = math.MaxInt64
			}
			if count >= e.config.CountThreshold {
				delete(e.belowThresholdWords, key)
			} else {
				e.belowThresholdWords[key] = count
				return false
			}
		} else if c, found := e.words[key]; found {
			countPrevious = c
			if math.MaxInt64-countPrevious > count {
				count += countPrevious
			} else {
				count = math.MaxInt64
			}
			e.words[key] = count
			return false
		} else if count < e.config.CountThreshold {
			e.belowThresholdWords[key] = count
			return false
		}
	} else {
		if c, found := e.words[key]; found {
			countPrevious = c
			if math.MaxInt64-countPrevious > count {
				count += countPrevious
			} else {
				count = math.MaxInt64
			}
			e.words[key] = count
			return false
		} else if count < e.config.CountThreshold {
			e.belowThresholdWords[key] = count
			return false
		}
	}

	e.words[key] = count

	if len(key) > e.maxDictionaryWordLength {
		e.maxDictionaryWordLength = len(key)
	}

	if _, skip := e.preloaded[key]; skip {
		return true
	}

	edits := e.EditsPrefix(key)

	if staging != nil {
		for deleteStr := range edits {
			staging.Add(e.hasher.Hash(deleteStr), key)
		}
	} else {
		for deleteStr := range edits {
			deleteHash := e.hasher.Hash(deleteStr)
			e.deletes[deleteHash] = append(e.deletes[deleteHash], key)
		}
	}
	return true
}

// EditsPrefix returns the prefix delete set of key: the closure of key's
// prefixLength-truncated prefix under single-character deletions, taken up
// to config.MaxDictionaryEditDistance deletions deep.
func (e *Engine) EditsPrefix(key string) map[string]struct{} {
	hashSet := make(map[string]struct{})
	if len(key) <= e.config.MaxDictionaryEditDistance {
		hashSet[""] = struct{}{}
	}
	if len(key) > e.config.PrefixLength {
		key = key[:e.config.PrefixLength]
	}
	hashSet[key] = struct{}{}
	e.Edits(key, 0, hashSet)
	return hashSet
}

// Edits recursively generates every single-character deletion of word, up to
// config.MaxDictionaryEditDistance deletions deep, adding each newly seen
// variant to deleteWords.
func (e *Engine) Edits(word string, editDistance int, deleteWords map[string]struct{}) {
	editDistance++
	if len(word) > 1 {
		for i := 0; i < len(word); i++ {
			deleteStr := word[:i] + word[i+1:]
			if _, exists := deleteWords[deleteStr]; !exists {
				deleteWords[deleteStr] = struct{}{}
				if editDistance < e.config.MaxDictionaryEditDistance {
					e.Edits(deleteStr, editDistance, deleteWords)
				}
			}
		}
	}
}

// CommitStaged folds every (delete-hash, word) pair accumulated in staging
// into the permanent DeleteIndex.
func (e *Engine) CommitStaged(staging *SuggestionStage) {
	staging.CommitTo(e.deletes)
}

// LoadDictionary bulk-loads unigram entries from r, one "key<TAB>count" line
// per word. Delete-variant generation is staged and committed once at the
// end, rather than per entry, for bulk-load throughput. Returns a
// *ParseError on the first malformed line; no line is silently skipped.
func (e *Engine) LoadDictionary(r io.Reader) error {
	staging := NewSuggestionStage(16384)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, count, err := parseLexiconLine(line)
		if err != nil {
			parseErr := &ParseError{Line: lineNo, Text: line, Err: err}
			e.logger.Warn().Int("line", lineNo).Str("text", line).Err(err).Msg("symspell: malformed dictionary line")
			return parseErr
		}
		e.CreateDictionaryEntry(key, count, staging)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	e.CommitStaged(staging)

	e.logger.Info().
		Int("words", len(e.words)).
		Int("belowThreshold", len(e.belowThresholdWords)).
		Int("maxDictionaryWordLength", e.maxDictionaryWordLength).
		Int("deleteBuckets", len(e.deletes)).
		Msg("symspell: dictionary loaded")

	return nil
}

// LoadBigramDictionary bulk-loads bigram entries from r, one
// "w1 w2<TAB>count" line per bigram. Returns a *ParseError on the first
// malformed line.
func (e *Engine) LoadBigramDictionary(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	loaded := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		key, count, err := parseLexiconLine(line)
		if err != nil {
			parseErr := &ParseError{Line: lineNo, Text: line, Err: err}
			e.logger.Warn().Int("line", lineNo).Str("text", line).Err(err).Msg("symspell: malformed bigram line")
			return parseErr
		}
		e.bigrams[key] = count
		if count < e.bigramCountMin {
			e.bigramCountMin = count
		}
		loaded++
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	e.logger.Info().
		Int("bigrams", loaded).
		Int64("bigramCountMin", e.bigramCountMin).
		Msg("symspell: bigram dictionary loaded")

	return nil
}

// parseLexiconLine splits a "key<TAB>count" lexicon line.
func parseLexiconLine(line string) (string, int64, error) {
	key, countStr, found := strings.Cut(line, "\t")
	if !found {
		return "", 0, fmt.Errorf("missing tab delimiter")
	}
	count, err := strconv.ParseInt(countStr, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid count %q: %w", countStr, err)
	}
	return key, count, nil
}
