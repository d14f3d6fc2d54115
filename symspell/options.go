package symspell

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Config holds the engine's immutable tuning parameters. Values are
// validated once by Validate, normally as part of NewEngine.
type Config struct {
	// InitialCapacity sizes the initial words map; purely a sizing hint.
	InitialCapacity int

	// MaxDictionaryEditDistance bounds the edit distance the DeleteIndex is
	// built for and queries may request.
	MaxDictionaryEditDistance int

	// PrefixLength is the length every word and query is truncated to
	// before delete-variant expansion. Must be >= MaxDictionaryEditDistance.
	PrefixLength int

	// CountThreshold is the minimum accumulated count for a word to be
	// considered known.
	CountThreshold int64

	// CompactLevel (0-16) is checked by Validate but not otherwise read by
	// the engine: an FNVHasher's table size comes from the compactLevel
	// passed to NewFNVHasher, and the default XXHasher has no such setting.
	CompactLevel uint8
}

// DefaultConfig returns a sensible common-case configuration: edit distance
// 2, prefix length 7, every word counted.
func DefaultConfig() Config {
	return Config{
		InitialCapacity:           16,
		MaxDictionaryEditDistance: defaultMaxEditDistance,
		PrefixLength:              defaultPrefixLength,
		CountThreshold:            defaultCountThreshold,
		CompactLevel:              defaultCompactLevel,
	}
}

// Validate checks the configuration's invariants.
func (c Config) Validate() error {
	if c.InitialCapacity < 0 {
		return fmt.Errorf("symspell: InitialCapacity must be >= 0, got %d", c.InitialCapacity)
	}
	if c.MaxDictionaryEditDistance < 0 {
		return fmt.Errorf("symspell: MaxDictionaryEditDistance must be >= 0, got %d", c.MaxDictionaryEditDistance)
	}
	if c.PrefixLength < 1 {
		return fmt.Errorf("symspell: PrefixLength must be >= 1, got %d", c.PrefixLength)
	}
	if c.PrefixLength < c.MaxDictionaryEditDistance {
		return fmt.Errorf("symspell: PrefixLength (%d) must be >= MaxDictionaryEditDistance (%d)", c.PrefixLength, c.MaxDictionaryEditDistance)
	}
	if c.CountThreshold < 0 {
		return fmt.Errorf("symspell: CountThreshold must be >= 0, got %d", c.CountThreshold)
	}
	if c.CompactLevel > 16 {
		return fmt.Errorf("symspell: CompactLevel must be <= 16, got %d", c.CompactLevel)
	}
	return nil
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithHasher overrides the engine's default Hasher (XXHasher).
func WithHasher(h Hasher) Option {
	return func(e *Engine) { e.hasher = h }
}

// WithDistanceFunc overrides the engine's default DistanceFunc (DamerauOSA).
func WithDistanceFunc(d DistanceFunc) Option {
	return func(e *Engine) { e.distanceFunc = d }
}

// WithLogger attaches a structured logger for build and lookup diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithPrebuiltIndex seeds the engine's DeleteIndex from a previously built
// index, and marks knownWords as already covered by it. CreateDictionaryEntry
// still runs for every lexicon line to populate word counts, but skips
// delete-variant generation for any key present in knownWords, since those
// deletes are assumed already present in the supplied index.
func WithPrebuiltIndex(index map[uint32][]string, knownWords map[string]struct{}) Option {
	return func(e *Engine) {
		if index != nil {
			e.deletes = index
		}
		if knownWords != nil {
			e.preloaded = knownWords
		}
	}
}
