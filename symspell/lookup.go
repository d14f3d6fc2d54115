package symspell

import (
	"sort"
	"strings"
)

// Lookup finds suggestions for a single word or phrase, using the engine's
// configured maximum edit distance and excluding an explicit fallback
// suggestion when nothing matches.
func (e *Engine) Lookup(input string, verbosity Verbosity) (Suggestions, error) {
	return e.LookupWithMaxDistance(input, verbosity, e.config.MaxDictionaryEditDistance, false)
}

// LookupWithMaxDistance finds suggestions for input within maxEditDistance.
// Verbosity controls how many results are returned:
//
//   - Top: the suggestion with the highest count among those at the smallest
//     edit distance found.
//   - Closest: every suggestion tied at the smallest edit distance found.
//   - All: every suggestion within maxEditDistance, ordered by distance then
//     by descending count (slower: no early termination).
//
// If includeUnknown is true and nothing matches, the result holds a single
// placeholder suggestion equal to input with distance maxEditDistance+1 and
// count 0, so callers doing word segmentation can still price an unknown
// token instead of treating it as a hard failure.
func (e *Engine) LookupWithMaxDistance(input string, verbosity Verbosity, maxEditDistance int, includeUnknown bool) (Suggestions, error) {
	if len(e.words) == 0 && len(e.belowThresholdWords) == 0 {
		return nil, ErrNotInitialized
	}
	if maxEditDistance > e.config.MaxDictionaryEditDistance {
		return nil, ErrInvalidArgument
	}

	suggestions := Suggestions{}
	inputLen := len(input)
	var suggestionCount int64
	var ok bool

	hashset1 := make(map[string]struct{})
	hashset2 := make(map[string]struct{})

	maxEditDistance2 := maxEditDistance
	candidatePointer := 0
	candidates := []string{}

	inputPrefixLen := inputLen

	if inputLen-maxEditDistance > e.maxDictionaryWordLength {
		goto end
	}

	if suggestionCount, ok = e.words[input]; ok {
		suggestions = append(suggestions, Suggestion{Term: input, Distance: 0, Count: suggestionCount})
		if verbosity != All {
			goto end
		}
	}

	if maxEditDistance == 0 {
		goto end
	}

	hashset2[input] = struct{}{}

	if inputPrefixLen > e.config.PrefixLength {
		inputPrefixLen = e.config.PrefixLength
		candidates = append(candidates, input[:inputPrefixLen])
	} else {
		candidates = append(candidates, input)
	}

	for candidatePointer < len(candidates) {
		candidate := candidates[candidatePointer]
		candidatePointer++
		candidateLen := len(candidate)
		lengthDiff := inputPrefixLen - candidateLen

		if lengthDiff > maxEditDistance2 {
			if verbosity == All {
				continue
			}
			break
		}

		if dictSuggestions, found := e.deletes[e.hasher.Hash(candidate)]; found {
			for _, suggestion := range dictSuggestions {
				suggestionLen := len(suggestion)
				if suggestion == input {
					continue
				}
				if abs(suggestionLen-inputLen) > maxEditDistance2 ||
					suggestionLen < candidateLen ||
					(suggestionLen == candidateLen && suggestion != candidate) {
					continue
				}
				suggPrefixLen := min(suggestionLen, e.config.PrefixLength)
				if suggPrefixLen > inputPrefixLen && (suggPrefixLen-candidateLen) > maxEditDistance2 {
					continue
				}

				distance := 0
				minLen := 0
				switch {
				case candidateLen == 0:
					distance = max(inputLen, suggestionLen)
					if distance > maxEditDistance2 || !addToSet(hashset2, suggestion) {
						continue
					}
				case suggestionLen == 1:
					if !strings.ContainsRune(input, rune(suggestion[0])) {
						distance = inputLen
					} else {
						distance = inputLen - 1
					}
					if distance > maxEditDistance2 || !addToSet(hashset2, suggestion) {
						continue
					}
				case (e.config.PrefixLength - maxEditDistance) == candidateLen:
					minLen = min(inputLen, suggestionLen) - e.config.PrefixLength
					if (minLen > 1 && input[inputLen+1-minLen:] != suggestion[suggestionLen+1-minLen:]) ||
						(minLen > 0 &&
							input[inputLen-minLen] != suggestion[suggestionLen-minLen] &&
							(input[inputLen-minLen-1] != suggestion[suggestionLen-minLen] ||
								input[inputLen-minLen] != suggestion[suggestionLen-minLen-1])) {
						continue
					}
					// Not rejected: compute the full distance as below.
					fallthrough
				default:
					if (verbosity != All && !deleteInSuggestionPrefix(candidate, candidateLen, suggestion, suggestionLen, e.config.PrefixLength)) ||
						!addToSet(hashset2, suggestion) {
						continue
					}
					distance = e.distanceFunc.Distance(input, suggestion, maxEditDistance2)
					if distance < 0 {
						continue
					}
				}

				if distance <= maxEditDistance2 {
					suggestionCount = e.words[suggestion]
					si := Suggestion{Term: suggestion, Distance: distance, Count: suggestionCount}
					if len(suggestions) > 0 {
						switch verbosity {
						case Closest:
							if distance < maxEditDistance2 {
								suggestions = suggestions[:0]
							}
						case Top:
							if distance < maxEditDistance2 || suggestionCount > suggestions[0].Count {
								maxEditDistance2 = distance
								suggestions[0] = si
							}
							continue
						}
					}
					if verbosity != All {
						maxEditDistance2 = distance
					}
					suggestions = append(suggestions, si)
				}
			}
		}

		if lengthDiff < maxEditDistance && candidateLen <= e.config.PrefixLength {
			if verbosity != All && lengthDiff >= maxEditDistance2 {
				continue
			}

			for i := 0; i < candidateLen; i++ {
				deleteStr := candidate[:i] + candidate[i+1:]
				if _, found := hashset1[deleteStr]; !found {
					hashset1[deleteStr] = struct{}{}
					candidates = append(candidates, deleteStr)
				}
			}
		}
	}

	if len(suggestions) > 1 {
		sort.Sort(suggestions)

		uniqueSuggestions := make(Suggestions, 0, len(suggestions))
		seen := make(map[string]struct{}, len(suggestions))
		for _, suggestion := range suggestions {
			if _, found := seen[suggestion.Term]; found {
				continue
			}
			uniqueSuggestions = append(uniqueSuggestions, suggestion)
			seen[suggestion.Term] = struct{}{}
		}
		suggestions = uniqueSuggestions
	}

end:
	if includeUnknown && len(suggestions) == 0 {
		suggestions = append(suggestions, Suggestion{Term: input, Distance: maxEditDistance + 1, Count: 0})
	}
	return suggestions, nil
}

// deleteInSuggestionPrefix is the cheap reject used to skip a full distance
// computation when a delete variant cannot possibly be a prefix-compatible
// deletion of suggestion: every character of delete must occur, in order,
// within suggestion's own prefixLength-truncated prefix.
func deleteInSuggestionPrefix(deleteStr string, deleteLen int, suggestion string, suggestionLen int, prefixLength int) bool {
	if deleteLen == 0 {
		return true
	}
	if prefixLength < suggestionLen {
		suggestionLen = prefixLength
	}
	j := 0
	for i := 0; i < deleteLen; i++ {
		delChar := deleteStr[i]
		for j < suggestionLen && delChar != suggestion[j] {
			j++
		}
		if j == suggestionLen {
			return false
		}
	}
	return true
}
