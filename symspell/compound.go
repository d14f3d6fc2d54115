package symspell

import (
	"math"
	"strings"
)

// LookupCompound corrects a phrase term by term, additionally considering
// whether adjacent terms should be combined or a single term split in two.
// It always returns exactly one Suggestion: the reassembled phrase, its
// estimated count, and its edit distance from input.
func (e *Engine) LookupCompound(input string, editDistanceMax int) (Suggestion, error) {
	if len(e.words) == 0 && len(e.belowThresholdWords) == 0 {
		return Suggestion{}, ErrNotInitialized
	}

	termList1 := parseWords(input)

	var suggestions Suggestions
	suggestionParts := make(Suggestions, 0)

	lastCombi := false
	for i := 0; i < len(termList1); i++ {
		suggestions, _ = e.LookupWithMaxDistance(termList1[i], Top, editDistanceMax, false)

		// Combi check, always before split.
		if i > 0 && !lastCombi {
			combinedTerm := termList1[i-1] + termList1[i]
			suggestionsCombi, _ := e.LookupWithMaxDistance(combinedTerm, Top, editDistanceMax, false)

			if len(suggestionsCombi) > 0 {
				best1 := suggestionParts[len(suggestionParts)-1]
				var best2 Suggestion
				if len(suggestions) > 0 {
					best2 = suggestions[0]
				} else {
					// Unknown word: estimated occurrence probability
					// P=10 / (n * 10^word length).
					best2.Term = termList1[i]
					best2.Distance = editDistanceMax + 1
					best2.Count = int64(10 / math.Pow(10, float64(len(best2.Term))))
				}

				distance1 := best1.Distance + best2.Distance
				if distance1 >= 0 && ((suggestionsCombi[0].Distance+1 < distance1) ||
					((suggestionsCombi[0].Distance+1 == distance1) &&
						float64(suggestionsCombi[0].Count) > float64(best1.Count)/n*float64(best2.Count))) {
					suggestionsCombi[0].Distance++
					suggestionParts[len(suggestionParts)-1] = suggestionsCombi[0]
					lastCombi = true
					e.logger.Debug().
						Str("combined", combinedTerm).
						Str("result", suggestionsCombi[0].Term).
						Msg("symspell: compound combine")
					continue
				}
			}
		}
		lastCombi = false

		// Always split terms without suggestion, never split terms with a
		// perfect suggestion, never split single-char terms.
		if len(suggestions) > 0 && (suggestions[0].Distance == 0 || len(termList1[i]) == 1) {
			suggestionParts = append(suggestionParts, suggestions[0])
			continue
		}

		var suggestionSplitBest *Suggestion
		if len(suggestions) > 0 {
			tmp := suggestions[0]
			suggestionSplitBest = &tmp
		}

		if len(termList1[i]) > 1 {
			for j := 1; j < len(termList1[i]); j++ {
				part1 := termList1[i][:j]
				part2 := termList1[i][j:]
				suggestionSplit := Suggestion{}
				suggestions1, _ := e.LookupWithMaxDistance(part1, Top, editDistanceMax, false)
				if len(suggestions1) == 0 {
					continue
				}
				suggestions2, _ := e.LookupWithMaxDistance(part2, Top, editDistanceMax, false)
				if len(suggestions2) == 0 {
					continue
				}

				suggestionSplit.Term = suggestions1[0].Term + " " + suggestions2[0].Term

				distance2 := e.distanceFunc.Distance(termList1[i], suggestionSplit.Term, editDistanceMax)
				if distance2 < 0 {
					distance2 = editDistanceMax + 1
				}

				if suggestionSplitBest != nil {
					if distance2 > suggestionSplitBest.Distance {
						continue
					}
					if distance2 < suggestionSplitBest.Distance {
						suggestionSplitBest = nil
					}
				}

				suggestionSplit.Distance = distance2
				if bigramCount, bigramExists := e.bigrams[suggestionSplit.Term]; bigramExists {
					suggestionSplit.Count = bigramCount

					// Increase count if split corrections are part of or
					// identical to input.
					if len(suggestions) > 0 {
						if suggestions1[0].Term+suggestions2[0].Term == termList1[i] {
							suggestionSplit.Count = maxInt64(suggestionSplit.Count, suggestions[0].Count+2)
						} else if suggestions1[0].Term == suggestions[0].Term || suggestions2[0].Term == suggestions[0].Term {
							suggestionSplit.Count = maxInt64(suggestionSplit.Count, suggestions[0].Count+1)
						}
					} else if suggestions1[0].Term+suggestions2[0].Term == termList1[i] {
						suggestionSplit.Count = maxInt64(suggestionSplit.Count, maxInt64(suggestions1[0].Count, suggestions2[0].Count)+2)
					}
				} else {
					// No bigram on record: estimate the combination's
					// frequency as the product of the two word
					// probabilities, P(AB) = P(A) * P(B).
					suggestionSplit.Count = minInt64(e.bigramCountMin, int64(float64(suggestions1[0].Count)/n*float64(suggestions2[0].Count)))
				}

				if suggestionSplitBest == nil || suggestionSplit.Count > suggestionSplitBest.Count {
					tmp := suggestionSplit
					suggestionSplitBest = &tmp
				}
			}

			if suggestionSplitBest != nil {
				e.logger.Debug().
					Str("term", termList1[i]).
					Str("split", suggestionSplitBest.Term).
					Msg("symspell: compound split")
				suggestionParts = append(suggestionParts, *suggestionSplitBest)
			} else {
				suggestionParts = append(suggestionParts, unknownTermSuggestion(termList1[i], editDistanceMax))
			}
		} else {
			suggestionParts = append(suggestionParts, unknownTermSuggestion(termList1[i], editDistanceMax))
		}
	}

	var sb strings.Builder
	count := n
	for _, si := range suggestionParts {
		sb.WriteString(si.Term)
		sb.WriteString(" ")
		count *= float64(si.Count) / n
	}

	term := strings.TrimSpace(sb.String())
	return Suggestion{
		Term:     term,
		Count:    int64(count),
		Distance: e.distanceFunc.Distance(input, term, math.MaxInt32),
	}, nil
}

// unknownTermSuggestion estimates a term's occurrence probability as
// P=10 / (n * 10^word length) when no split or single-word correction could
// be found for it.
func unknownTermSuggestion(term string, editDistanceMax int) Suggestion {
	return Suggestion{
		Term:     term,
		Count:    int64(10 / math.Pow(10, float64(len(term)))),
		Distance: editDistanceMax + 1,
	}
}
