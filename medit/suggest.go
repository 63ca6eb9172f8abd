package medit

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Alfex4936/medit/internal/token"
)

// MaxSuggestions caps how many candidates SuggestText attaches to
// each flagged word.
var MaxSuggestions = 5

// Closest ranks dictionary words by their distance to word,
// ascending, ties broken lexicographically. limit <= 0 keeps every
// candidate, maxDistance < 0 disables the distance cap. Duplicate and
// blank dictionary entries are dropped.
func Closest(word string, dict *Dict, limit, maxDistance int) []Suggestion {
	if dict == nil || len(dict.Words) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(dict.Words))
	out := make([]Suggestion, 0, len(dict.Words))
	for _, raw := range dict.Words {
		w := strings.TrimSpace(raw)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		d := Distance(word, w)
		if maxDistance >= 0 && d > maxDistance {
			continue
		}
		out = append(out, Suggestion{Word: w, Distance: d})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Word < out[j].Word
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// SuggestText scans text into words, flags the ones missing from
// dict, attaches up to MaxSuggestions closest dictionary words per
// flag, and builds the corrected text by substituting each flag's
// best suggestion.
func SuggestText(text string, dict *Dict) *Result {
	spans := token.Fields(text)
	res := &Result{
		Original:   text,
		Corrected:  text,
		CharCount:  utf8.RuneCountInString(text),
		TokenCount: len(spans),
	}

	known := dict.set()
	if len(known) == 0 {
		return res
	}

	for _, sp := range spans {
		if _, ok := known[sp.Word]; ok {
			continue
		}
		sugg := Closest(sp.Word, dict, MaxSuggestions, -1)
		if len(sugg) == 0 {
			continue
		}
		words := make([]string, len(sugg))
		dists := make([]int, len(sugg))
		for i, s := range sugg {
			words[i], dists[i] = s.Word, s.Distance
		}
		res.Flags = append(res.Flags, Flag{
			Start:     sp.Start,
			End:       sp.End,
			Origin:    sp.Word,
			Suggest:   words,
			Distances: dists,
		})
	}

	res.ErrorCount = len(res.Flags)
	res.Corrected = applySuggestions(text, res.Flags)
	res.EditDistance = Distance(res.Original, res.Corrected)
	return res
}

// applySuggestions replaces each flagged span with its first
// suggestion. Applies right-to-left so earlier rune offsets stay
// valid.
func applySuggestions(input string, flags []Flag) string {
	if len(flags) == 0 {
		return input
	}
	sorted := make([]Flag, len(flags))
	copy(sorted, flags)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start > sorted[j].Start })

	runes := []rune(input)
	for _, f := range sorted {
		if len(f.Suggest) == 0 {
			continue
		}
		repl := []rune(f.Suggest[0])
		runes = append(runes[:f.Start], append(repl, runes[f.End:]...)...)
	}
	return string(runes)
}
