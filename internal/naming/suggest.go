package naming

import (
	"sort"
)

// MinSuggestionScore is the lowest Similarity a candidate needs to be suggested.
const MinSuggestionScore = 0.6

// maxSuggestions caps the number of names returned by Suggest.
const maxSuggestions = 3

// Suggest returns up to three candidates that look like name, best first.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		if s := Similarity(name, c); s >= MinSuggestionScore {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	out := make([]string, 0, min(len(ranked), maxSuggestions))
	for i := 0; i < len(ranked) && i < maxSuggestions; i++ {
		out = append(out, ranked[i].name)
	}

	return out
}
