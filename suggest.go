package cmdr

import (
	"sort"
	"strings"
)

const maxSuggestionDistance = 3

// levenshtein calculates the edit distance in runes between two strings, ignoring case.
func levenshtein(a, b string) int {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}

type suggestion struct {
	name     string
	distance int
}

// Suggest finds up to limit command names and aliases that are similar to name.
// Exact matches are never suggested, and results are ordered by distance and then alphabetically.
// Distance ignores case, so a name that only differs in case is the closest possible suggestion.
func (t *Table[S]) Suggest(name string, limit int) []string {
	if limit <= 0 || len(t.index) == 0 {
		return nil
	}
	var suggestions []suggestion
	for key := range t.index {
		if key == name {
			continue
		}
		dist := levenshtein(name, key)
		if dist <= maxSuggestionDistance {
			suggestions = append(suggestions, suggestion{name: key, distance: dist})
		}
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].distance != suggestions[j].distance {
			return suggestions[i].distance < suggestions[j].distance
		}
		return suggestions[i].name < suggestions[j].name
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	result := make([]string, len(suggestions))
	for i, s := range suggestions {
		result[i] = s.name
	}
	return result
}
