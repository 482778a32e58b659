package board

import "strings"

// Filter returns the boards whose name contains query as a case-insensitive
// substring, preserving the relative order of all. An empty query returns
// all unchanged. Filter never mutates its input and never fails: an empty
// or nil collection yields an empty result.
func Filter(all []Board, query string) []Board {
	if query == "" {
		return all
	}

	q := strings.ToLower(query)
	var out []Board
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Name), q) {
			out = append(out, b)
		}
	}
	return out
}
