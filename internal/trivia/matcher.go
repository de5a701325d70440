package trivia

import "strings"

// Matches reports whether term occurs anywhere in text, ignoring case.
// Callers branch on term presence before invoking; an empty term means
// "no search requested", not "match everything".
func Matches(text, term string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(term))
}

// FilterQuestions returns every question whose text matches term, in input
// order. Search results are not paginated.
func FilterQuestions(questions []Question, term string) []Question {
	matched := make([]Question, 0, len(questions))
	for _, q := range questions {
		if Matches(q.Question, term) {
			matched = append(matched, q)
		}
	}
	return matched
}
