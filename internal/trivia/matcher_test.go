package trivia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesCaseInsensitive(t *testing.T) {
	cases := []struct {
		text string
		term string
		want bool
	}{
		{"What is the capital of France?", "capital", true},
		{"What is the capital of France?", "CAPITAL", true},
		{"WHAT IS THE CAPITAL OF FRANCE?", "capital", true},
		{"What is the capital of France?", "france", true},
		{"What is the capital of France?", "zzz", false},
		{"", "capital", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Matches(tc.text, tc.term), "Matches(%q, %q)", tc.text, tc.term)
	}
}

func TestMatchesFoldsBothSides(t *testing.T) {
	text := "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?"
	term := "Caged"

	assert.Equal(t, Matches(text, term), Matches(strings.ToUpper(text), strings.ToLower(term)))
}

func TestFilterQuestionsKeepsInputOrder(t *testing.T) {
	questions := []Question{
		{ID: 1, Question: "What is the capital of France?"},
		{ID: 2, Question: "Who painted the Mona Lisa?"},
		{ID: 3, Question: "Name the capital of Japan."},
	}

	matched := FilterQuestions(questions, "capital")

	assert.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)
}

func TestFilterQuestionsNoMatches(t *testing.T) {
	questions := []Question{
		{ID: 1, Question: "What is the capital of France?"},
	}

	assert.Empty(t, FilterQuestions(questions, "zzz"))
}
