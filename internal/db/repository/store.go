package repository

import (
	"github.com/triviahub/trivia-api/internal/db/postgres"
	"github.com/triviahub/trivia-api/internal/trivia"
)

// Store composes the question and category repositories into the single
// persistence surface the trivia service consumes.
type Store struct {
	*QuestionRepository
	*CategoryRepository
}

var _ trivia.Store = (*Store)(nil)

func NewStore(db postgres.DBTX) *Store {
	return &Store{
		QuestionRepository: NewQuestionRepository(db),
		CategoryRepository: NewCategoryRepository(db),
	}
}
