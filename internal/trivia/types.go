package trivia

import "errors"

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound = errors.New("resource not found")
	ErrInvalid  = errors.New("invalid input")
)

// Category is a pre-seeded, immutable question grouping.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}

// Question is a single trivia record. The id is assigned by the store on
// insert and never changes.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
}

// NewQuestion carries the caller-supplied fields for an insert. Pointers
// distinguish absent fields from zero values.
type NewQuestion struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// Validate reports whether every required field is present and non-empty.
func (n NewQuestion) Validate() error {
	if n.Question == nil || *n.Question == "" {
		return ErrInvalid
	}
	if n.Answer == nil || *n.Answer == "" {
		return ErrInvalid
	}
	if n.Category == nil || n.Difficulty == nil {
		return ErrInvalid
	}
	return nil
}

// ScopeAll is the category id that widens quiz selection to every category.
// The front end sends it for the "all categories" tile.
const ScopeAll = 0

// QuizScope narrows quiz selection to one category, or to all of them.
// Scope is decided by id alone; display labels are never consulted.
type QuizScope struct {
	CategoryID int
}

// All reports whether the scope covers every category.
func (s QuizScope) All() bool { return s.CategoryID == ScopeAll }
