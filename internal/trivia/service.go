package trivia

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Store is the persistence surface the service depends on. The pgx-backed
// implementation lives in internal/db/repository; tests inject stubs.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id int) (Category, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	GetQuestion(ctx context.Context, id int) (Question, error)
	InsertQuestion(ctx context.Context, question Question) (int, error)
	DeleteQuestion(ctx context.Context, id int) error
	CountQuestions(ctx context.Context) (int, error)
}

// CategoryCache holds the id→type map close to the API. Implemented by the
// Redis-backed Cache; misses and cache failures fall through to the store.
type CategoryCache interface {
	Get(ctx context.Context) (map[int]string, error)
	Set(ctx context.Context, categories map[int]string) error
}

// Service orchestrates listing, search, mutation and quiz selection over an
// injected store.
type Service struct {
	store    Store
	cache    CategoryCache
	picker   *Picker
	pageSize int
	logger   zerolog.Logger
}

// ServiceOptions tunes the service beyond its collaborators.
type ServiceOptions struct {
	PageSize   int
	PickerSeed int64
}

func NewService(store Store, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		store:    store,
		cache:    cache,
		picker:   NewPicker(opts.PickerSeed),
		pageSize: pageSize,
		logger:   logger.With().Str("component", "trivia_service").Logger(),
	}
}

// Categories returns the id→type map for every category, cache first. An
// empty category table is a not-found condition: the store is expected to be
// seeded.
func (s *Service) Categories(ctx context.Context) (map[int]string, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx); err == nil && len(cached) > 0 {
			return cached, nil
		} else if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		}
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if len(categories) == 0 {
		return nil, ErrNotFound
	}

	byID := make(map[int]string, len(categories))
	for _, c := range categories {
		byID[c.ID] = c.Type
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, byID); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return byID, nil
}

// QuestionPage is one page of the question listing plus the context the
// listing endpoint returns alongside it.
type QuestionPage struct {
	Questions  []Question
	Categories map[int]string
	Total      int
}

// QuestionListing returns the requested page of all questions ordered by id.
// A page past the end of the collection is ErrNotFound.
func (s *Service) QuestionListing(ctx context.Context, page int) (QuestionPage, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("list questions: %w", err)
	}

	current := Paginate(questions, page, s.pageSize)
	if len(current) == 0 {
		return QuestionPage{}, ErrNotFound
	}

	categories, err := s.Categories(ctx)
	if err != nil {
		return QuestionPage{}, err
	}

	total, err := s.store.CountQuestions(ctx)
	if err != nil {
		return QuestionPage{}, fmt.Errorf("count questions: %w", err)
	}

	return QuestionPage{
		Questions:  current,
		Categories: categories,
		Total:      total,
	}, nil
}

// QuestionsByCategory returns every question in one category, unpaginated.
// An unknown category id is ErrNotFound; a known category with no questions
// is a successful empty result.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, int, error) {
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		return nil, 0, err
	}
	questions, err := s.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, 0, fmt.Errorf("list questions by category: %w", err)
	}
	return questions, len(questions), nil
}

// Search returns every question whose text contains term, ignoring case.
// Zero matches is a successful empty result. Term presence is the caller's
// concern.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	questions, err := s.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return FilterQuestions(questions, term), nil
}

// DeleteResult carries the refreshed listing returned by a delete.
type DeleteResult struct {
	Deleted   int
	Questions []Question
	Total     int
}

// Delete removes one question by id and returns the refreshed paginated
// listing. An absent id is ErrNotFound.
func (s *Service) Delete(ctx context.Context, id, page int) (DeleteResult, error) {
	if _, err := s.store.GetQuestion(ctx, id); err != nil {
		return DeleteResult{}, err
	}
	if err := s.store.DeleteQuestion(ctx, id); err != nil {
		return DeleteResult{}, fmt.Errorf("delete question %d: %w", id, err)
	}

	remaining, err := s.store.ListQuestions(ctx)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("list questions: %w", err)
	}
	return DeleteResult{
		Deleted:   id,
		Questions: Paginate(remaining, page, s.pageSize),
		Total:     len(remaining),
	}, nil
}

// CreateResult carries the new id plus the pre-insert listing snapshot the
// create endpoint has always returned.
type CreateResult struct {
	Created   int
	Questions []Question
	Total     int
}

// Create validates and inserts a question. The returned listing and total are
// read before the insert, so they do not include the new row; that snapshot
// is part of the wire contract.
func (s *Service) Create(ctx context.Context, input NewQuestion, page int) (CreateResult, error) {
	if err := input.Validate(); err != nil {
		return CreateResult{}, err
	}

	existing, err := s.store.ListQuestions(ctx)
	if err != nil {
		return CreateResult{}, fmt.Errorf("list questions: %w", err)
	}
	snapshot := Paginate(existing, page, s.pageSize)

	id, err := s.store.InsertQuestion(ctx, Question{
		Question:   *input.Question,
		Answer:     *input.Answer,
		Category:   *input.Category,
		Difficulty: *input.Difficulty,
	})
	if err != nil {
		return CreateResult{}, fmt.Errorf("insert question: %w", err)
	}

	return CreateResult{
		Created:   id,
		Questions: snapshot,
		Total:     len(existing),
	}, nil
}

// NextQuestion draws one eligible question for a quiz round, or nil when the
// scope is exhausted. The exclusion set arrives from the client on every call;
// nothing is remembered server-side.
func (s *Service) NextQuestion(ctx context.Context, scope QuizScope, excludeIDs []int) (*Question, error) {
	if scope.CategoryID < 0 {
		return nil, ErrInvalid
	}

	var (
		candidates []Question
		err        error
	)
	if scope.All() {
		candidates, err = s.store.ListQuestions(ctx)
	} else {
		candidates, err = s.store.ListQuestionsByCategory(ctx, scope.CategoryID)
	}
	if err != nil {
		return nil, fmt.Errorf("load quiz candidates: %w", err)
	}

	picked, ok := s.picker.Next(Eligible(candidates, excludeIDs))
	if !ok {
		return nil, nil
	}
	return &picked, nil
}
