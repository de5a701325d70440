package trivia

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(store Store) *http.ServeMux {
	svc := newTestService(store)
	handler := NewHTTPHandler(svc, zerolog.Nop())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", handler.HandleListCategories)
	mux.HandleFunc("GET /categories/{id}/questions", handler.HandleQuestionsByCategory)
	mux.HandleFunc("GET /questions", handler.HandleListQuestions)
	mux.HandleFunc("POST /questions", handler.HandleCreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", handler.HandleDeleteQuestion)
	mux.HandleFunc("POST /questions/search", handler.HandleSearchQuestions)
	mux.HandleFunc("POST /quizzes", handler.HandleQuiz)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestGetCategories(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), nil))

	rec, data := doJSON(t, mux, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	categories := data["categories"].(map[string]any)
	assert.Equal(t, "Science", categories["1"])
	assert.Len(t, categories, 3)
}

func TestGetCategoriesEmptyTable(t *testing.T) {
	mux := newTestMux(newStubStore(nil, nil))

	rec, data := doJSON(t, mux, http.MethodGet, "/categories", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, data["success"])
	assert.Equal(t, float64(404), data["error"])
	assert.Equal(t, "Data could not be found", data["message"])
}

func TestGetQuestionsSecondPage(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(15)))

	rec, data := doJSON(t, mux, http.MethodGet, "/questions?page=2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Len(t, data["questions"].([]any), 5)
	assert.Equal(t, float64(15), data["total_questions"])
	assert.Nil(t, data["current_category"])
}

func TestGetQuestionsPagePastEnd(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(15)))

	rec, data := doJSON(t, mux, http.MethodGet, "/questions?page=1000", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Data could not be found", data["message"])
}

func TestGetQuestionsUnparsablePageDefaultsToFirst(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(15)))

	rec, data := doJSON(t, mux, http.MethodGet, "/questions?page=abc", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, data["questions"].([]any), 10)
}

func TestDeleteQuestion(t *testing.T) {
	store := newStubStore(defaultCategories(), makeQuestions(5))
	mux := newTestMux(store)

	rec, data := doJSON(t, mux, http.MethodDelete, "/questions/3", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(3), data["deleted"])
	assert.Equal(t, float64(4), data["total_questions"])
	for _, raw := range data["questions"].([]any) {
		q := raw.(map[string]any)
		assert.NotEqual(t, float64(3), q["id"])
	}
}

func TestDeleteQuestionAbsentID(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(5)))

	rec, data := doJSON(t, mux, http.MethodDelete, "/questions/1000", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, data["success"])
}

func TestCreateQuestion(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(5)))

	rec, data := doJSON(t, mux, http.MethodPost, "/questions", map[string]any{
		"question":   "New question",
		"answer":     "New answer",
		"category":   1,
		"difficulty": 2,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Equal(t, float64(6), data["created"])
	// Pre-insert snapshot under the historical keys.
	assert.Len(t, data["question"].([]any), 5)
	assert.Equal(t, float64(5), data["total_quetions"])
}

func TestCreateQuestionMissingField(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), nil))

	rec, data := doJSON(t, mux, http.MethodPost, "/questions", map[string]any{
		"question": "New question",
		"category": 1,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "Could not be processed", data["message"])
}

func TestCreateQuestionEmptyBody(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), nil))

	rec, _ := doJSON(t, mux, http.MethodPost, "/questions", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSearchQuestions(t *testing.T) {
	store := newStubStore(defaultCategories(), []Question{
		{ID: 1, Question: "What is the capital of France?", Answer: "Paris", Category: 3, Difficulty: 1},
		{ID: 2, Question: "Who painted the Mona Lisa?", Answer: "Da Vinci", Category: 2, Difficulty: 2},
	})
	mux := newTestMux(store)

	rec, data := doJSON(t, mux, http.MethodPost, "/questions/search", map[string]any{"searchNew": "capital"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, data["questions"].([]any), 1)
	assert.Equal(t, float64(1), data["total_questions"])
	assert.Nil(t, data["current_category"])
}

func TestSearchQuestionsNoHitsIsSuccess(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(3)))

	rec, data := doJSON(t, mux, http.MethodPost, "/questions/search", map[string]any{"searchNew": "zzz"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Empty(t, data["questions"])
	assert.Equal(t, float64(0), data["total_questions"])
}

func TestSearchQuestionsMissingTerm(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(3)))

	rec, _ := doJSON(t, mux, http.MethodPost, "/questions/search", map[string]any{})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetQuestionsByCategory(t *testing.T) {
	store := newStubStore(defaultCategories(), []Question{
		{ID: 1, Question: "q1", Answer: "a", Category: 1, Difficulty: 1},
		{ID: 2, Question: "q2", Answer: "a", Category: 2, Difficulty: 1},
		{ID: 3, Question: "q3", Answer: "a", Category: 1, Difficulty: 1},
	})
	mux := newTestMux(store)

	rec, data := doJSON(t, mux, http.MethodGet, "/categories/1/questions", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, data["questions"].([]any), 2)
	assert.Equal(t, float64(2), data["total_questions"])
	assert.Equal(t, float64(1), data["current_category"])
}

func TestGetQuestionsByUnknownCategory(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(3)))

	rec, _ := doJSON(t, mux, http.MethodGet, "/categories/99/questions", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuizExcludesPreviousQuestions(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(5)))

	for i := 0; i < 50; i++ {
		rec, data := doJSON(t, mux, http.MethodPost, "/quizzes", map[string]any{
			"quiz_category":      map[string]any{"id": 0, "type": ""},
			"previous_questions": []int{1, 2, 3},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		question := data["question"].(map[string]any)
		id := question["id"].(float64)
		assert.Contains(t, []float64{4, 5}, id)
	}
}

func TestQuizExhaustedPoolReturnsNull(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(3)))

	rec, data := doJSON(t, mux, http.MethodPost, "/quizzes", map[string]any{
		"quiz_category":      map[string]any{"id": 0, "type": ""},
		"previous_questions": []int{1, 2, 3},
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, data["success"])
	assert.Nil(t, data["question"])
}

func TestQuizScopedToCategory(t *testing.T) {
	store := newStubStore(defaultCategories(), []Question{
		{ID: 1, Question: "q1", Answer: "a", Category: 1, Difficulty: 1},
		{ID: 2, Question: "q2", Answer: "a", Category: 2, Difficulty: 1},
	})
	mux := newTestMux(store)

	for i := 0; i < 20; i++ {
		rec, data := doJSON(t, mux, http.MethodPost, "/quizzes", map[string]any{
			"quiz_category":      map[string]any{"id": 2, "type": "Art"},
			"previous_questions": []int{},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		question := data["question"].(map[string]any)
		assert.Equal(t, float64(2), question["category"])
	}
}

func TestQuizMissingFieldsIsUnprocessable(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(3)))

	rec, data := doJSON(t, mux, http.MethodPost, "/quizzes", map[string]any{
		"quiz_category": map[string]any{"id": 0, "type": ""},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, float64(422), data["error"])
	assert.Equal(t, "Could not be processed", data["message"])
}

func TestQuizNegativeCategoryIsUnprocessable(t *testing.T) {
	mux := newTestMux(newStubStore(defaultCategories(), makeQuestions(3)))

	rec, _ := doJSON(t, mux, http.MethodPost, "/quizzes", map[string]any{
		"quiz_category":      map[string]any{"id": -1, "type": ""},
		"previous_questions": []int{},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
