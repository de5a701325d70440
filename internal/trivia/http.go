package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/triviahub/trivia-api/pkg/http/errors"
)

// HTTPHandler exposes the trivia REST endpoints.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs the trivia HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "trivia_http").Logger(),
	}
}

// pageParam reads the page query parameter, defaulting to 1 when absent or
// unparsable.
func pageParam(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// categoriesJSON renders the id→type map with string keys, the shape the
// front end expects.
func categoriesJSON(categories map[int]string) map[string]string {
	out := make(map[string]string, len(categories))
	for id, label := range categories {
		out[strconv.Itoa(id)] = label
	}
	return out
}

func (h *HTTPHandler) respondFailure(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrInvalid):
		httperrors.RespondUnprocessable(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

// HandleListCategories serves GET /categories.
func (h *HTTPHandler) HandleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":    true,
		"categories": categoriesJSON(categories),
	})
}

// HandleListQuestions serves GET /questions?page=N.
func (h *HTTPHandler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.QuestionListing(r.Context(), pageParam(r))
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":          true,
		"categories":       categoriesJSON(page.Categories),
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"current_category": nil,
	})
}

// HandleDeleteQuestion serves DELETE /questions/{id}.
func (h *HTTPHandler) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	result, err := h.svc.Delete(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":         true,
		"deleted":         result.Deleted,
		"questions":       result.Questions,
		"total_questions": result.Total,
	})
}

// HandleCreateQuestion serves POST /questions. The listing and total in the
// response are the pre-insert snapshot, and the total key is misspelled;
// both are frozen wire contract.
func (h *HTTPHandler) HandleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	var input NewQuestion
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	result, err := h.svc.Create(r.Context(), input, pageParam(r))
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":        true,
		"created":        result.Created,
		"question":       result.Questions,
		"total_quetions": result.Total,
	})
}

type searchRequest struct {
	SearchNew string `json:"searchNew"`
}

// HandleSearchQuestions serves POST /questions/search. A request without a
// term is malformed; zero matches is a successful empty result.
func (h *HTTPHandler) HandleSearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SearchNew == "" {
		httperrors.RespondUnprocessable(w)
		return
	}

	matches, err := h.svc.Search(r.Context(), req.SearchNew)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        matches,
		"total_questions":  len(matches),
		"current_category": nil,
	})
}

// HandleQuestionsByCategory serves GET /categories/{id}/questions.
func (h *HTTPHandler) HandleQuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	questions, total, err := h.svc.QuestionsByCategory(r.Context(), id)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":          true,
		"questions":        questions,
		"total_questions":  total,
		"current_category": id,
	})
}

type quizRequest struct {
	QuizCategory      *Category `json:"quiz_category"`
	PreviousQuestions *[]int    `json:"previous_questions"`
}

// HandleQuiz serves POST /quizzes. Category id 0 widens selection to every
// category; an exhausted pool yields a null question, which tells the client
// the quiz is over.
func (h *HTTPHandler) HandleQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if req.QuizCategory == nil || req.PreviousQuestions == nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	question, err := h.svc.NextQuestion(r.Context(), QuizScope{CategoryID: req.QuizCategory.ID}, *req.PreviousQuestions)
	if err != nil {
		h.respondFailure(w, r, err)
		return
	}
	writeJSON(w, map[string]any{
		"success":  true,
		"question": question,
	})
}
