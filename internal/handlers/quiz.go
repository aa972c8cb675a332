package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studydeck/internal/auth"
	"studydeck/internal/contextutil"
	"studydeck/internal/service"
	"studydeck/internal/storage"
)

// QuizHandler handles quiz generation and retrieval.
type QuizHandler struct {
	studyService service.StudyService
	quizRepo     storage.QuizStore
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(studyService service.StudyService, quizRepo storage.QuizStore) *QuizHandler {
	return &QuizHandler{
		studyService: studyService,
		quizRepo:     quizRepo,
	}
}

// GenerateQuizRequest represents the quiz generation payload.
//
// swagger:model GenerateQuizRequest
type GenerateQuizRequest struct {
	DocumentID string `json:"document_id"`
	Topic      string `json:"topic,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// QuizResponse represents a quiz in API responses.
//
// swagger:model QuizResponse
type QuizResponse struct {
	ID         string                 `json:"id"`
	DocumentID string                 `json:"document_id"`
	Topic      string                 `json:"topic,omitempty"`
	Questions  []QuizQuestionResponse `json:"questions,omitempty"`
}

// QuizQuestionResponse represents a single multiple-choice question.
//
// swagger:model QuizQuestionResponse
type QuizQuestionResponse struct {
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
}

// Generate handles POST /api/quizzes/generate.
func (h *QuizHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	var req GenerateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quiz, err := h.studyService.GenerateQuiz(ctx, service.GenerateQuizRequest{
		UserID:     userID,
		DocumentID: req.DocumentID,
		Topic:      req.Topic,
		Count:      req.Count,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to generate quiz")
		return
	}

	writeJSON(w, http.StatusCreated, quizResponse(quiz))
}

// Get handles GET /api/quizzes/{id}.
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	id := chi.URLParam(r, "id")
	quiz, err := h.quizRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Quiz not found")
			return
		}
		logger.ErrorContext(ctx, "failed to load quiz", "quiz_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load quiz")
		return
	}
	if quiz.UserID != userID {
		writeError(w, http.StatusNotFound, "Quiz not found")
		return
	}

	writeJSON(w, http.StatusOK, quizResponse(quiz))
}

// ListByDocument handles GET /api/documents/{id}/quizzes. Questions are
// omitted from the listing; fetch a quiz by ID to get them.
func (h *QuizHandler) ListByDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	documentID := chi.URLParam(r, "id")
	quizzes, err := h.quizRepo.ListByDocument(ctx, documentID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list quizzes", "document_id", documentID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list quizzes")
		return
	}

	resp := make([]QuizResponse, 0, len(quizzes))
	for _, quiz := range quizzes {
		if quiz.UserID == userID {
			resp = append(resp, quizResponse(quiz))
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func quizResponse(quiz *storage.QuizRecord) QuizResponse {
	resp := QuizResponse{
		ID:         quiz.ID,
		DocumentID: quiz.DocumentID,
		Topic:      quiz.Topic,
	}
	for _, q := range quiz.Questions {
		resp.Questions = append(resp.Questions, QuizQuestionResponse{
			Prompt:      q.Prompt,
			Options:     q.Options,
			AnswerIndex: q.AnswerIndex,
			Explanation: q.Explanation,
		})
	}
	return resp
}
