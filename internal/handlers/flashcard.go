package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"studydeck/internal/auth"
	"studydeck/internal/contextutil"
	"studydeck/internal/service"
	"studydeck/internal/storage"
)

// FlashcardHandler handles flashcard generation and spaced-repetition review.
type FlashcardHandler struct {
	studyService  service.StudyService
	flashcardRepo storage.FlashcardStore
	reviewRepo    storage.ReviewStore
}

// NewFlashcardHandler creates a new FlashcardHandler.
func NewFlashcardHandler(studyService service.StudyService, flashcardRepo storage.FlashcardStore, reviewRepo storage.ReviewStore) *FlashcardHandler {
	return &FlashcardHandler{
		studyService:  studyService,
		flashcardRepo: flashcardRepo,
		reviewRepo:    reviewRepo,
	}
}

// GenerateFlashcardsRequest represents the flashcard generation payload.
//
// swagger:model GenerateFlashcardsRequest
type GenerateFlashcardsRequest struct {
	DocumentID string `json:"document_id"`
	Topic      string `json:"topic,omitempty"`
	Count      int    `json:"count,omitempty"`
}

// ReviewRequest represents a spaced-repetition review grade.
//
// swagger:model ReviewRequest
type ReviewRequest struct {
	// Quality is the SM-2 recall grade from 0 (blackout) to 5 (perfect).
	Quality int `json:"quality"`
}

// FlashcardResponse represents a flashcard in API responses.
//
// swagger:model FlashcardResponse
type FlashcardResponse struct {
	ID           string  `json:"id"`
	DocumentID   string  `json:"document_id"`
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	Repetitions  int     `json:"repetitions"`
	IntervalDays int     `json:"interval_days"`
	Easiness     float64 `json:"easiness"`
	DueAt        string  `json:"due_at"`
}

// Generate handles POST /api/flashcards/generate.
func (h *FlashcardHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	var req GenerateFlashcardsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cards, err := h.studyService.GenerateFlashcards(ctx, service.GenerateFlashcardsRequest{
		UserID:     userID,
		DocumentID: req.DocumentID,
		Topic:      req.Topic,
		Count:      req.Count,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to generate flashcards")
		return
	}

	writeJSON(w, http.StatusCreated, flashcardResponses(cards))
}

// ListByDocument handles GET /api/documents/{id}/flashcards.
func (h *FlashcardHandler) ListByDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	documentID := chi.URLParam(r, "id")
	cards, err := h.flashcardRepo.ListByDocument(ctx, documentID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list flashcards", "document_id", documentID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list flashcards")
		return
	}

	owned := make([]*storage.FlashcardRecord, 0, len(cards))
	for _, card := range cards {
		if card.UserID == userID {
			owned = append(owned, card)
		}
	}
	writeJSON(w, http.StatusOK, flashcardResponses(owned))
}

// ListDue handles GET /api/flashcards/due. It returns the user's cards due
// for review now, across all documents.
func (h *FlashcardHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	cards, err := h.flashcardRepo.ListDue(ctx, userID, time.Now().UTC())
	if err != nil {
		logger.ErrorContext(ctx, "failed to list due flashcards", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list due flashcards")
		return
	}
	writeJSON(w, http.StatusOK, flashcardResponses(cards))
}

// Review handles POST /api/flashcards/{id}/review.
func (h *FlashcardHandler) Review(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.studyService.ReviewFlashcard(ctx, service.ReviewFlashcardRequest{
		UserID:      userID,
		FlashcardID: chi.URLParam(r, "id"),
		Quality:     req.Quality,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to review flashcard")
		return
	}

	writeJSON(w, http.StatusOK, flashcardResponse(resp.Card))
}

// ReviewHistoryResponse represents one past review of a flashcard.
//
// swagger:model ReviewHistoryResponse
type ReviewHistoryResponse struct {
	ID           string  `json:"id"`
	Quality      int     `json:"quality"`
	IntervalDays int     `json:"interval_days"`
	Easiness     float64 `json:"easiness"`
	ReviewedAt   string  `json:"reviewed_at"`
}

// History handles GET /api/flashcards/{id}/reviews. It returns the card's
// review history, newest first.
func (h *FlashcardHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	userID := auth.UserIDFromContext(ctx)

	cardID := chi.URLParam(r, "id")
	card, err := h.flashcardRepo.GetByID(ctx, cardID)
	if err != nil || card.UserID != userID {
		// Hide other users' cards behind the same 404 as missing ones.
		writeError(w, http.StatusNotFound, "Flashcard not found")
		return
	}

	reviews, err := h.reviewRepo.ListByFlashcard(ctx, cardID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to list reviews", "flashcard_id", cardID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list reviews")
		return
	}

	resp := make([]ReviewHistoryResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, ReviewHistoryResponse{
			ID:           review.ID,
			Quality:      review.Quality,
			IntervalDays: review.IntervalDays,
			Easiness:     review.Easiness,
			ReviewedAt:   review.ReviewedAt.UTC().Format(time.RFC3339),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func flashcardResponse(card *storage.FlashcardRecord) FlashcardResponse {
	return FlashcardResponse{
		ID:           card.ID,
		DocumentID:   card.DocumentID,
		Question:     card.Question,
		Answer:       card.Answer,
		Repetitions:  card.Repetitions,
		IntervalDays: card.IntervalDays,
		Easiness:     card.Easiness,
		DueAt:        card.DueAt.UTC().Format(time.RFC3339),
	}
}

func flashcardResponses(cards []*storage.FlashcardRecord) []FlashcardResponse {
	resp := make([]FlashcardResponse, 0, len(cards))
	for _, card := range cards {
		resp = append(resp, flashcardResponse(card))
	}
	return resp
}
