package service

import "studydeck/internal/storage"

// GenerateFlashcardsRequest asks for flashcards covering a topic within a
// document. An empty topic covers the whole document.
type GenerateFlashcardsRequest struct {
	UserID     string
	DocumentID string
	Topic      string
	Count      int
}

// GenerateQuizRequest asks for a multiple-choice quiz on a topic within a
// document.
type GenerateQuizRequest struct {
	UserID     string
	DocumentID string
	Topic      string
	Count      int
}

// ReviewFlashcardRequest records one spaced-repetition review of a card.
// Quality is the SM-2 grade from 0 (blackout) to 5 (perfect recall).
type ReviewFlashcardRequest struct {
	UserID      string
	FlashcardID string
	Quality     int
}

// ReviewFlashcardResponse reports the updated scheduling state of a card.
type ReviewFlashcardResponse struct {
	Card *storage.FlashcardRecord
}
