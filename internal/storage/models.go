package storage

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// UserRecord represents a registered user in the database.
type UserRecord struct {
	ID           string // UUID
	Email        string
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}

// DocumentRecord represents an uploaded document in the database.
type DocumentRecord struct {
	ID        string // UUID
	UserID    string // Foreign key to users.id
	Filename  string // Original upload filename
	Title     string // Display title (filename without extension)
	Hash      string // SHA256 hex string of extracted text
	CreatedAt time.Time
}

// ChunkRecord represents a chunk of document text, keyed by chunk index.
type ChunkRecord struct {
	ID         string // UUID
	DocumentID string // Foreign key to documents.id
	ChunkIndex int    // Index within document (starts at 0)
	PageNumber int    // Page attribution placeholder (always 0 for now)
	Content    string // Chunk text content
}

// FlashcardRecord represents a generated flashcard with its SM-2 state.
type FlashcardRecord struct {
	ID           string // UUID
	DocumentID   string // Foreign key to documents.id
	UserID       string
	Question     string
	Answer       string
	Repetitions  int
	IntervalDays int
	Easiness     float64
	DueAt        time.Time
	CreatedAt    time.Time
}

// ReviewRecord represents one completed review of a flashcard.
type ReviewRecord struct {
	ID           string // UUID
	FlashcardID  string // Foreign key to flashcards.id
	UserID       string
	Quality      int     // SM-2 grade given, 0 to 5
	IntervalDays int     // Interval after this review
	Easiness     float64 // Easiness after this review
	ReviewedAt   time.Time
}

// QuizRecord represents a generated quiz.
type QuizRecord struct {
	ID         string // UUID
	DocumentID string // Foreign key to documents.id
	UserID     string
	Topic      string
	Questions  []QuizQuestionRecord
	CreatedAt  time.Time
}

// QuizQuestionRecord represents a single multiple-choice question.
type QuizQuestionRecord struct {
	ID            string   // UUID
	QuizID        string   // Foreign key to quizzes.id
	QuestionIndex int      // Index within quiz (starts at 0)
	Prompt        string
	Options       []string // Stored as a JSON array
	AnswerIndex   int      // Index into Options
	Explanation   string
}
