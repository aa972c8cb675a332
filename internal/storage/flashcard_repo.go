package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_flashcard_store.go -package=mocks studydeck/internal/storage FlashcardStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// FlashcardStore defines the interface for flashcard storage operations.
type FlashcardStore interface {
	// Insert inserts a flashcard. The card.ID must be set (UUID) before calling.
	Insert(ctx context.Context, card *FlashcardRecord) error
	// GetByID gets a flashcard by ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*FlashcardRecord, error)
	// ListByDocument returns all flashcards for a document, oldest first.
	ListByDocument(ctx context.Context, documentID string) ([]*FlashcardRecord, error)
	// ListDue returns a user's flashcards due at or before the given time.
	ListDue(ctx context.Context, userID string, due time.Time) ([]*FlashcardRecord, error)
	// UpdateReviewState persists the SM-2 state and next due time of a card.
	UpdateReviewState(ctx context.Context, card *FlashcardRecord) error
}

// FlashcardRepo provides methods for flashcard operations.
// It implements the FlashcardStore interface.
type FlashcardRepo struct {
	db *sql.DB
}

// NewFlashcardRepo creates a new FlashcardRepo.
func NewFlashcardRepo(db *sql.DB) *FlashcardRepo {
	return &FlashcardRepo{db: db}
}

// Insert inserts a flashcard. The card.ID must be set (UUID) before calling.
func (r *FlashcardRepo) Insert(ctx context.Context, card *FlashcardRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO flashcards (id, document_id, user_id, question, answer, repetitions, interval_days, easiness, due_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		card.ID, card.DocumentID, card.UserID, card.Question, card.Answer,
		card.Repetitions, card.IntervalDays, card.Easiness, card.DueAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert flashcard: %w", err)
	}
	return nil
}

// GetByID gets a flashcard by ID. Returns ErrNotFound if not found.
func (r *FlashcardRepo) GetByID(ctx context.Context, id string) (*FlashcardRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, document_id, user_id, question, answer, repetitions, interval_days, easiness, due_at, created_at FROM flashcards WHERE id = ?",
		id,
	)
	card, err := scanFlashcard(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return card, err
}

// ListByDocument returns all flashcards for a document, oldest first.
// Returns an empty slice if none exist (not an error).
func (r *FlashcardRepo) ListByDocument(ctx context.Context, documentID string) ([]*FlashcardRecord, error) {
	return r.list(ctx,
		"SELECT id, document_id, user_id, question, answer, repetitions, interval_days, easiness, due_at, created_at FROM flashcards WHERE document_id = ? ORDER BY created_at",
		documentID,
	)
}

// ListDue returns a user's flashcards due at or before the given time,
// most overdue first.
func (r *FlashcardRepo) ListDue(ctx context.Context, userID string, due time.Time) ([]*FlashcardRecord, error) {
	return r.list(ctx,
		"SELECT id, document_id, user_id, question, answer, repetitions, interval_days, easiness, due_at, created_at FROM flashcards WHERE user_id = ? AND due_at <= ? ORDER BY due_at",
		userID, due.UTC().Format(time.RFC3339),
	)
}

// UpdateReviewState persists the SM-2 state and next due time of a card.
func (r *FlashcardRepo) UpdateReviewState(ctx context.Context, card *FlashcardRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE flashcards SET repetitions = ?, interval_days = ?, easiness = ?, due_at = ? WHERE id = ?",
		card.Repetitions, card.IntervalDays, card.Easiness, card.DueAt.UTC().Format(time.RFC3339), card.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update flashcard: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FlashcardRepo) list(ctx context.Context, query string, args ...any) ([]*FlashcardRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query flashcards: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var cards []*FlashcardRecord
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return cards, nil
}

func scanFlashcard(row rowScanner) (*FlashcardRecord, error) {
	var card FlashcardRecord
	var dueAtStr, createdAtStr string

	err := row.Scan(&card.ID, &card.DocumentID, &card.UserID, &card.Question, &card.Answer,
		&card.Repetitions, &card.IntervalDays, &card.Easiness, &dueAtStr, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan flashcard: %w", err)
	}

	card.DueAt, err = parseTimestamp(dueAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse due_at timestamp: %w", err)
	}
	card.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &card, nil
}
