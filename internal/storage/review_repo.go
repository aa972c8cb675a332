package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_review_store.go -package=mocks studydeck/internal/storage ReviewStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ReviewStore defines the interface for review history operations.
type ReviewStore interface {
	// Insert records one completed review. The review.ID must be set (UUID).
	Insert(ctx context.Context, review *ReviewRecord) error
	// ListByFlashcard returns a card's review history, newest first.
	ListByFlashcard(ctx context.Context, flashcardID string) ([]*ReviewRecord, error)
}

// ReviewRepo provides methods for review history operations.
// It implements the ReviewStore interface.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo creates a new ReviewRepo.
func NewReviewRepo(db *sql.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Insert records one completed review. The review.ID must be set (UUID).
func (r *ReviewRepo) Insert(ctx context.Context, review *ReviewRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO reviews (id, flashcard_id, user_id, quality, interval_days, easiness, reviewed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		review.ID, review.FlashcardID, review.UserID, review.Quality,
		review.IntervalDays, review.Easiness, review.ReviewedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// ListByFlashcard returns a card's review history, newest first.
// Returns an empty slice if none exist (not an error).
func (r *ReviewRepo) ListByFlashcard(ctx context.Context, flashcardID string) ([]*ReviewRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, flashcard_id, user_id, quality, interval_days, easiness, reviewed_at FROM reviews WHERE flashcard_id = ? ORDER BY reviewed_at DESC",
		flashcardID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var reviews []*ReviewRecord
	for rows.Next() {
		var review ReviewRecord
		var reviewedAtStr string
		if err := rows.Scan(&review.ID, &review.FlashcardID, &review.UserID,
			&review.Quality, &review.IntervalDays, &review.Easiness, &reviewedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		review.ReviewedAt, err = parseTimestamp(reviewedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse reviewed_at timestamp: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return reviews, nil
}
