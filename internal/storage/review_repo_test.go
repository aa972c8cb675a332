package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func insertTestReview(t *testing.T, repo *ReviewRepo, cardID, userID string, quality int, reviewedAt time.Time) *ReviewRecord {
	t.Helper()

	review := &ReviewRecord{
		ID:           uuid.New().String(),
		FlashcardID:  cardID,
		UserID:       userID,
		Quality:      quality,
		IntervalDays: 1,
		Easiness:     2.5,
		ReviewedAt:   reviewedAt,
	}
	if err := repo.Insert(context.Background(), review); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	return review
}

func TestReviewRepo_InsertAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepo(db)
	ctx := context.Background()

	userID := insertTestUser(t, db)
	docID := insertTestDocument(t, db, userID)
	card := insertTestFlashcard(t, NewFlashcardRepo(db), docID, userID, time.Now().UTC())

	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	first := insertTestReview(t, repo, card.ID, userID, 3, base)
	second := insertTestReview(t, repo, card.ID, userID, 5, base.Add(48*time.Hour))

	reviews, err := repo.ListByFlashcard(ctx, card.ID)
	if err != nil {
		t.Fatalf("ListByFlashcard() error = %v", err)
	}
	if len(reviews) != 2 {
		t.Fatalf("ListByFlashcard() = %d reviews, want 2", len(reviews))
	}

	// Newest first
	if reviews[0].ID != second.ID || reviews[1].ID != first.ID {
		t.Errorf("ListByFlashcard() order = [%s, %s], want [%s, %s]",
			reviews[0].ID, reviews[1].ID, second.ID, first.ID)
	}
	if reviews[0].Quality != 5 {
		t.Errorf("ListByFlashcard() quality = %d, want 5", reviews[0].Quality)
	}
	if !reviews[1].ReviewedAt.Equal(base) {
		t.Errorf("ListByFlashcard() reviewed at = %v, want %v", reviews[1].ReviewedAt, base)
	}
}

func TestReviewRepo_ListByFlashcard_Empty(t *testing.T) {
	db := newTestDB(t)

	reviews, err := NewReviewRepo(db).ListByFlashcard(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ListByFlashcard() error = %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("ListByFlashcard() = %d reviews, want 0", len(reviews))
	}
}

func TestReviewRepo_CascadeOnFlashcardDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewReviewRepo(db)
	ctx := context.Background()

	userID := insertTestUser(t, db)
	docID := insertTestDocument(t, db, userID)
	card := insertTestFlashcard(t, NewFlashcardRepo(db), docID, userID, time.Now().UTC())
	insertTestReview(t, repo, card.ID, userID, 4, time.Now().UTC())

	if _, err := db.Exec("DELETE FROM flashcards WHERE id = ?", card.ID); err != nil {
		t.Fatalf("failed to delete flashcard: %v", err)
	}

	reviews, err := repo.ListByFlashcard(ctx, card.ID)
	if err != nil {
		t.Fatalf("ListByFlashcard() error = %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("reviews should cascade on flashcard delete, got %d", len(reviews))
	}
}
