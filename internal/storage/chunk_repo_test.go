package storage

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestChunkRepo_InsertAndList(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChunkRepo(db)

	userID := insertTestUser(t, db)
	docID := insertTestDocument(t, db, userID)

	// Insert out of order; listing must return chunk_index order.
	for _, idx := range []int{2, 0, 1} {
		err := repo.Insert(ctx, &ChunkRecord{
			ID:         uuid.New().String(),
			DocumentID: docID,
			ChunkIndex: idx,
			Content:    fmt.Sprintf("chunk %d", idx),
		})
		if err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	chunks, err := repo.ListByDocument(ctx, docID)
	if err != nil {
		t.Fatalf("ListByDocument() error = %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("ListByDocument() = %d chunks, want 3", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.ChunkIndex != i {
			t.Errorf("chunk[%d].ChunkIndex = %d, want %d", i, chunk.ChunkIndex, i)
		}
		if chunk.Content != fmt.Sprintf("chunk %d", i) {
			t.Errorf("chunk[%d].Content = %q", i, chunk.Content)
		}
		if chunk.PageNumber != 0 {
			t.Errorf("chunk[%d].PageNumber = %d, want 0", i, chunk.PageNumber)
		}
	}
}

func TestChunkRepo_DuplicateIndexRejected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChunkRepo(db)

	userID := insertTestUser(t, db)
	docID := insertTestDocument(t, db, userID)

	first := &ChunkRecord{ID: uuid.New().String(), DocumentID: docID, ChunkIndex: 0, Content: "a"}
	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	dup := &ChunkRecord{ID: uuid.New().String(), DocumentID: docID, ChunkIndex: 0, Content: "b"}
	if err := repo.Insert(ctx, dup); err == nil {
		t.Error("Insert() with duplicate chunk_index should fail")
	}
}

func TestChunkRepo_DeleteByDocument(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChunkRepo(db)

	userID := insertTestUser(t, db)
	docID := insertTestDocument(t, db, userID)
	otherDocID := insertTestDocument(t, db, userID)

	for i := 0; i < 3; i++ {
		if err := repo.Insert(ctx, &ChunkRecord{ID: uuid.New().String(), DocumentID: docID, ChunkIndex: i, Content: "x"}); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	if err := repo.Insert(ctx, &ChunkRecord{ID: uuid.New().String(), DocumentID: otherDocID, ChunkIndex: 0, Content: "y"}); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := repo.DeleteByDocument(ctx, docID); err != nil {
		t.Fatalf("DeleteByDocument() error = %v", err)
	}

	count, err := repo.CountByDocument(ctx, docID)
	if err != nil {
		t.Fatalf("CountByDocument() error = %v", err)
	}
	if count != 0 {
		t.Errorf("CountByDocument() = %d after delete, want 0", count)
	}

	// Chunks of other documents are untouched.
	otherCount, err := repo.CountByDocument(ctx, otherDocID)
	if err != nil {
		t.Fatalf("CountByDocument() error = %v", err)
	}
	if otherCount != 1 {
		t.Errorf("CountByDocument(other) = %d, want 1", otherCount)
	}
}

func TestChunkRepo_ListEmpty(t *testing.T) {
	db := newTestDB(t)

	chunks, err := NewChunkRepo(db).ListByDocument(context.Background(), "missing")
	if err != nil {
		t.Fatalf("ListByDocument() error = %v", err)
	}
	if len(chunks) != 0 {
		t.Errorf("ListByDocument() = %d chunks for unknown document, want 0", len(chunks))
	}
}
