package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks studydeck/internal/storage DocumentStore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DocumentStore defines the interface for document storage operations.
type DocumentStore interface {
	// GetByUserAndFilename gets a document by owner and upload filename.
	// Returns nil and ErrNotFound if not found.
	GetByUserAndFilename(ctx context.Context, userID, filename string) (*DocumentRecord, error)
	// GetByID gets a document by ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*DocumentRecord, error)
	// Upsert inserts a new document or updates an existing one.
	Upsert(ctx context.Context, doc *DocumentRecord) error
	// ListByUser returns all documents owned by a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]*DocumentRecord, error)
	// Delete deletes a document and, via cascade, its chunks and flashcards.
	Delete(ctx context.Context, id string) error
}

// DocumentRepo provides methods for document operations.
// It implements the DocumentStore interface.
type DocumentRepo struct {
	db *sql.DB
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

// GetByUserAndFilename gets a document by owner and upload filename.
// Returns nil and ErrNotFound if not found.
func (r *DocumentRepo) GetByUserAndFilename(ctx context.Context, userID, filename string) (*DocumentRecord, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT id, user_id, filename, title, hash, created_at FROM documents WHERE user_id = ? AND filename = ?",
		userID, filename,
	))
}

// GetByID gets a document by ID. Returns ErrNotFound if not found.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*DocumentRecord, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		"SELECT id, user_id, filename, title, hash, created_at FROM documents WHERE id = ?",
		id,
	))
}

// Upsert inserts a new document or updates title and hash for an existing
// (user_id, filename) pair while preserving the ID.
func (r *DocumentRepo) Upsert(ctx context.Context, doc *DocumentRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO documents (id, user_id, filename, title, hash)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, filename) DO UPDATE SET
		 title = excluded.title, hash = excluded.hash`,
		doc.ID, doc.UserID, doc.Filename, doc.Title, doc.Hash,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// ListByUser returns all documents owned by a user, newest first.
// Returns an empty slice if the user has no documents (not an error).
func (r *DocumentRepo) ListByUser(ctx context.Context, userID string) ([]*DocumentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, filename, title, hash, created_at FROM documents WHERE user_id = ? ORDER BY created_at DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var docs []*DocumentRecord
	for rows.Next() {
		doc, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return docs, nil
}

// Delete deletes a document. Chunks, flashcards and quizzes cascade.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *DocumentRepo) scanOne(row *sql.Row) (*DocumentRecord, error) {
	doc, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return doc, err
}

func (r *DocumentRepo) scanRow(row rowScanner) (*DocumentRecord, error) {
	var doc DocumentRecord
	var createdAtStr string

	err := row.Scan(&doc.ID, &doc.UserID, &doc.Filename, &doc.Title, &doc.Hash, &createdAtStr)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan document: %w", err)
	}

	doc.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &doc, nil
}

// parseTimestamp parses a SQLite DATETIME value, trying the default
// CURRENT_TIMESTAMP format first and RFC3339 second.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
