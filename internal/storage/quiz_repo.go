package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_quiz_store.go -package=mocks studydeck/internal/storage QuizStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// QuizStore defines the interface for quiz storage operations.
type QuizStore interface {
	// Insert inserts a quiz together with its questions in one transaction.
	// The quiz.ID and question IDs must be set (UUID) before calling.
	Insert(ctx context.Context, quiz *QuizRecord) error
	// GetByID gets a quiz with its questions. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*QuizRecord, error)
	// ListByDocument returns all quizzes for a document, newest first,
	// without their questions.
	ListByDocument(ctx context.Context, documentID string) ([]*QuizRecord, error)
}

// QuizRepo provides methods for quiz operations.
// It implements the QuizStore interface.
type QuizRepo struct {
	db *sql.DB
}

// NewQuizRepo creates a new QuizRepo.
func NewQuizRepo(db *sql.DB) *QuizRepo {
	return &QuizRepo{db: db}
}

// Insert inserts a quiz together with its questions in one transaction.
func (r *QuizRepo) Insert(ctx context.Context, quiz *QuizRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO quizzes (id, document_id, user_id, topic) VALUES (?, ?, ?, ?)",
		quiz.ID, quiz.DocumentID, quiz.UserID, quiz.Topic,
	)
	if err != nil {
		return fmt.Errorf("failed to insert quiz: %w", err)
	}

	for _, q := range quiz.Questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return fmt.Errorf("failed to marshal options: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO quiz_questions (id, quiz_id, question_index, prompt, options, answer_index, explanation) VALUES (?, ?, ?, ?, ?, ?, ?)",
			q.ID, quiz.ID, q.QuestionIndex, q.Prompt, string(options), q.AnswerIndex, q.Explanation,
		)
		if err != nil {
			return fmt.Errorf("failed to insert quiz question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit quiz: %w", err)
	}
	return nil
}

// GetByID gets a quiz with its questions. Returns ErrNotFound if not found.
func (r *QuizRepo) GetByID(ctx context.Context, id string) (*QuizRecord, error) {
	var quiz QuizRecord
	var createdAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, document_id, user_id, topic, created_at FROM quizzes WHERE id = ?",
		id,
	).Scan(&quiz.ID, &quiz.DocumentID, &quiz.UserID, &quiz.Topic, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz: %w", err)
	}

	quiz.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT id, quiz_id, question_index, prompt, options, answer_index, explanation FROM quiz_questions WHERE quiz_id = ? ORDER BY question_index",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz questions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	for rows.Next() {
		var q QuizQuestionRecord
		var optionsJSON string
		if err := rows.Scan(&q.ID, &q.QuizID, &q.QuestionIndex, &q.Prompt, &optionsJSON, &q.AnswerIndex, &q.Explanation); err != nil {
			return nil, fmt.Errorf("failed to scan quiz question: %w", err)
		}
		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal options: %w", err)
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return &quiz, nil
}

// ListByDocument returns all quizzes for a document, newest first,
// without their questions. Returns an empty slice if none exist.
func (r *QuizRepo) ListByDocument(ctx context.Context, documentID string) ([]*QuizRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, document_id, user_id, topic, created_at FROM quizzes WHERE document_id = ? ORDER BY created_at DESC",
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var quizzes []*QuizRecord
	for rows.Next() {
		var quiz QuizRecord
		var createdAtStr string
		if err := rows.Scan(&quiz.ID, &quiz.DocumentID, &quiz.UserID, &quiz.Topic, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan quiz: %w", err)
		}
		quiz.CreatedAt, err = parseTimestamp(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		quizzes = append(quizzes, &quiz)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return quizzes, nil
}
