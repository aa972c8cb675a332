package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_user_store.go -package=mocks studydeck/internal/storage UserStore

import (
	"context"
	"database/sql"
	"fmt"
)

// UserStore defines the interface for user storage operations.
type UserStore interface {
	// Insert inserts a new user. The user.ID must be set (UUID) before calling.
	Insert(ctx context.Context, user *UserRecord) error
	// GetByEmail gets a user by email. Returns ErrNotFound if not found.
	GetByEmail(ctx context.Context, email string) (*UserRecord, error)
	// GetByID gets a user by ID. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*UserRecord, error)
}

// UserRepo provides methods for user operations.
// It implements the UserStore interface.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Insert inserts a new user. The user.ID must be set (UUID) before calling.
func (r *UserRepo) Insert(ctx context.Context, user *UserRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash) VALUES (?, ?, ?)",
		user.ID, user.Email, user.PasswordHash,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByEmail gets a user by email. Returns ErrNotFound if not found.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*UserRecord, error) {
	return r.get(ctx, "SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email)
}

// GetByID gets a user by ID. Returns ErrNotFound if not found.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*UserRecord, error) {
	return r.get(ctx, "SELECT id, email, password_hash, created_at FROM users WHERE id = ?", id)
}

func (r *UserRepo) get(ctx context.Context, query string, arg any) (*UserRecord, error) {
	var user UserRecord
	var createdAtStr string

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	user.CreatedAt, err = parseTimestamp(createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &user, nil
}
