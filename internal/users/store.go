package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/yshashi/InterviewHelper-sub002/internal/db"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user not found")

// ErrDuplicate is returned when a username or email is already taken.
var ErrDuplicate = errors.New("username or email already in use")

// ErrBadCredentials is returned when authentication fails.
var ErrBadCredentials = errors.New("invalid username or password")

// Store provides user account persistence.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Create inserts a new user with the given plaintext password. The ID is
// generated when empty.
func (s *Store) Create(ctx context.Context, u User, password string) (*User, error) {
	if u.Username == "" || u.Email == "" {
		return nil, fmt.Errorf("username and email are required")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, username, email, password_hash)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Username, u.Email, string(hash),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	return s.GetByID(ctx, u.ID)
}

// GetByID retrieves a single user.
func (s *Store) GetByID(ctx context.Context, id string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, username, email, created_at, updated_at
		FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetByUsername retrieves a user by username.
func (s *Store) GetByUsername(ctx context.Context, username string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, username, email, created_at, updated_at
		FROM users WHERE username = ?`, username)
	return scanUser(row)
}

// Authenticate checks the password for the given username or email and
// returns the user on success.
func (s *Store) Authenticate(ctx context.Context, login, password string) (*User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, password_hash FROM users WHERE username = ? OR email = ?`,
		login, login)

	var id, hash string
	if err := row.Scan(&id, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBadCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrBadCredentials
	}

	return s.GetByID(ctx, id)
}

// Update applies the non-nil fields of params to the user and returns the
// updated record.
func (s *Store) Update(ctx context.Context, id string, params UpdateParams) (*User, error) {
	var (
		sets []string
		args []any
	)

	if params.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *params.Name)
	}
	if params.Username != nil {
		if *params.Username == "" {
			return nil, fmt.Errorf("username cannot be empty")
		}
		sets = append(sets, "username = ?")
		args = append(args, *params.Username)
	}
	if params.Email != nil {
		if *params.Email == "" {
			return nil, fmt.Errorf("email cannot be empty")
		}
		sets = append(sets, "email = ?")
		args = append(args, *params.Email)
	}

	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	sets = append(sets, "updated_at = datetime('now')")
	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("updating user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(ctx, id)
}

func scanUser(row *sql.Row) (*User, error) {
	var (
		u                    User
		createdAt, updatedAt string
	)
	err := row.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.CreatedAt = parseTime(createdAt)
	u.UpdatedAt = parseTime(updatedAt)
	return &u, nil
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(time.DateTime, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

// isUniqueViolation reports whether the error is a sqlite UNIQUE constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
