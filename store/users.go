package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"secure-notes/models"
)

// dummyHash is compared against when the username does not exist, so a
// failed lookup costs the same bcrypt comparison as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password"), bcrypt.DefaultCost)

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

// Register hashes the password and inserts the user, returning the new
// user id. Usernames are unique; a collision returns ErrDuplicateUsername.
func (s *UserStore) Register(ctx context.Context, username, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO users (id, username, password_hash) VALUES (?, ?, ?)",
		id, username, hash)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return "", ErrDuplicateUsername
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

// Verify checks the password against the stored hash and returns the user
// id. Unknown username and wrong password both come back as ErrAuthFailed.
func (s *UserStore) Verify(ctx context.Context, username, password string) (string, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, password_hash FROM users WHERE username = ?",
		username).Scan(&user.ID, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", ErrAuthFailed
	}
	if err != nil {
		return "", fmt.Errorf("select user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrAuthFailed
	}

	return user.ID, nil
}
