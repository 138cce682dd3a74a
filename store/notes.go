package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"secure-notes/models"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

type NoteStore struct {
	db *sql.DB
}

func NewNoteStore(db *sql.DB) *NoteStore {
	return &NoteStore{db: db}
}

// Create inserts a note for ownerID with created_at = updated_at.
func (s *NoteStore) Create(ctx context.Context, ownerID, title, content string) (string, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO notes (id, user_id, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, ownerID, title, content, now, now)
	if err != nil {
		return "", fmt.Errorf("insert note: %w", err)
	}
	return id, nil
}

// clampPaging treats pages below 1 as page 1 and clamps perPage to
// [1, MaxPerPage], with DefaultPerPage for zero or negative values.
func clampPaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// List returns ownerID's notes ordered by updated_at descending, sliced to
// the requested page.
func (s *NoteStore) List(ctx context.Context, ownerID string, page, perPage int) ([]models.Note, error) {
	page, perPage = clampPaging(page, perPage)

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, content, created_at, updated_at FROM notes WHERE user_id = ? ORDER BY updated_at DESC, id LIMIT ? OFFSET ?",
		ownerID, perPage, (page-1)*perPage)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		note.OwnerID = ownerID
		notes = append(notes, note)
	}
	return notes, rows.Err()
}

// Update changes only the provided fields and always refreshes updated_at.
// A note that does not exist or belongs to another owner is ErrNotFound
// either way.
func (s *NoteStore) Update(ctx context.Context, ownerID, noteID string, title, content *string) error {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM notes WHERE id = ? AND user_id = ?",
		noteID, ownerID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("select note: %w", err)
	}

	set := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if title != nil {
		set = append(set, "title = ?")
		args = append(args, *title)
	}
	if content != nil {
		set = append(set, "content = ?")
		args = append(args, *content)
	}
	args = append(args, noteID)

	_, err = s.db.ExecContext(ctx,
		"UPDATE notes SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}
	return nil
}

// Delete removes the note, with the same owned-or-missing fusion as Update.
func (s *NoteStore) Delete(ctx context.Context, ownerID, noteID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM notes WHERE id = ? AND user_id = ?", noteID, ownerID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
