package postgres

import (
	"context"
	"database/sql"

	"notesvc/internal/model"
	"notesvc/internal/repository"
)

// NotePostgres is a PostgreSQL implementation of repository.NoteRepository.
// It uses database/sql with parameterized queries and contains no business logic.
// With the default config (zero idle connections) each call here dials a
// fresh connection and releases it before returning.
type NotePostgres struct {
	db *sql.DB
}

// NewNotePostgres creates a new NotePostgres repository.
func NewNotePostgres(db *sql.DB) *NotePostgres {
	return &NotePostgres{db: db}
}

var _ repository.NoteRepository = (*NotePostgres)(nil)

// Insert stores a new note row and returns the stored record with its id.
func (r *NotePostgres) Insert(ctx context.Context, note *model.Note) (*model.Note, error) {
	const q = `
		INSERT INTO notes (content, created_at)
		VALUES ($1, $2)
		RETURNING id, content, created_at
	`
	row := r.db.QueryRowContext(ctx, q, note.Content, note.CreatedAt)

	var out model.Note
	if err := row.Scan(&out.ID, &out.Content, &out.CreatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all notes, newest first.
func (r *NotePostgres) List(ctx context.Context) ([]model.Note, error) {
	const q = `
		SELECT id, content, created_at
		FROM notes
		ORDER BY id DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

// Ping verifies store liveness with a trivial query.
func (r *NotePostgres) Ping(ctx context.Context) error {
	const q = `SELECT 1`
	var one int
	return r.db.QueryRowContext(ctx, q).Scan(&one)
}
