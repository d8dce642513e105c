// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.
package repository

import (
	"context"

	"notesvc/internal/model"
)

// NoteRepository defines data access for notes using SQL queries only.
// No business logic here — strictly persistence operations.
type NoteRepository interface {
	// Insert stores a new note row with a parameterized statement.
	// The caller supplies Content and CreatedAt; the store assigns ID.
	// Returns the stored note including the assigned identifier.
	Insert(ctx context.Context, note *model.Note) (*model.Note, error)

	// List returns all notes ordered by id descending (newest first).
	// An empty table yields an empty slice, never an error.
	List(ctx context.Context) ([]model.Note, error)

	// Ping runs a trivial query (SELECT 1) to verify the store is reachable.
	Ping(ctx context.Context) error
}
