package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"notesvc/internal/model"
	"notesvc/internal/repository"
)

// ErrEmptyContent is returned when the submitted content is empty or
// whitespace-only after trimming.
var ErrEmptyContent = errors.New("content cannot be empty")

var timeNow = time.Now

// NoteService defines the use cases for handling notes.
type NoteService interface {
	// Create trims the content, rejects empty submissions, stamps the
	// creation time and persists the note. Returns the stored note with
	// its assigned id.
	Create(ctx context.Context, content string) (*model.Note, error)

	// List returns all notes, newest first. Never returns a nil slice
	// on success.
	List(ctx context.Context) ([]model.Note, error)

	// Ping reports whether the store currently accepts a trivial query.
	Ping(ctx context.Context) error
}

// noteService is a concrete implementation of NoteService.
type noteService struct {
	repo repository.NoteRepository
}

// NewNoteService constructs a new NoteService.
func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) Create(ctx context.Context, content string) (*model.Note, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}

	note := &model.Note{
		Content: content,
		// Second precision matches the wire format of created_at.
		CreatedAt: timeNow().UTC().Truncate(time.Second),
	}
	return s.repo.Insert(ctx, note)
}

func (s *noteService) List(ctx context.Context) ([]model.Note, error) {
	notes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []model.Note{}
	}
	return notes, nil
}

func (s *noteService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
