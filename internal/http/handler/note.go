package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"notesvc/internal/service"
)

type createNoteRequest struct {
	Content string `json:"content"`
}

// CreateNote handles POST /notes. Empty or whitespace-only content is a
// client error here; the page form treats the same condition as a no-op.
func CreateNote(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req createNoteRequest
		if err := c.BodyParser(&req); err != nil {
			// Malformed bodies surface through the global error handler.
			return err
		}

		note, err := svc.Create(c.UserContext(), req.Content)
		if err != nil {
			if errors.Is(err, service.ErrEmptyContent) {
				return writeError(c, fiber.StatusBadRequest, "Content cannot be empty")
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(note)
	}
}

// ListNotes handles GET /notes and returns all notes newest first.
// An empty store yields an empty JSON array.
func ListNotes(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(notes)
	}
}
