package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"notesvc/internal/service"
)

// NotesPage handles GET / and renders the note list, newest first.
func NotesPage(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return renderNotes(c, svc)
	}
}

// SubmitNote handles the page form POST. An empty submission is silently
// ignored and the current list rendered unchanged; this asymmetry with the
// JSON create path (which returns 400) is intentional and load-bearing.
// There is no redirect after write, so a browser refresh can resubmit the
// form and duplicate the note.
func SubmitNote(svc service.NoteService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		content := c.FormValue("content")

		if _, err := svc.Create(c.UserContext(), content); err != nil {
			if !errors.Is(err, service.ErrEmptyContent) {
				return err
			}
		}
		return renderNotes(c, svc)
	}
}

func renderNotes(c *fiber.Ctx, svc service.NoteService) error {
	notes, err := svc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("index", fiber.Map{
		"Notes": notes,
	})
}
