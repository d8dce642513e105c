package model

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the wire format for note creation times on every
// surface: JSON responses and the rendered page.
const TimestampLayout = "2006-01-02 15:04:05"

// Note is the sole persisted entity: an id, free-text content, and a
// creation timestamp. Notes are immutable after creation.
// This is a pure domain model with no database-specific dependencies or tags.
type Note struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// MarshalJSON renders created_at with TimestampLayout instead of RFC 3339.
func (n Note) MarshalJSON() ([]byte, error) {
	type alias struct {
		ID        int64  `json:"id"`
		Content   string `json:"content"`
		CreatedAt string `json:"created_at"`
	}
	return json.Marshal(alias{
		ID:        n.ID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(TimestampLayout),
	})
}

// CreatedAtDisplay is used by the HTML template.
func (n Note) CreatedAtDisplay() string {
	return n.CreatedAt.Format(TimestampLayout)
}
