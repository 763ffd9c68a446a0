package sqlite

import (
	"time"

	"github.com/zjrosen/quill/internal/sessions/domain"
)

// EditSessionModel represents the database row for the edit_sessions table.
// Fields map directly to SQL columns with Unix timestamps for time values.
type EditSessionModel struct {
	ID           int64
	GUID         string
	Path         string
	CursorOffset int
	CursorLine   int
	CursorColumn int
	Language     *string // nullable
	Theme        *string // nullable
	CreatedAt    int64   // Unix timestamp
	UpdatedAt    int64   // Unix timestamp
}

// toEditSessionModel converts a domain EditSession entity to a database model.
func toEditSessionModel(s *domain.EditSession) *EditSessionModel {
	m := &EditSessionModel{
		ID:           s.ID(),
		GUID:         s.GUID(),
		Path:         s.Path(),
		CursorOffset: s.Offset(),
		CursorLine:   s.Line(),
		CursorColumn: s.Column(),
		CreatedAt:    s.CreatedAt().Unix(),
		UpdatedAt:    s.UpdatedAt().Unix(),
	}
	if s.Language() != "" {
		language := s.Language()
		m.Language = &language
	}
	if s.Theme() != "" {
		theme := s.Theme()
		m.Theme = &theme
	}
	return m
}

// toDomain converts a database model to a domain EditSession entity.
func (m *EditSessionModel) toDomain() *domain.EditSession {
	var language, theme string
	if m.Language != nil {
		language = *m.Language
	}
	if m.Theme != nil {
		theme = *m.Theme
	}
	return domain.ReconstituteEditSession(
		m.ID,
		m.GUID,
		m.Path,
		m.CursorOffset,
		m.CursorLine,
		m.CursorColumn,
		language,
		theme,
		time.Unix(m.CreatedAt, 0),
		time.Unix(m.UpdatedAt, 0),
	)
}
