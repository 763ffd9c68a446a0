// Package domain provides the pure domain layer for edit sessions with no
// infrastructure dependencies.
//
// An edit session remembers where the user left off in a file: the cursor
// position, the highlight language, and the theme in use. The domain layer
// has no knowledge of infrastructure concerns (databases, file I/O, etc.).
package domain

import "time"

// EditSession represents a remembered editing position for one file.
// All fields are unexported to enforce encapsulation; use the constructor
// and getter methods to access data.
type EditSession struct {
	id   int64
	guid string
	path string

	// Cursor position at last save
	offset int
	line   int
	column int

	language string
	theme    string

	createdAt time.Time
	updatedAt time.Time
}

// NewEditSession creates a new EditSession for a file path.
// The createdAt and updatedAt timestamps are set to the current time.
// The ID is left as zero; it will be assigned by the persistence layer.
func NewEditSession(guid, path string) *EditSession {
	now := time.Now()
	return &EditSession{
		guid:      guid,
		path:      path,
		createdAt: now,
		updatedAt: now,
	}
}

// ReconstituteEditSession creates an EditSession from existing data,
// typically when hydrating from the database.
func ReconstituteEditSession(
	id int64,
	guid, path string,
	offset, line, column int,
	language, theme string,
	createdAt, updatedAt time.Time,
) *EditSession {
	return &EditSession{
		id:        id,
		guid:      guid,
		path:      path,
		offset:    offset,
		line:      line,
		column:    column,
		language:  language,
		theme:     theme,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the database identifier for this session.
// Returns 0 for newly created sessions that haven't been persisted.
func (s *EditSession) ID() int64 {
	return s.id
}

// GUID returns the globally unique identifier for this session.
func (s *EditSession) GUID() string {
	return s.guid
}

// Path returns the absolute file path this session belongs to.
func (s *EditSession) Path() string {
	return s.path
}

// Offset returns the cursor's rune offset at last save.
func (s *EditSession) Offset() int {
	return s.offset
}

// Line returns the cursor's zero-based line at last save.
func (s *EditSession) Line() int {
	return s.line
}

// Column returns the cursor's zero-based column at last save.
func (s *EditSession) Column() int {
	return s.column
}

// Language returns the highlight language tag in use, if recorded.
func (s *EditSession) Language() string {
	return s.language
}

// Theme returns the theme preset name in use, if recorded.
func (s *EditSession) Theme() string {
	return s.theme
}

// CreatedAt returns when this session was created.
func (s *EditSession) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns when this session was last updated.
func (s *EditSession) UpdatedAt() time.Time {
	return s.updatedAt
}

// SetCursor records the cursor position.
func (s *EditSession) SetCursor(offset, line, column int) {
	s.offset = offset
	s.line = line
	s.column = column
	s.updatedAt = time.Now()
}

// SetLanguage records the highlight language in use.
func (s *EditSession) SetLanguage(language string) {
	s.language = language
	s.updatedAt = time.Now()
}

// SetTheme records the theme preset in use.
func (s *EditSession) SetTheme(theme string) {
	s.theme = theme
	s.updatedAt = time.Now()
}

// SetID sets the database identifier for this session.
// This is typically called by the persistence layer after inserting a new session.
func (s *EditSession) SetID(id int64) {
	s.id = id
}
