package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/quill/internal/sessions/domain"
)

// sessionColumns is the list of columns to select for session queries.
const sessionColumns = `id, guid, path, cursor_offset, cursor_line, cursor_column,
	language, theme, created_at, updated_at`

// editSessionRepository implements domain.EditSessionRepository using SQLite.
type editSessionRepository struct {
	db *sql.DB
}

// newEditSessionRepository creates a new editSessionRepository instance.
func newEditSessionRepository(db *sql.DB) *editSessionRepository {
	return &editSessionRepository{db: db}
}

// Ensure editSessionRepository implements domain.EditSessionRepository.
var _ domain.EditSessionRepository = (*editSessionRepository)(nil)

// scanSession scans a row into an EditSessionModel.
func scanSession(scanner interface{ Scan(...any) error }) (*EditSessionModel, error) {
	var model EditSessionModel
	err := scanner.Scan(
		&model.ID, &model.GUID, &model.Path,
		&model.CursorOffset, &model.CursorLine, &model.CursorColumn,
		&model.Language, &model.Theme,
		&model.CreatedAt, &model.UpdatedAt,
	)
	return &model, err
}

// Save persists a session to the database.
// For new sessions (ID == 0), inserts a new row and sets the session ID.
// For existing sessions (ID > 0), updates the existing row.
func (r *editSessionRepository) Save(session *domain.EditSession) error {
	model := toEditSessionModel(session)

	if session.ID() == 0 {
		result, err := r.db.Exec(
			`INSERT INTO edit_sessions (
				guid, path, cursor_offset, cursor_line, cursor_column,
				language, theme, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			model.GUID, model.Path,
			model.CursorOffset, model.CursorLine, model.CursorColumn,
			model.Language, model.Theme,
			model.CreatedAt, model.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert edit session: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get last insert id: %w", err)
		}
		session.SetID(id)
		return nil
	}

	_, err := r.db.Exec(
		`UPDATE edit_sessions SET
			cursor_offset = ?, cursor_line = ?, cursor_column = ?,
			language = ?, theme = ?, updated_at = ?
		WHERE id = ?`,
		model.CursorOffset, model.CursorLine, model.CursorColumn,
		model.Language, model.Theme, model.UpdatedAt,
		model.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update edit session: %w", err)
	}
	return nil
}

// FindByPath retrieves the session for a file path.
// Returns EditSessionNotFoundError if no matching session exists.
func (r *editSessionRepository) FindByPath(path string) (*domain.EditSession, error) {
	row := r.db.QueryRow(
		`SELECT `+sessionColumns+` FROM edit_sessions WHERE path = ?`,
		path,
	)
	model, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.EditSessionNotFoundError{Path: path}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find edit session by path: %w", err)
	}
	return model.toDomain(), nil
}

// Delete removes the session for a file path.
// Returns EditSessionNotFoundError if no matching session exists.
func (r *editSessionRepository) Delete(path string) error {
	result, err := r.db.Exec(
		`DELETE FROM edit_sessions WHERE path = ?`,
		path,
	)
	if err != nil {
		return fmt.Errorf("failed to delete edit session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return &domain.EditSessionNotFoundError{Path: path}
	}
	return nil
}

// ListRecent retrieves sessions matching the given filter criteria.
// Results are ordered by updated_at descending (most recent first).
func (r *editSessionRepository) ListRecent(filter domain.ListFilter) ([]*domain.EditSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM edit_sessions`
	var args []any

	if filter.Language != "" {
		query += ` WHERE language = ?`
		args = append(args, filter.Language)
	}

	query += ` ORDER BY updated_at DESC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list edit sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []*domain.EditSession
	for rows.Next() {
		model, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edit session row: %w", err)
		}
		sessions = append(sessions, model.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating edit session rows: %w", err)
	}

	return sessions, nil
}

// Close releases any resources held by the repository.
// This is a no-op because the connection is owned by the DB struct.
func (r *editSessionRepository) Close() error {
	return nil
}
