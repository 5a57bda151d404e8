package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"todopanel/internal/todo"
)

// SQLiteStore persists todo lists for all sessions in one SQLite database.
// The position column preserves display order.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if necessary creates) the database at path and
// applies the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening todo database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS todos (
		session_id TEXT NOT NULL,
		position   INTEGER NOT NULL,
		title      TEXT NOT NULL,
		status     TEXT NOT NULL,
		PRIMARY KEY (session_id, position)
	)`)
	if err != nil {
		return fmt.Errorf("migrating todo schema: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetTodoList returns the session's todos in stored order, empty if none.
func (s *SQLiteStore) GetTodoList(sessionID string) ([]todo.Record, error) {
	rows, err := s.db.Query(
		`SELECT title, status FROM todos WHERE session_id = ? ORDER BY position`,
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying todos: %w", err)
	}
	defer rows.Close()

	items := []todo.Record{}
	for rows.Next() {
		var rec todo.Record
		if err := rows.Scan(&rec.Title, &rec.Status); err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading todo rows: %w", err)
	}
	return items, nil
}

// SetTodoList replaces the session's rows inside one transaction.
func (s *SQLiteStore) SetTodoList(sessionID string, items []todo.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning todo write: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Replace-all, matching the adapter's full-replace contract.
	if _, err := tx.Exec(`DELETE FROM todos WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("clearing todos: %w", err)
	}
	for i, rec := range items {
		if _, err := tx.Exec(
			`INSERT INTO todos(session_id, position, title, status) VALUES(?, ?, ?, ?)`,
			sessionID, i, rec.Title, string(rec.Status)); err != nil {
			return fmt.Errorf("inserting todo: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing todo write: %w", err)
	}
	return nil
}

// Sessions returns the session IDs with at least one stored todo, sorted.
func (s *SQLiteStore) Sessions() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT session_id FROM todos ORDER BY session_id`)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading session rows: %w", err)
	}
	return ids, nil
}
