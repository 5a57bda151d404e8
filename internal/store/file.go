package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"todopanel/internal/todo"
)

const (
	todoFileSuffix  = ".todos.json"
	todoFilePattern = "*.todos.json"
)

// FileStore persists each session's todo list as a JSON file named
// <sessionID>.todos.json under a single directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the storage directory.
func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(sessionID string) string {
	return filepath.Join(s.dir, sessionID+todoFileSuffix)
}

// GetTodoList reads the session's list from disk. A missing file means an
// empty list; a malformed file is an error for the caller to surface.
func (s *FileStore) GetTodoList(sessionID string) ([]todo.Record, error) {
	data, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return []todo.Record{}, nil
		}
		return nil, fmt.Errorf("reading todo file: %w", err)
	}

	var items []todo.Record
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing todo file: %w", err)
	}
	return items, nil
}

// SetTodoList writes the session's list to disk, replacing any previous
// contents. It creates the directory if needed.
func (s *FileStore) SetTodoList(sessionID string, items []todo.Record) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("creating todo directory: %w", err)
	}

	if items == nil {
		items = []todo.Record{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling todo list: %w", err)
	}

	if err := os.WriteFile(s.path(sessionID), data, 0600); err != nil {
		return fmt.Errorf("writing todo file: %w", err)
	}
	return nil
}

// Sessions returns the session IDs that have a todo file on disk, sorted.
func (s *FileStore) Sessions() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading todo directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ok, err := doublestar.Match(todoFilePattern, entry.Name())
		if err != nil || !ok {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), todoFileSuffix))
	}

	sort.Strings(ids)
	return ids, nil
}
