// Package main is the entry point for the todopanel demo.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"todopanel/internal/store"
	"todopanel/internal/todo"
	"todopanel/internal/tui"
)

var (
	version = "dev"
)

// sessionLister is implemented by backends that can enumerate the sessions
// they hold todos for.
type sessionLister interface {
	Sessions() ([]string, error)
}

func main() {
	// CLI flags.
	storeFlag := flag.String("store", "mem", "Todo storage backend: mem, file, or sqlite")
	dirFlag := flag.String("dir", "", "Directory for the file backend (default ~/.todopanel)")
	dbFlag := flag.String("db", "", "Database path for the sqlite backend (default ~/.todopanel/todos.db)")
	seedFlag := flag.Bool("seed", true, "Seed demo sessions with sample todos")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("todopanel %s\n", version)
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle Ctrl+C.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()

	st, cleanup, err := openStore(*storeFlag, *dirFlag, *dbFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if *seedFlag {
		if err := seedDemo(st); err != nil {
			fmt.Fprintf(os.Stderr, "Error: seeding demo sessions: %v\n", err)
			os.Exit(1)
		}
	}

	sessions, err := listSessions(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: listing sessions: %v\n", err)
		os.Exit(1)
	}

	app := tui.New(tui.AppConfig{
		Store:    st,
		Sessions: sessions,
		Version:  version,
	})
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore builds the selected storage backend. The returned cleanup is
// always safe to call.
func openStore(kind, dir, db string) (store.Store, func(), error) {
	noop := func() {}

	switch kind {
	case "mem":
		return store.NewMemStore(), noop, nil

	case "file":
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, noop, fmt.Errorf("getting home directory: %w", err)
			}
			dir = filepath.Join(home, ".todopanel")
		}
		return store.NewFileStore(dir), noop, nil

	case "sqlite":
		if db == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, noop, fmt.Errorf("getting home directory: %w", err)
			}
			if err := os.MkdirAll(filepath.Join(home, ".todopanel"), 0700); err != nil {
				return nil, noop, fmt.Errorf("creating data directory: %w", err)
			}
			db = filepath.Join(home, ".todopanel", "todos.db")
		}
		s, err := store.OpenSQLite(db)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { _ = s.Close() }, nil
	}

	return nil, noop, fmt.Errorf("unknown store backend %q (want mem, file, or sqlite)", kind)
}

// seedDemo writes a few sessions worth of sample todos.
func seedDemo(st store.Store) error {
	demos := map[string][]todo.Record{
		"planning": {
			{Title: "Write spec", Status: todo.StatusCompleted},
			{Title: "Review", Status: todo.StatusInProgress},
			{Title: "Schedule kickoff", Status: todo.StatusNotStarted},
		},
		"refactor": {
			{Title: "Extract storage interface", Status: todo.StatusCompleted},
			{Title: "Port callers", Status: todo.StatusNotStarted},
		},
		"scratch": {},
	}
	for id, items := range demos {
		if err := st.SetTodoList(id, items); err != nil {
			return err
		}
	}
	return nil
}

// listSessions asks the backend for its sessions where supported.
func listSessions(st store.Store) ([]string, error) {
	if l, ok := st.(sessionLister); ok {
		return l.Sessions()
	}
	return nil, nil
}
