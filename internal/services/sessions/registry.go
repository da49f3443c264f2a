// Package sessions owns the per-session datastore registry. Every
// session gets its own SQLite file under the data directory; the rest
// of the application only ever sees an already-resolved handle.
package sessions

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/google/uuid"
	"github.com/showquotes/transcript-api/internal/database"
)

// Common errors
var (
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrSessionNotFound  = errors.New("session not found")
)

// Session ids are path components, so only a conservative token shape
// is accepted. Generated ids are UUIDs and always conform.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

type handle struct {
	db *database.DB
	// importMu serializes imports per session: at most one ingestion
	// unit of work is active against a session's dataset at a time.
	// Reads are not serialized here; they rely on SQLite's isolation.
	importMu sync.Mutex
}

// Registry maps session ids to isolated dataset handles, creating them
// on first use and caching them for the session's lifetime.
type Registry struct {
	dataDir string
	opts    database.Options

	mu      sync.Mutex
	handles map[string]*handle
}

// NewRegistry creates a registry rooted at dataDir, creating the
// directory if needed.
func NewRegistry(dataDir string, opts database.Options) (*Registry, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating session data directory: %w", err)
	}
	return &Registry{
		dataDir: dataDir,
		opts:    opts,
		handles: make(map[string]*handle),
	}, nil
}

// Reset discards every session dataset, including files left behind by
// a previous run. Called at startup: session datasets do not outlive
// the server.
func (r *Registry) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, h := range r.handles {
		if err := h.db.Close(); err != nil {
			log.Printf("[WARN] closing session %s: %v", id, err)
		}
	}
	r.handles = make(map[string]*handle)

	if err := os.RemoveAll(r.dataDir); err != nil {
		return fmt.Errorf("removing session data directory: %w", err)
	}
	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return fmt.Errorf("recreating session data directory: %w", err)
	}
	return nil
}

// NewSession allocates a fresh session with a generated id and an
// empty, migrated dataset.
func (r *Registry) NewSession() (string, error) {
	id := uuid.NewString()
	if _, err := r.get(id); err != nil {
		return "", err
	}
	return id, nil
}

// Get returns the dataset handle for a session id, opening and
// migrating the database on first use.
func (r *Registry) Get(id string) (*database.DB, error) {
	h, err := r.get(id)
	if err != nil {
		return nil, err
	}
	return h.db, nil
}

func (r *Registry) get(id string) (*handle, error) {
	if !sessionIDPattern.MatchString(id) {
		return nil, ErrInvalidSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.handles[id]; ok {
		return h, nil
	}

	db, err := database.Open(r.dbPath(id), r.opts)
	if err != nil {
		return nil, fmt.Errorf("opening session database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrating session database: %w", err)
	}

	h := &handle{db: db}
	r.handles[id] = h
	log.Printf("Session %s: dataset ready at %s", id, r.dbPath(id))
	return h, nil
}

// WithImportLock runs fn while holding the session's import lock, so
// two uploads for the same session never interleave their writes.
func (r *Registry) WithImportLock(id string, fn func(db *database.DB) error) error {
	h, err := r.get(id)
	if err != nil {
		return err
	}

	h.importMu.Lock()
	defer h.importMu.Unlock()
	return fn(h.db)
}

// Teardown closes and deletes one session's dataset.
func (r *Registry) Teardown(id string) error {
	if !sessionIDPattern.MatchString(id) {
		return ErrInvalidSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.handles[id]
	if !ok {
		return ErrSessionNotFound
	}
	delete(r.handles, id)

	if err := h.db.Close(); err != nil {
		return fmt.Errorf("closing session database: %w", err)
	}
	if err := os.Remove(r.dbPath(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session database: %w", err)
	}
	return nil
}

// Close closes every open handle without deleting the files.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	for id, h := range r.handles {
		if err := h.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing session %s: %w", id, err)
		}
	}
	r.handles = make(map[string]*handle)
	return firstErr
}

func (r *Registry) dbPath(id string) string {
	return filepath.Join(r.dataDir, id+".sqlite")
}
