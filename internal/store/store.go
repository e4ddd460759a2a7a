// Package store persists the high score between sessions.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrNoHighScore is returned by Load when nothing has been saved yet.
var ErrNoHighScore = errors.New("no high score recorded")

// HighScoreStore loads and saves the best score.
type HighScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// record is the on-disk shape of the high score file.
type record struct {
	Score   int       `msgpack:"score"`
	SavedAt time.Time `msgpack:"saved_at"`
}

// FileStore keeps the high score in a single msgpack file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The file is created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the stored high score.
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, ErrNoHighScore
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}

	var rec record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode high score %q: %w", s.path, err)
	}
	return rec.Score, nil
}

// Save writes score if it beats what is already stored.
func (s *FileStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if data, err := os.ReadFile(s.path); err == nil {
		var prev record
		if msgpack.Unmarshal(data, &prev) == nil && prev.Score >= score {
			return nil
		}
	}

	data, err := msgpack.Marshal(record{Score: score, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if err := atomicWriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// atomicWriteFile writes data to a temp file next to filename and renames it
// into place.
func atomicWriteFile(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-highscore-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	var success bool
	defer func() {
		if !success {
			if err := os.Remove(tmp.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
				log.Warn("failed to remove temporary file", "path", tmp.Name(), "err", err)
			}
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file %q: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	success = true
	return nil
}

// Memory is an in-process store, used when no file is configured and in tests.
type Memory struct {
	mu    sync.Mutex
	score int
	set   bool
	Saves int // Number of Save calls that changed the score
}

// Load returns the best score saved so far.
func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return 0, ErrNoHighScore
	}
	return m.score, nil
}

// Save keeps score if it is a new best.
func (m *Memory) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.set && m.score >= score {
		return nil
	}
	m.score = score
	m.set = true
	m.Saves++
	return nil
}
