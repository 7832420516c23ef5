package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"finbook/internal/log"
)

// Store persists whole record collections as snapshot files inside a
// single data directory. Every save rewrites the entire file for the
// collection; there is no locking and no atomic rename, so the directory
// must be exclusive to one running instance.
type Store struct {
	dir string
	log *log.Logger
}

// NewStore returns a store rooted at dir. The directory is created lazily
// on the first save.
func NewStore(dir string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Store{dir: dir, log: logger.WithComponent("store")}
}

// Dir returns the data directory the store writes to.
func (s *Store) Dir() string { return s.dir }

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".jsonl")
}

// SaveRecords rewrites the snapshot file for the named collection with the
// given records, creating the data directory if absent. A failure is logged
// and returned; callers keep their in-memory collection either way.
func SaveRecords[T any](s *Store, name string, recs []T) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		s.log.Error("could not create data directory", "dir", s.dir, "err", err)
		return fmt.Errorf("could not create data directory %q: %w", s.dir, err)
	}

	filePath := s.path(name)
	file, err := os.Create(filePath)
	if err != nil {
		s.log.Error("could not open snapshot for writing", "file", filePath, "err", err)
		return fmt.Errorf("error opening snapshot %q for writing: %w", filePath, err)
	}
	defer file.Close()

	if err := EncodeRecords(file, recs); err != nil {
		s.log.Error("could not write snapshot", "file", filePath, "err", err)
		return err
	}
	return nil
}

// LoadRecords reads the snapshot file for the named collection. A missing
// file yields an empty collection. An unreadable or undecodable file is
// logged and also yields an empty collection: the keeper starts fresh
// rather than refusing to run.
func LoadRecords[T any](s *Store, name string) []T {
	filePath := s.path(name)

	f, err := os.Open(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return make([]T, 0)
	}
	if err != nil {
		s.log.Warn("could not open snapshot, starting empty", "file", filePath, "err", err)
		return make([]T, 0)
	}
	defer f.Close()

	recs, err := DecodeRecords[T](f)
	if err != nil {
		s.log.Warn("could not decode snapshot, starting empty", "file", filePath, "err", err)
		return make([]T, 0)
	}
	return recs
}
