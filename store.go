package expenses

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists the full expense sequence to a single local file.
//
// Every Load re-reads and every Save re-writes the whole file; there is no
// caching across calls. The file is not locked: concurrent writers are out
// of scope and the last writer wins.
type Store struct {
	path string
}

// NewStore creates a store persisting to the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the complete expense sequence from the file.
//
// A missing file is not an error: the first run starts with an empty ledger.
// Malformed content fails with an error wrapping ErrCorruptStore.
func (s *Store) Load() (*Ledger, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open expenses file %q: %w", s.path, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode expenses file %q: %w", s.path, err)
	}
	return ledger, nil
}

// Save writes the complete sequence, replacing prior content.
//
// The write is all-or-nothing: content goes to a temporary file in the same
// directory which is then atomically renamed over the target, so a failure
// never leaves a partial file behind.
func (s *Store) Save(ledger *Ledger) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for expenses file %q: %w", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("could not create temporary expenses file: %w", err)
	}

	if err := EncodeLedger(tmp, ledger); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not encode expenses file %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temporary expenses file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace expenses file %q: %w", s.path, err)
	}
	return nil
}
