package fintrack

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Store is the single source of truth for recorded transactions, backed by
// a comma-delimited book file. The file is read lazily on first access and
// rewritten in full, synchronously, on every mutation.
//
// Store exclusively owns both the in-memory sequence and the file; no other
// component mutates either directly. It is not safe for concurrent use:
// the tool is single-threaded and the file has a single writer by design.
type Store struct {
	path   string
	txs    []Transaction
	loaded bool
	nextID int64
}

// NewStore creates a store backed by the book file at path. The file is
// not touched until the first operation.
func NewStore(path string) *Store {
	return &Store{path: path, nextID: 1}
}

// Path returns the backing book file path.
func (s *Store) Path() string { return s.path }

// loadIfNeeded reads the book file into memory on the first call only.
// A missing file is not an error: the store starts empty. After loading,
// the id counter is set past the highest identifier present.
func (s *Store) loadIfNeeded() error {
	if s.loaded {
		return nil
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug().Str("file", s.path).Msg("book file does not exist, starting empty")
		s.txs = nil
		s.nextID = 1
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open book file %q: %w", s.path, err)
	}
	defer f.Close()

	txs, err := DecodeBook(f)
	if err != nil {
		return fmt.Errorf("could not decode book file %q: %w", s.path, err)
	}
	s.txs = txs
	s.nextID = 1
	for _, tx := range txs {
		if tx.ID >= s.nextID {
			s.nextID = tx.ID + 1
		}
	}
	s.loaded = true
	return nil
}

// save rewrites the whole book file from the in-memory sequence, creating
// missing parent directories. There is no atomic-rename safeguard: a crash
// mid-write can truncate the file, an accepted tradeoff for this scope.
func (s *Store) save() error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for book %q: %w", s.path, err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error opening book file %q for writing: %w", s.path, err)
	}
	if err := EncodeBook(f, s.txs); err != nil {
		f.Close()
		return fmt.Errorf("error writing book file %q: %w", s.path, err)
	}
	return f.Close()
}

// All returns a copy of the full sequence, in insertion/load order.
func (s *Store) All() ([]Transaction, error) {
	if err := s.loadIfNeeded(); err != nil {
		return nil, err
	}
	return slices.Clone(s.txs), nil
}

// Add appends a transaction and rewrites the book file. On a write error
// the in-memory sequence keeps the appended transaction but the file does
// not reflect it; the caller must treat the addition as unsaved.
func (s *Store) Add(tx Transaction) error {
	if err := s.loadIfNeeded(); err != nil {
		return err
	}
	s.txs = append(s.txs, tx)
	return s.save()
}

// Remove removes the first transaction whose identifier matches and
// rewrites the book file. Removing an absent identifier is a no-op, not an
// error; callers check existence beforehand.
func (s *Store) Remove(tx Transaction) error {
	if err := s.loadIfNeeded(); err != nil {
		return err
	}
	for i := range s.txs {
		if s.txs[i].Equal(tx) {
			s.txs = slices.Delete(s.txs, i, i+1)
			break
		}
	}
	return s.save()
}

// FindByID returns the first transaction with the given identifier, and
// whether one exists.
func (s *Store) FindByID(id int64) (Transaction, bool, error) {
	if err := s.loadIfNeeded(); err != nil {
		return Transaction{}, false, err
	}
	for _, tx := range s.txs {
		if tx.ID == id {
			return tx, true, nil
		}
	}
	return Transaction{}, false, nil
}

// FindByCategory returns all transactions whose category matches, in store
// order. The match is case-insensitive and exact against the trimmed
// category, not a substring search.
func (s *Store) FindByCategory(category string) ([]Transaction, error) {
	if err := s.loadIfNeeded(); err != nil {
		return nil, err
	}
	want := strings.TrimSpace(category)
	var matches []Transaction
	for _, tx := range s.txs {
		if strings.EqualFold(tx.Category, want) {
			matches = append(matches, tx)
		}
	}
	return matches, nil
}

// NextID returns the current counter value and advances it. The returned
// value is re-checked against every present identifier: ids loaded out of
// monotonic order or assigned manually never collide with a fresh one.
func (s *Store) NextID() (int64, error) {
	if err := s.loadIfNeeded(); err != nil {
		return 0, err
	}
	for {
		id := s.nextID
		s.nextID++
		if !s.contains(id) {
			return id, nil
		}
	}
}

// Rewrite reloads the book if needed and writes it back in canonical form.
// Rows that could not be parsed at load time are dropped from the file.
// It returns the number of transactions kept.
func (s *Store) Rewrite() (int, error) {
	if err := s.loadIfNeeded(); err != nil {
		return 0, err
	}
	if err := s.save(); err != nil {
		return 0, err
	}
	return len(s.txs), nil
}

func (s *Store) contains(id int64) bool {
	return slices.ContainsFunc(s.txs, func(tx Transaction) bool { return tx.ID == id })
}
