package fintrack

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "transactions.csv"))
}

func TestStore_MissingFileIsEmpty(t *testing.T) {
	s := testStore(t)

	txs, err := s.All()
	if err != nil {
		t.Fatalf("All() on a missing file returned an error: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("All() on a missing file returned %d transactions", len(txs))
	}

	id, err := s.NextID()
	if err != nil {
		t.Fatalf("NextID() returned an error: %v", err)
	}
	if id != 1 {
		t.Errorf("NextID() on an empty store = %d, want 1", id)
	}
}

func TestStore_AddPersists(t *testing.T) {
	s := testStore(t)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)

	if err := s.Add(mustTransaction(t, 1, "10.50", "Groceries", at)); err != nil {
		t.Fatalf("Add() returned an error: %v", err)
	}
	if err := s.Add(mustTransaction(t, 2, "-3.25", "Transport", at)); err != nil {
		t.Fatalf("Add() returned an error: %v", err)
	}

	// A fresh store over the same file must see both transactions.
	reopened := NewStore(s.Path())
	txs, err := reopened.All()
	if err != nil {
		t.Fatalf("All() after reopening returned an error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("reopened store has %d transactions, want 2", len(txs))
	}
	if txs[0].ID != 1 || txs[1].ID != 2 {
		t.Errorf("reopened store has ids %d and %d, want 1 and 2", txs[0].ID, txs[1].ID)
	}

	// And its counter continues past the highest id.
	id, err := reopened.NextID()
	if err != nil {
		t.Fatalf("NextID() returned an error: %v", err)
	}
	if id != 3 {
		t.Errorf("NextID() after reload = %d, want 3", id)
	}
}

func TestStore_RemoveByIdentity(t *testing.T) {
	s := testStore(t)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	tx1 := mustTransaction(t, 1, "10.00", "Groceries", at)
	tx2 := mustTransaction(t, 2, "20.00", "Rent", at)
	if err := s.Add(tx1); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(tx2); err != nil {
		t.Fatal(err)
	}

	if err := s.Remove(tx1); err != nil {
		t.Fatalf("Remove() returned an error: %v", err)
	}
	txs, err := NewStore(s.Path()).All()
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].ID != 2 {
		t.Fatalf("after Remove the file holds %d transactions, want only id 2", len(txs))
	}

	// Removing an absent identifier is a no-op, not an error.
	if err := s.Remove(mustTransaction(t, 99, "1.00", "Ghost", at)); err != nil {
		t.Fatalf("Remove() of an absent id returned an error: %v", err)
	}
	txs, _ = s.All()
	if len(txs) != 1 {
		t.Fatalf("Remove() of an absent id changed the count to %d", len(txs))
	}
}

func TestStore_NextIDSkipsCollisions(t *testing.T) {
	s := testStore(t)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)

	// Manually assigned ids do not advance the counter; NextID must still
	// never return a value already present.
	if err := s.Add(mustTransaction(t, 1, "1.00", "A", at)); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(mustTransaction(t, 2, "1.00", "B", at)); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(mustTransaction(t, 3, "1.00", "C", at)); err != nil {
		t.Fatal(err)
	}

	id, err := s.NextID()
	if err != nil {
		t.Fatalf("NextID() returned an error: %v", err)
	}
	if id != 4 {
		t.Errorf("NextID() = %d, want 4", id)
	}
	if s.contains(id) {
		t.Errorf("NextID() returned an id already present: %d", id)
	}
}

func TestStore_NextIDAfterDeletionsNeverReuses(t *testing.T) {
	s := testStore(t)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 3; i++ {
		id, err := s.NextID()
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Add(mustTransaction(t, id, "1.00", "A", at)); err != nil {
			t.Fatal(err)
		}
	}
	// Free up id 1: the counter must not go backwards.
	tx, ok, err := s.FindByID(1)
	if err != nil || !ok {
		t.Fatalf("FindByID(1) = %v, %v", ok, err)
	}
	if err := s.Remove(tx); err != nil {
		t.Fatal(err)
	}

	id, err := s.NextID()
	if err != nil {
		t.Fatal(err)
	}
	if id != 4 {
		t.Errorf("NextID() after deleting id 1 = %d, want 4", id)
	}
}

func TestStore_FindByCategoryIsCaseInsensitive(t *testing.T) {
	s := testStore(t)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	if err := s.Add(mustTransaction(t, 1, "10.00", "Food", at)); err != nil {
		t.Fatal(err)
	}
	if err := s.Add(mustTransaction(t, 2, "5.00", "Foodtruck", at)); err != nil {
		t.Fatal(err)
	}

	for _, query := range []string{"food", "FOOD", " Food "} {
		matches, err := s.FindByCategory(query)
		if err != nil {
			t.Fatalf("FindByCategory(%q) returned an error: %v", query, err)
		}
		if len(matches) != 1 || matches[0].ID != 1 {
			t.Errorf("FindByCategory(%q) = %d matches, want exactly the %q transaction", query, len(matches), "Food")
		}
	}
}

func TestStore_AllReturnsACopy(t *testing.T) {
	s := testStore(t)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)
	if err := s.Add(mustTransaction(t, 1, "10.00", "Food", at)); err != nil {
		t.Fatal(err)
	}

	txs, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	txs[0].Category = "Tampered"
	txs[0].Amount = decimal.RequireFromString("999")

	again, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if again[0].Category != "Food" {
		t.Errorf("mutating the returned slice leaked into the store: category = %q", again[0].Category)
	}
}

func TestStore_LoadsOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	content := "id,amount,category,date\n1,10.00,Food,2024-01-15T10:30:00\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(path)
	if _, err := s.All(); err != nil {
		t.Fatal(err)
	}

	// External edits after the first load are not observed: the store
	// owns the file for its lifetime.
	if err := os.WriteFile(path, []byte(strings.Replace(content, "1,", "9,", 1)), 0644); err != nil {
		t.Fatal(err)
	}
	txs, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].ID != 1 {
		t.Fatalf("store reloaded the file; got id %d, want the originally loaded id 1", txs[0].ID)
	}
}

func TestStore_AddCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books", "2024", "transactions.csv")
	s := NewStore(path)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)

	if err := s.Add(mustTransaction(t, 1, "10.00", "Food", at)); err != nil {
		t.Fatalf("Add() with missing parent directories returned an error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("book file was not created: %v", err)
	}
}

func TestStore_UniquenessAfterAddsAndDeletes(t *testing.T) {
	s := testStore(t)
	at := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.Local)

	for i := 0; i < 5; i++ {
		id, err := s.NextID()
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Add(mustTransaction(t, id, "1.00", "A", at)); err != nil {
			t.Fatal(err)
		}
	}
	for _, id := range []int64{2, 4} {
		tx, ok, _ := s.FindByID(id)
		if !ok {
			t.Fatalf("FindByID(%d) did not find the transaction", id)
		}
		if err := s.Remove(tx); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 3; i++ {
		id, err := s.NextID()
		if err != nil {
			t.Fatal(err)
		}
		if err := s.Add(mustTransaction(t, id, "1.00", "B", at)); err != nil {
			t.Fatal(err)
		}
	}

	txs, err := s.All()
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[int64]bool)
	for _, tx := range txs {
		if seen[tx.ID] {
			t.Fatalf("duplicate identifier %d after adds and deletes", tx.ID)
		}
		seen[tx.ID] = true
	}
}
