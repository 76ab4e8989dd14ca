package fintrack

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewTransactionValidation(t *testing.T) {
	at := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.Local)
	ten := decimal.RequireFromString("10")

	if _, err := NewTransaction(0, ten, "Food", at); err == nil {
		t.Error("NewTransaction with id 0 did not fail")
	}
	if _, err := NewTransaction(-3, ten, "Food", at); err == nil {
		t.Error("NewTransaction with a negative id did not fail")
	}
	if _, err := NewTransaction(1, ten, "  ", at); err == nil {
		t.Error("NewTransaction with a blank category did not fail")
	}
	if _, err := NewTransaction(1, ten, "Food", time.Time{}); err == nil {
		t.Error("NewTransaction with a zero time did not fail")
	}

	tx, err := NewTransaction(1, ten, "  Food  ", at)
	if err != nil {
		t.Fatalf("NewTransaction returned an unexpected error: %v", err)
	}
	if tx.Category != "Food" {
		t.Errorf("category was not trimmed: %q", tx.Category)
	}
}

func TestTransactionEqualIsIdentity(t *testing.T) {
	at := time.Date(2024, time.January, 15, 10, 30, 0, 0, time.Local)
	a := mustTransaction(t, 1, "10", "Food", at)
	b := mustTransaction(t, 1, "999", "Rent", at.Add(time.Hour))
	c := mustTransaction(t, 2, "10", "Food", at)

	if !a.Equal(b) {
		t.Error("transactions with the same id must be equal regardless of other fields")
	}
	if a.Equal(c) {
		t.Error("transactions with different ids must not be equal")
	}
}
