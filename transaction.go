package fintrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the timestamp format used in the book file: ISO-8601 local
// date-time, no timezone, no fractional seconds.
const TimeLayout = "2006-01-02T15:04:05"

// Transaction is a single recorded movement of money. Amounts are exact
// decimals and may be negative (expense) or positive (income). Identity is
// defined solely by ID; a transaction is never mutated after creation.
type Transaction struct {
	ID       int64
	Amount   decimal.Decimal
	Category string
	Time     time.Time
}

// NewTransaction builds a validated transaction. The category is trimmed;
// an empty category or a non-positive id is rejected.
func NewTransaction(id int64, amount decimal.Decimal, category string, at time.Time) (Transaction, error) {
	if id <= 0 {
		return Transaction{}, fmt.Errorf("transaction id must be positive, got %d", id)
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return Transaction{}, &ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	if at.IsZero() {
		return Transaction{}, &ValidationError{Field: "date", Reason: "cannot be zero"}
	}
	return Transaction{ID: id, Amount: amount, Category: category, Time: at}, nil
}

// Equal reports whether two transactions are the same transaction.
// Identity is the identifier only.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID
}

func (t Transaction) String() string {
	return fmt.Sprintf("transaction %d: %s %q on %s", t.ID, t.Amount, t.Category, t.Time.Format(TimeLayout))
}
