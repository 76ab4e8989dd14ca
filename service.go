package fintrack

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Service is the façade between the interactive layer and the store. It
// validates caller input before touching the store, so a validation
// failure never mutates any state.
type Service struct {
	store *Store
	now   func() time.Time
}

// NewService creates a service over the given store.
func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// ParseAmount converts raw console input into an exact decimal amount.
// Empty input (the amount must be present) or input that is not a decimal
// number yields a ValidationError.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: "is required"}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Field: "amount", Reason: fmt.Sprintf("%q is not a decimal number", s)}
	}
	return d, nil
}

// AddTransaction records a new transaction: it validates the category,
// allocates an identifier, stamps the current date-time and persists the
// result. The created transaction is returned.
func (s *Service) AddTransaction(amount decimal.Decimal, category string) (Transaction, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return Transaction{}, &ValidationError{Field: "category", Reason: "cannot be empty"}
	}

	id, err := s.store.NextID()
	if err != nil {
		return Transaction{}, err
	}
	tx, err := NewTransaction(id, amount, category, s.now())
	if err != nil {
		return Transaction{}, err
	}
	if err := s.store.Add(tx); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// GetAllTransactions returns a copy of all transactions in store order.
func (s *Service) GetAllTransactions() ([]Transaction, error) {
	return s.store.All()
}

// GetTotalSum returns the exact sum of all amounts, zero when the book is
// empty.
func (s *Service) GetTotalSum() (decimal.Decimal, error) {
	txs, err := s.store.All()
	if err != nil {
		return decimal.Decimal{}, err
	}
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum, nil
}

// GetTransactionsByCategory returns all transactions matching the category,
// case-insensitively. An empty category is a ValidationError.
func (s *Service) GetTransactionsByCategory(category string) ([]Transaction, error) {
	if strings.TrimSpace(category) == "" {
		return nil, &ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	return s.store.FindByCategory(category)
}

// DeleteTransaction removes the transaction with the given identifier and
// persists the removal. A non-positive identifier is a ValidationError;
// an unknown one is a NotFoundError. Both leave the book unchanged.
func (s *Service) DeleteTransaction(id int64) error {
	if id <= 0 {
		return &ValidationError{Field: "id", Reason: "must be a positive integer"}
	}
	tx, ok, err := s.store.FindByID(id)
	if err != nil {
		return err
	}
	if !ok {
		return &NotFoundError{ID: id}
	}
	return s.store.Remove(tx)
}
