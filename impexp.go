package fintrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to merge into a book.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jtransaction is the readable shape of one exported transaction.
type jtransaction struct {
	ID       int64           `json:"id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// ExportBook writes transactions to w in the import/export format: a JSONL
// stream with one JSON object per transaction, in book order.
func ExportBook(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		data, err := json.Marshal(jtransaction{
			ID:       tx.ID,
			Amount:   tx.Amount,
			Category: tx.Category,
			Date:     tx.Time.Format(TimeLayout),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal transaction %d: %w", tx.ID, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", tx.ID, err)
		}
	}
	return nil
}

// ImportBook parses transactions from r in the import/export format.
// Blank lines are skipped. Unlike the book decoder, a malformed line
// aborts the import: imported data is new input, not a previously written
// book to salvage.
//
// A transaction may omit its id (or carry 0); the caller assigns a fresh
// one when adding it to a store.
func ImportBook(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var jt jtransaction
		if err := json.Unmarshal([]byte(line), &jt); err != nil {
			return nil, fmt.Errorf("cannot parse line for import format: %q: %w", line, err)
		}
		at, err := parseTime(jt.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in line %q", jt.Date, line)
		}
		category := strings.TrimSpace(jt.Category)
		if category == "" {
			return nil, fmt.Errorf("empty category in line %q", line)
		}
		if jt.ID < 0 {
			return nil, fmt.Errorf("negative id in line %q", line)
		}
		txs = append(txs, Transaction{ID: jt.ID, Amount: jt.Amount, Category: category, Time: at})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading import stream: %w", err)
	}
	return txs, nil
}
