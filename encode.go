package fintrack

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// bookHeader is the first line of every book file written by this package.
const bookHeader = "id,amount,category,date"

// timeLayoutFractional tolerates fractional seconds on read. They are never
// written back.
const timeLayoutFractional = "2006-01-02T15:04:05.999999999"

// DecodeBook reads transactions from a stream of comma-delimited records.
//
// The first non-blank line is always treated as the header and discarded,
// even when it is a data row: a book written without a header loses its
// first record. This is a deliberate property of the format, see the
// "format" documentation topic.
//
// A record that fails to parse (wrong field count, bad id, amount or date)
// is skipped with a logged warning and decoding continues with the
// remaining lines. Blank lines are ignored.
func DecodeBook(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)

	headerSeen := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !headerSeen {
			headerSeen = true
			continue
		}
		tx, err := parseRecord(line)
		if err != nil {
			logger.Warn().
				Int("line", lineNo).
				Str("record", line).
				Err(err).
				Msg("skipping malformed record")
			continue
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading book: %w", err)
	}
	return txs, nil
}

// EncodeBook writes the header line and one record per transaction, in the
// order given.
func EncodeBook(w io.Writer, txs []Transaction) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, bookHeader); err != nil {
		return fmt.Errorf("failed to write book header: %w", err)
	}
	for _, tx := range txs {
		if _, err := fmt.Fprintln(bw, formatRecord(tx)); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", tx.ID, err)
		}
	}
	return bw.Flush()
}

// parseRecord parses a single "id,amount,category,date" record.
func parseRecord(line string) (Transaction, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return Transaction{}, fmt.Errorf("expected 4 fields, got %d", len(parts))
	}

	id, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid id %q", parts[0])
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid amount %q", parts[1])
	}
	at, err := parseTime(strings.TrimSpace(parts[3]))
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid date %q", parts[3])
	}

	return NewTransaction(id, amount, parts[2], at)
}

// formatRecord renders a transaction as one book record. The category is
// written as-is: a category containing the delimiter corrupts its row, a
// documented limitation of the format.
func formatRecord(tx Transaction) string {
	return fmt.Sprintf("%d,%s,%s,%s", tx.ID, tx.Amount.String(), tx.Category, tx.Time.Format(TimeLayout))
}

// parseTime parses an ISO-8601 local date-time, interpreted in the local
// timezone since the format carries none.
func parseTime(s string) (time.Time, error) {
	at, err := time.ParseInLocation(TimeLayout, s, time.Local)
	if err == nil {
		return at, nil
	}
	return time.ParseInLocation(timeLayoutFractional, s, time.Local)
}
