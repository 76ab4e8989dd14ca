// Package renderer builds markdown views of the transaction book. The CLI
// renders them to the terminal; the functions here only produce markdown
// text.
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/fintrack/fintrack"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// displayTimeLayout is how timestamps appear in listings. The book file
// keeps full ISO-8601; seconds add nothing to a console table.
const displayTimeLayout = "2006-01-02 15:04"

// Transactions renders a listing of transactions as a markdown table.
// Amounts are displayed in the given currency with an explicit sign.
func Transactions(txs []fintrack.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	doc.Table(transactionTable(txs, currency))
	doc.PlainText(fmt.Sprintf("%d transaction(s).", len(txs)))
	return doc.String()
}

// Category renders the transactions matching one category, with their
// subtotal.
func Category(category string, txs []fintrack.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Transactions in %q", category))
	if len(txs) == 0 {
		doc.PlainText(fmt.Sprintf("No transactions in category %q.", category))
		return doc.String()
	}

	doc.Table(transactionTable(txs, currency))

	subtotal := txs[0].Amount
	for _, tx := range txs[1:] {
		subtotal = subtotal.Add(tx.Amount)
	}
	doc.PlainText(fmt.Sprintf("Subtotal: %s over %d transaction(s).",
		fintrack.Format(subtotal, currency), len(txs)))
	return doc.String()
}

// Total renders the book total.
func Total(total decimal.Decimal, count int, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Total")
	doc.Table(md.TableSet{
		Header: []string{"Transactions", "Total Sum"},
		Rows: [][]string{
			{strconv.Itoa(count), md.Bold(fintrack.Format(total, currency))},
		},
	})
	return doc.String()
}

// Transaction renders a transaction to a one-line string, for confirmation
// messages.
func Transaction(tx fintrack.Transaction, currency string) string {
	return fmt.Sprintf("Recorded %s in %s (id %d)",
		fintrack.FormatSigned(tx.Amount, currency), tx.Category, tx.ID)
}

func transactionTable(txs []fintrack.Transaction, currency string) md.TableSet {
	table := md.TableSet{
		Header: []string{"ID", "Amount", "Category", "Date"},
	}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			strconv.FormatInt(tx.ID, 10),
			fintrack.FormatSigned(tx.Amount, currency),
			tx.Category,
			tx.Time.Format(displayTimeLayout),
		})
	}
	return table
}
