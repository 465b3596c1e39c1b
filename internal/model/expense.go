package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrPositiveAmount marks a payment, credit or refund row. These are left
	// for manual entry.
	ErrPositiveAmount = errors.New("non-negative amount")
	// ErrMalformedRow marks a row with a missing or unparseable field.
	ErrMalformedRow = errors.New("malformed row")
)

// RowError explains why a row did not produce an Expense.
type RowError struct {
	RowID string
	Line  int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %q (line %d): %v", e.RowID, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// DefaultDateLayouts are tried in order when parsing a row timestamp.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
}

// Expense is money spent on one card transaction.
type Expense struct {
	RowID       string
	Name        string
	Amount      decimal.Decimal // always positive
	Date        time.Time
	Institution string
	Category    Category // CategoryNone until classified
	Icon        string
}

// NewExpense validates a raw row and converts it to an Expense.
// Source rows encode spend as a negative amount; the sign is flipped here.
func NewExpense(row TransactionRow, layouts []string) (Expense, error) {
	reject := func(err error) (Expense, error) {
		return Expense{}, &RowError{RowID: row.ID, Line: row.Line, Err: err}
	}

	for _, f := range []struct{ name, value string }{
		{"account_type", row.AccountType},
		{"timestamp", row.Timestamp},
		{"description", row.Description},
		{"amount", row.Amount},
	} {
		if strings.TrimSpace(f.value) == "" {
			return reject(fmt.Errorf("%w: missing %s", ErrMalformedRow, f.name))
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
	if err != nil {
		return reject(fmt.Errorf("%w: parsing amount %q: %v", ErrMalformedRow, row.Amount, err))
	}
	if !amount.IsNegative() {
		return reject(fmt.Errorf("%w: %s", ErrPositiveAmount, amount.String()))
	}

	date, err := parseDate(strings.TrimSpace(row.Timestamp), layouts)
	if err != nil {
		return reject(fmt.Errorf("%w: %v", ErrMalformedRow, err))
	}

	return Expense{
		RowID:       row.ID,
		Name:        row.Description,
		Amount:      amount.Neg(),
		Date:        date,
		Institution: strings.TrimSpace(row.AccountType),
	}, nil
}

func parseDate(value string, layouts []string) (time.Time, error) {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q: no layout matched", value)
}

// Tag sets the category and its icon. A later call overwrites an earlier one.
func (e *Expense) Tag(c Category, icon string) {
	e.Category = c
	e.Icon = icon
}

// Month returns the English month name of the transaction date.
func (e Expense) Month() string {
	return e.Date.Month().String()
}

func (e Expense) String() string {
	return fmt.Sprintf("Name: %s | Amount: %s | Date: %s | FI: %s | Tag: %s | Icon: %s",
		e.Name, e.Amount.StringFixed(2), e.Date.Format("2006-01-02"), e.Institution, e.Category, e.Icon)
}
