package importer

import (
	"context"
	"errors"

	"github.com/caelum-dev/caelum/internal/logger"
	"github.com/caelum-dev/caelum/internal/model"
)

// Classifier assigns a category to an expense.
type Classifier interface {
	Classify(e *model.Expense) bool
}

// Result is the outcome of one driver run.
type Result struct {
	Expenses      []model.Expense // accepted rows, in input order
	Skipped       []*model.RowError
	Uncategorized int
}

// Driver turns raw rows into classified expenses.
type Driver struct {
	classifier Classifier
	layouts    []string
}

// NewDriver creates a Driver. Nil layouts means model.DefaultDateLayouts.
func NewDriver(classifier Classifier, layouts []string) *Driver {
	return &Driver{classifier: classifier, layouts: layouts}
}

// Run builds an expense from every row, then classifies the accepted ones in
// row order. Rejected rows are logged and reported, never fatal.
func (d *Driver) Run(ctx context.Context, rows []model.TransactionRow) Result {
	log := logger.FromContext(ctx)
	var res Result

	for _, row := range rows {
		e, err := model.NewExpense(row, d.layouts)
		if err != nil {
			var rowErr *model.RowError
			if !errors.As(err, &rowErr) {
				rowErr = &model.RowError{RowID: row.ID, Line: row.Line, Err: err}
			}
			res.Skipped = append(res.Skipped, rowErr)

			ev := log.Info().Str("row_id", row.ID).Int("line", row.Line)
			if errors.Is(err, model.ErrPositiveAmount) {
				ev.Str("amount", row.Amount).Msg("Positive amount, considered a payment to the card and not processed")
			} else {
				ev.Err(rowErr.Err).Msg("Malformed row skipped")
			}
			continue
		}
		res.Expenses = append(res.Expenses, e)
	}

	for i := range res.Expenses {
		e := &res.Expenses[i]
		if !d.classifier.Classify(e) {
			res.Uncategorized++
		}
		log.Debug().
			Str("row_id", e.RowID).
			Str("category", string(e.Category)).
			Str("amount", e.Amount.StringFixed(2)).
			Msg(e.Name)
	}

	return res
}
