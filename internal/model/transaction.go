package model

// TransactionRow is one raw CSV row, all fields as text.
type TransactionRow struct {
	Line        int // 1-based line in the source file
	ID          string
	AccountType string
	Timestamp   string
	Description string
	Amount      string // signed; negative = spend
}
