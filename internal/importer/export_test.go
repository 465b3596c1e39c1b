package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caelum-dev/caelum/internal/model"
)

func TestExportParser_Parse(t *testing.T) {
	f, err := os.Open("../../testdata/export.csv")
	require.NoError(t, err)
	defer f.Close()

	p := &ExportParser{}
	rows, err := p.Parse(f)
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, model.TransactionRow{
		Line:        2,
		ID:          "1",
		AccountType: "Visa",
		Timestamp:   "2024-01-05",
		Description: "Uber* Eats Toronto",
		Amount:      "-23.50",
	}, rows[0])
	assert.Equal(t, "50.00", rows[1].Amount)
	assert.Equal(t, 8, rows[6].Line)
}

func TestExportParser_ColumnOrder(t *testing.T) {
	csv := "amount,description,id,timestamp,account_type,extra\n-5.00,Coffee,9,2024-02-01,Amex,x\n"
	rows, err := (&ExportParser{}).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "9", rows[0].ID)
	assert.Equal(t, "Amex", rows[0].AccountType)
	assert.Equal(t, "Coffee", rows[0].Description)
	assert.Equal(t, "-5.00", rows[0].Amount)
}

func TestExportParser_ShortRow(t *testing.T) {
	csv := "id,account_type,timestamp,description,amount\n1,Visa,2024-01-05\n"
	rows, err := (&ExportParser{}).Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].ID)
	assert.Empty(t, rows[0].Description)
	assert.Empty(t, rows[0].Amount)
}

func TestExportParser_MissingColumn(t *testing.T) {
	csv := "id,account_type,description,amount\n1,Visa,x,-1\n"
	_, err := (&ExportParser{}).Parse(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing columns: timestamp")
}

func TestExportParser_Empty(t *testing.T) {
	rows, err := (&ExportParser{}).Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, rows)

	rows, err = (&ExportParser{}).Parse(strings.NewReader("id,account_type,timestamp,description,amount\n"))
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestExportParser_Format(t *testing.T) {
	assert.Equal(t, "export", (&ExportParser{}).Format())
}

const badQuoteExport = "id,account_type,timestamp,description,amount\n" +
	"1,Visa,2024-01-05,Uber* Eats Toronto,-23.50\n" +
	"2,Visa,2024-01-06,Joe\"s Bar,-5.00\n" +
	"3,Visa,2024-01-07,STEAM PURCHASE,-79.99\n"

func TestExportParser_UnreadableRowKept(t *testing.T) {
	rows, err := (&ExportParser{}).Parse(strings.NewReader(badQuoteExport))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "1", rows[0].ID)
	assert.Equal(t, model.TransactionRow{Line: 3}, rows[1])
	assert.Equal(t, "3", rows[2].ID)
	assert.Equal(t, 4, rows[2].Line)
}

func TestExportParser_Detect(t *testing.T) {
	p := &ExportParser{}
	assert.True(t, p.Detect([]string{"\ufeffid", "account_type", "timestamp", "description", "amount"}))
	assert.True(t, p.Detect([]string{"Amount", "Description", "ID", "Timestamp", "Account_Type", "memo"}))
	assert.False(t, p.Detect([]string{"Details", "Posting Date", "Description", "Amount"}))
}
