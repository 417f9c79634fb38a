package cashflow

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// transactions is the expected content of the fixtures below.
var transactions = Records{
	{Date: "05-Jan-2021", Amount: decimal.RequireFromString("1000"), Line: 2},
	{Date: "10-Jun-2021", Amount: decimal.RequireFromString("1234.5"), Line: 3},
	{Date: "31-Dec-2022", Amount: decimal.RequireFromString("-2500.25"), Line: 4},
}

const transactionsCSV = `Date,Amount,Memo
05-Jan-2021,1000,first deposit
10-Jun-2021,"1,234.5",
31-Dec-2022,-2500.25,withdrawal
`

func assertRecords(t *testing.T, got, want Records) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records %v, want %d", len(got), got, len(want))
	}
	for i := range got {
		if got[i].Date != want[i].Date || !got[i].Amount.Equal(want[i].Amount) {
			t.Errorf("record %d = %v %v, want %v %v", i, got[i].Date, got[i].Amount, want[i].Date, want[i].Amount)
		}
	}
}

func TestReadCSV(t *testing.T) {
	got, err := ReadCSV(strings.NewReader(transactionsCSV))
	if err != nil {
		t.Fatalf("ReadCSV() error = %v", err)
	}
	assertRecords(t, got, transactions)
	for i, r := range got {
		if r.Line != transactions[i].Line {
			t.Errorf("record %d line = %d, want %d", i, r.Line, transactions[i].Line)
		}
	}
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"single column", "Date\n2021-01-01\n"},
		{"invalid amount", "Date,Amount\n2021-01-01,abc\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadCSV(strings.NewReader(tt.input)); err == nil {
				t.Errorf("ReadCSV(%q) succeeded, want an error", tt.input)
			}
		})
	}
}

func TestReadCSV_BlankRows(t *testing.T) {
	got, err := ReadCSV(strings.NewReader("Date,Amount\n\n2021-01-01,10\n,\n"))
	if err != nil {
		t.Fatal(err)
	}
	assertRecords(t, got, Records{{Date: "2021-01-01", Amount: decimal.NewFromInt(10)}})
}

func newWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"Date", "Amount"},
		{"05-Jan-2021", 1000},
		{"10-Jun-2021", 1234.5},
		{"31-Dec-2022", -2500.25},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func TestReadXLSX(t *testing.T) {
	got, err := ReadXLSX(newWorkbook(t), "")
	if err != nil {
		t.Fatalf("ReadXLSX() error = %v", err)
	}
	assertRecords(t, got, transactions)

	if _, err := ReadXLSX(newWorkbook(t), "Missing"); err == nil {
		t.Errorf("ReadXLSX() with an unknown sheet succeeded, want an error")
	}
}

func TestReadJSON(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		input string
	}{
		{
			name:  "array rows",
			input: `[["05-Jan-2021", 1000], ["10-Jun-2021", 1234.5], ["31-Dec-2022", -2500.25]]`,
		},
		{
			name:  "object rows selected by path",
			path:  "$.flows[*]",
			input: `{"account": "ppf", "flows": [{"date": "05-Jan-2021", "amount": 1000}, {"date": "10-Jun-2021", "amount": "1,234.5"}, {"date": "31-Dec-2022", "amount": -2500.25}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadJSON(strings.NewReader(tt.input), tt.path)
			if err != nil {
				t.Fatalf("ReadJSON() error = %v", err)
			}
			assertRecords(t, got, transactions)
		})
	}
}

func TestReadJSON_Errors(t *testing.T) {
	for _, input := range []string{
		`{"flows": 1}`,
		`[[1000, "05-Jan-2021"]]`,
		`[["05-Jan-2021"]]`,
		`[["05-Jan-2021", true]]`,
		`not json`,
	} {
		if _, err := ReadJSON(strings.NewReader(input), ""); err == nil {
			t.Errorf("ReadJSON(%q) succeeded, want an error", input)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	files := map[string][]byte{
		"transactions.csv":  []byte(transactionsCSV),
		"transactions.xlsx": newWorkbook(t).Bytes(),
		"transactions.json": []byte(`[["05-Jan-2021", 1000], ["10-Jun-2021", 1234.5], ["31-Dec-2022", -2500.25]]`),
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatal(err)
		}
		t.Run(name, func(t *testing.T) {
			got, err := LoadFile(path, FileOptions{})
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			assertRecords(t, got, transactions)

			req, err := Normalize(Input{Source: got, DateFormat: "%d-%b-%Y"})
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if req.Series().Len() != 3 {
				t.Errorf("got %d cashflows, want 3", req.Series().Len())
			}
		})
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.csv"), FileOptions{}); err == nil {
		t.Errorf("LoadFile() of a missing file succeeded, want an error")
	}
}
