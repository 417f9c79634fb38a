package cashflow

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// this file contains the batch data sources of cashflows.
// All of them read (date, amount) pairs, dates are parsed later on, by Normalize.

// Record is a single (date, amount) pair read from a data source.
type Record struct {
	Date   string
	Amount decimal.Decimal
	Line   int // 1-based line or row in the source, 0 when unknown
}

// Source provides cashflow records.
type Source interface {
	Records() ([]Record, error)
}

// Records is a literal Source.
type Records []Record

func (r Records) Records() ([]Record, error) { return r, nil }

// FileOptions tunes how LoadFile reads a file.
type FileOptions struct {
	Sheet    string // XLSX sheet, defaults to the first one
	JSONPath string // JSONPath selecting the rows of a JSON file, defaults to "$"
}

// LoadFile reads the records of the file at path, choosing the reader from its extension:
// .xlsx for ReadXLSX, .json for ReadJSON and anything else for ReadCSV.
func LoadFile(path string, opts FileOptions) (Records, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records Records
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		records, err = ReadXLSX(f, opts.Sheet)
	case ".json":
		records, err = ReadJSON(f, opts.JSONPath)
	default:
		records, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read cashflows from %q: %w", path, err)
	}
	return records, nil
}

// ReadCSV reads records from the first two columns of a CSV file: the date and the amount.
//
// The first row holds the headings and is skipped, so are blank rows.
// Other columns are ignored.
func ReadCSV(r io.Reader) (Records, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records Records
	line := 0
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			continue
		}
		rec, ok, err := parseRow(row, line)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// ReadXLSX reads records from the first two columns of a workbook sheet, with the same layout as ReadCSV.
//
// Dates are read as displayed by the cell's number format.
func ReadXLSX(r io.Reader, sheet string) (Records, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheet")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var records Records
	for i, row := range rows {
		if i == 0 {
			continue
		}
		rec, ok, err := parseRow(row, i+1)
		if err != nil {
			return nil, err
		}
		if ok {
			records = append(records, rec)
		}
	}
	return records, nil
}

// ReadJSON reads records from a JSON document. path is a JSONPath expression
// selecting the list of rows, "$" when empty. Each row is either a
// [date, amount] array or a {"date": ..., "amount": ...} object.
func ReadJSON(r io.Reader, path string) (Records, error) {
	if path == "" {
		path = "$"
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select a list of rows, got %T", path, jval)
	}

	records := make(Records, 0, len(rows))
	for i, row := range rows {
		var d, a any
		switch v := row.(type) {
		case []any:
			if len(v) < 2 {
				return nil, fmt.Errorf("row %d: want [date, amount], got %v", i+1, v)
			}
			d, a = v[0], v[1]
		case map[string]any:
			d, a = v["date"], v["amount"]
		default:
			return nil, fmt.Errorf("row %d: unsupported row type %T", i+1, row)
		}

		s, ok := d.(string)
		if !ok {
			return nil, fmt.Errorf("row %d: date must be a string, got %v", i+1, d)
		}
		var amount decimal.Decimal
		switch v := a.(type) {
		case json.Number:
			amount, err = decimal.NewFromString(v.String())
		case string:
			amount, err = parseAmount(v)
		case float64:
			amount = decimal.NewFromFloat(v)
		default:
			err = fmt.Errorf("unsupported amount %v", a)
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, Record{Date: strings.TrimSpace(s), Amount: amount, Line: i + 1})
	}
	return records, nil
}

// parseRow reads the date and the amount in the first two cells of row.
// It returns false for blank rows.
func parseRow(row []string, line int) (Record, bool, error) {
	blank := true
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			blank = false
			break
		}
	}
	if blank {
		return Record{}, false, nil
	}
	if len(row) < 2 {
		return Record{}, false, fmt.Errorf("line %d: want at least 2 columns (date, amount), got %d", line, len(row))
	}
	amount, err := parseAmount(row[1])
	if err != nil {
		return Record{}, false, fmt.Errorf("line %d: %w", line, err)
	}
	return Record{Date: strings.TrimSpace(row[0]), Amount: amount, Line: line}, true, nil
}

// parseAmount parses a decimal amount, tolerating spaces and thousands separators like "1,234.5".
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.NewReplacer(",", "", " ", "", "\u00a0", "").Replace(s)
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}
