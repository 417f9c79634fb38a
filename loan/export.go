package loan

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	installmentsSheet = "Installments"
)

// WriteXLSX writes the schedule as an Excel workbook with a summary sheet and an installments sheet.
func (s *Schedule) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Loan Amount", s.Loan.Principal.InexactFloat64()},
		{"Yearly Interest (%)", float64(s.Loan.AnnualRate)},
		{"Loan Tenure (months)", s.Loan.Months},
		{"Monthly EMI", s.EMI.Round(2).Decimal().InexactFloat64()},
		{"Total Interest Paid", s.TotalInterest.Round(2).Decimal().InexactFloat64()},
		{"Total Paid", s.TotalPaid.Round(2).Decimal().InexactFloat64()},
	}
	if s.Loan.Currency != "" {
		summary = append(summary, []any{"Currency", s.Loan.Currency})
	}
	if err := setRows(f, summarySheet, summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(installmentsSheet); err != nil {
		return err
	}
	rows := make([][]any, 0, len(s.Installments)+1)
	rows = append(rows, []any{"Number", "Year", "Month", "Interest", "Principal", "Paid", "Balance"})
	for _, in := range s.Installments {
		rows = append(rows, []any{
			in.Number, in.Year, in.Month,
			in.Interest.Round(2).Decimal().InexactFloat64(),
			in.Principal.Round(2).Decimal().InexactFloat64(),
			in.Paid.Round(2).Decimal().InexactFloat64(),
			in.Balance.Round(2).Decimal().InexactFloat64(),
		})
	}
	if err := setRows(f, installmentsSheet, rows); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

func setRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("cannot write row %d of sheet %q: %w", i+1, sheet, err)
		}
	}
	return nil
}
