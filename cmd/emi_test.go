package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestEmiCmd(t *testing.T) {
	got, status := run(t, &emiCmd{}, "-amount", "10000000", "-rate", "8.5", "-years", "5", "-summary", "-effective")
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v, want success", status)
	}
	want := `Loan Amount: 10000000.00
Yearly interest: 8.50%
Loan Tenure: 5 years
Monthly EMI: 205165.31
Total Interest Paid: 2309918.80
Effective yearly rate: 8.839 %
`
	if got != want {
		t.Errorf("output =\n%s\nwant\n%s", got, want)
	}
}

func TestEmiCmd_Schedule(t *testing.T) {
	xlsx := filepath.Join(t.TempDir(), "schedule.xlsx")
	got, status := run(t, &emiCmd{}, "-amount", "100000", "-rate", "12", "-years", "1", "-months", "6", "-xlsx", xlsx)
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v, want success", status)
	}
	if n := strings.Count(got, ">"); n != 18 {
		t.Errorf("got %d installments, want 18:\n%s", n, got)
	}
	if !strings.Contains(got, "Loan Tenure: 18 months") {
		t.Errorf("output misses the tenure:\n%s", got)
	}
	if info, err := os.Stat(xlsx); err != nil || info.Size() == 0 {
		t.Errorf("schedule not exported: %v", err)
	}
}

func TestEmiCmd_Currency(t *testing.T) {
	withFormat(t, "markdown")
	t.Setenv("CFC_OUTPUT_CURRENCY", "USD")
	got, status := run(t, &emiCmd{}, "-amount", "1000", "-rate", "12", "-months", "2", "-summary")
	if status != subcommands.ExitSuccess {
		t.Fatalf("status = %v, want success", status)
	}
	if !strings.Contains(got, "$507.51") {
		t.Errorf("output misses the EMI in dollars:\n%s", got)
	}
	if strings.Contains(got, "Installments") {
		t.Errorf("summary output shows the installments:\n%s", got)
	}
}

func TestEmiCmd_Errors(t *testing.T) {
	for _, args := range [][]string{
		{"-amount", "lots", "-rate", "5", "-years", "1"},
		{"-amount", "1000", "-rate", "5"},
		{"-amount", "-1000", "-rate", "5", "-years", "1"},
		{"-amount", "1000", "-rate", "-5", "-years", "1"},
		{"-amount", "1000", "-rate", "NaN", "-years", "1"},
		{"-amount", "1000", "-rate", "Inf", "-years", "1"},
	} {
		if _, status := run(t, &emiCmd{}, args...); status != subcommands.ExitUsageError {
			t.Errorf("emi %q status = %v, want a usage error", args, status)
		}
	}
}
