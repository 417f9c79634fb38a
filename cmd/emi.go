package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/loan"
	"github.com/etnz/cashflow/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// emiCmd holds the flags for the 'emi' subcommand.
type emiCmd struct {
	amount    string
	rate      float64
	years     int
	months    int
	currency  string
	summary   bool
	effective bool
	xlsx      string
}

func (*emiCmd) Name() string     { return "emi" }
func (*emiCmd) Synopsis() string { return "compute the monthly installment and amortization schedule of a loan" }
func (*emiCmd) Usage() string {
	return `cfc emi -amount <amount> -rate <yearly %> -years <n> [-months <n>] [-summary] [-effective] [-xlsx <file>]

  Computes the equated monthly installment (EMI) of a fixed rate loan, and
  prints its month by month amortization schedule.
`
}

func (c *emiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Loan amount")
	f.Float64Var(&c.rate, "rate", 0, "Nominal yearly interest rate in percent, compounded monthly")
	f.IntVar(&c.years, "years", 0, "Loan tenure in years")
	f.IntVar(&c.months, "months", 0, "Loan tenure in months, added to the years")
	f.StringVar(&c.currency, "currency", "", "Currency of the loan (default from the configuration)")
	f.BoolVar(&c.summary, "summary", false, "Only print the summary, not every installment")
	f.BoolVar(&c.effective, "effective", false, "Also print the effective yearly rate of the loan")
	f.StringVar(&c.xlsx, "xlsx", "", "Also write the schedule to this Excel file")
}

// loan returns the loan described by the flags.
func (c *emiCmd) loan(currency string) (loan.Loan, error) {
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return loan.Loan{}, fmt.Errorf("%w: invalid loan amount %q", cashflow.ErrConfiguration, c.amount)
	}
	if c.currency != "" {
		currency = c.currency
	}
	l := loan.Loan{
		Principal:  amount,
		AnnualRate: cashflow.Percent(c.rate),
		Months:     12*c.years + c.months,
		Currency:   currency,
	}
	return l, l.Validate()
}

func (c *emiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("loading configuration", err)
	}
	logger := newLogger(cfg)

	l, err := c.loan(cfg.Output.Currency)
	if err != nil {
		return fail("in loan", err)
	}
	s, err := l.Amortize()
	if err != nil {
		return fail("computing the schedule", err)
	}
	logger.Info().Int("months", l.Months).Str("emi", s.EMI.Fixed(4)).Msg("amortized")

	if c.xlsx != "" {
		if err := writeSchedule(c.xlsx, s); err != nil {
			return fail("exporting the schedule", err)
		}
		logger.Info().Str("file", c.xlsx).Msg("schedule exported")
	}

	text := renderer.ScheduleText(s, c.summary)
	md := renderer.RenderSchedule(renderer.NewSchedule(s), c.summary)
	if c.effective {
		flows, err := s.Flows()
		if err != nil {
			return fail("computing the effective rate", err)
		}
		sol, err := cfg.NewSolver(logger).Solve(flows)
		if err != nil {
			return fail("computing the effective rate", err)
		}
		line := fmt.Sprintf("Effective yearly rate: %s %%\n", cashflow.PercentOf(sol.Rate).Fixed(3))
		text += line
		md += "\n" + line
	}

	if err := printReport(cfg.Output.Format, text, md); err != nil {
		return fail("printing report", err)
	}
	return subcommands.ExitSuccess
}

func writeSchedule(path string, s *loan.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.WriteXLSX(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
