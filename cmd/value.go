package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashflow"
	"github.com/etnz/cashflow/renderer"
	"github.com/google/subcommands"
)

// valueCmd holds the flags of the 'xirr' and 'present' subcommands, they only differ by their mode.
type valueCmd struct {
	mode cashflow.Mode

	values     floatList
	years      floatList
	dates      stringList
	dateFormat string

	dataFile string
	sheet    string
	jsonPath string

	rate     percentFlag
	currency string
}

func (c *valueCmd) Name() string { return c.mode.String() }

func (c *valueCmd) Synopsis() string {
	if c.mode == cashflow.Present {
		return "compute the present value of cashflows at a yearly rate"
	}
	return "compute the internal rate of return of irregular cashflows"
}

func (c *valueCmd) Usage() string {
	if c.mode == cashflow.Present {
		return `cfc present -irr <rate> -values <v1,v2,...> [-years <y1,y2,...> | -dates <d1,d2,...> [-date-fmt <format>]]
cfc present -irr <rate> -data-file <file> [-date-fmt <format>]

  Computes the value of the cashflows at the date of the last one, growing
  each cashflow at the yearly rate until then.
`
	}
	return `cfc xirr -values <v1,v2,...> [-years <y1,y2,...> | -dates <d1,d2,...> [-date-fmt <format>]]
cfc xirr -data-file <file> [-date-fmt <format>]

  Computes the yearly rate at which the present value of the cashflows is
  zero. Deposits are positive, withdrawals are negative.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.values, "values", "Comma separated cashflow amounts")
	f.Var(&c.years, "years", "Comma separated times of the cashflows, in years. Defaults to 0,1,2,...")
	f.Var(&c.dates, "dates", "Comma separated dates of the cashflows")
	f.StringVar(&c.dateFormat, "date-fmt", "", "Format of the dates, strftime directives or a Go layout (default from the configuration, %Y-%m-%d)")
	f.StringVar(&c.dataFile, "data-file", "", "Read (date, amount) rows from a .csv, .xlsx or .json file")
	f.StringVar(&c.sheet, "sheet", "", "Sheet of the .xlsx data file (default the first one)")
	f.StringVar(&c.jsonPath, "json-path", "", "JSONPath selecting the rows of the .json data file (default $)")
	if c.mode == cashflow.Present {
		f.Var(&c.rate, "irr", "Yearly rate in percent, e.g. 7.5")
		f.StringVar(&c.currency, "currency", "", "Also format the present value in this currency (default from the configuration)")
	}
}

// input returns the cashflow options given on the command line.
func (c *valueCmd) input(dateFormat string) (cashflow.Input, error) {
	in := cashflow.Input{
		Mode:       c.mode,
		Values:     c.values,
		Years:      c.years,
		Dates:      c.dates,
		DateFormat: c.dateFormat,
		Rate:       c.rate.value,
	}
	if in.DateFormat == "" {
		in.DateFormat = dateFormat
	}
	if c.dataFile != "" {
		records, err := cashflow.LoadFile(c.dataFile, cashflow.FileOptions{Sheet: c.sheet, JSONPath: c.jsonPath})
		if err != nil {
			return in, err
		}
		in.Source = records
	}
	return in, nil
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	cfg, err := loadConfig()
	if err != nil {
		return fail("loading configuration", err)
	}
	logger := newLogger(cfg)

	in, err := c.input(cfg.Dates.Format)
	if err != nil {
		return fail("reading data file", err)
	}
	req, err := cashflow.Normalize(in)
	if err != nil {
		return fail("in cashflows", err)
	}
	logger.Info().Stringer("mode", req.Mode()).Int("cashflows", req.Series().Len()).Msg("evaluating")

	res, err := cashflow.Evaluate(req, cfg.NewSolver(logger))
	if err != nil {
		return fail("computing "+c.mode.String(), err)
	}

	currency := c.currency
	if currency == "" {
		currency = cfg.Output.Currency
	}
	if pv, ok := res.(cashflow.PresentValueResult); ok && currency != "" {
		pv.Value = pv.Value.InCurrency(currency)
		res = pv
	}

	md := renderer.RenderResult(renderer.NewResult(req, res))
	if err := printReport(cfg.Output.Format, res.String()+"\n", md); err != nil {
		return fail("printing report", err)
	}
	return subcommands.ExitSuccess
}
