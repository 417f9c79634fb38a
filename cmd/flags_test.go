package cmd

import (
	"flag"
	"io"
	"slices"
	"testing"
)

func TestListFlags(t *testing.T) {
	var (
		values floatList
		dates  stringList
		rate   percentFlag
	)
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.Var(&values, "values", "")
	f.Var(&dates, "dates", "")
	f.Var(&rate, "irr", "")

	if rate.value != nil {
		t.Fatalf("rate is set before parsing")
	}
	if err := f.Parse([]string{"-values", "1000, 1e3,-2200", "-dates", "05-Jan-2021,,10-Jun-2021", "-irr", "7.5%"}); err != nil {
		t.Fatal(err)
	}
	if want := []float64{1000, 1000, -2200}; !slices.Equal(values, want) {
		t.Errorf("values = %v, want %v", values, want)
	}
	if want := []string{"05-Jan-2021", "10-Jun-2021"}; !slices.Equal(dates, want) {
		t.Errorf("dates = %v, want %v", dates, want)
	}
	if rate.value == nil || *rate.value != 7.5 {
		t.Errorf("rate = %v, want 7.5", rate.String())
	}
	if got := values.String(); got != "1000,1000,-2200" {
		t.Errorf("values.String() = %q", got)
	}
}

func TestListFlags_Errors(t *testing.T) {
	var values floatList
	if err := values.Set("1,two,3"); err == nil {
		t.Errorf("floatList.Set() succeeded, want an error")
	}
	var rate percentFlag
	if err := rate.Set("ten"); err == nil {
		t.Errorf("percentFlag.Set() succeeded, want an error")
	}
}
