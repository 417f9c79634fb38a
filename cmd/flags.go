package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/cashflow"
)

// floatList is a comma separated list of numbers flag, e.g. "-values 1000,1000,-2200".
type floatList []float64

func (l *floatList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(*l))
	for i, v := range *l {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(s, ",")
}

func (l *floatList) Set(value string) error {
	*l = (*l)[:0]
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", field)
		}
		*l = append(*l, v)
	}
	return nil
}

// stringList is a comma separated list of strings flag.
type stringList []string

func (l *stringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	*l = (*l)[:0]
	for _, field := range strings.Split(value, ",") {
		if field = strings.TrimSpace(field); field != "" {
			*l = append(*l, field)
		}
	}
	return nil
}

// percentFlag is an optional rate in percent: it remains nil until set.
type percentFlag struct {
	value *cashflow.Percent
}

func (p *percentFlag) String() string {
	if p == nil || p.value == nil {
		return ""
	}
	return strconv.FormatFloat(float64(*p.value), 'g', -1, 64)
}

func (p *percentFlag) Set(value string) error {
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(value), "%"), 64)
	if err != nil {
		return fmt.Errorf("invalid rate %q", value)
	}
	rate := cashflow.Percent(v)
	p.value = &rate
	return nil
}
