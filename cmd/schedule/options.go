package main

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"emi-planner/domain"
)

// Options holds all CLI flags.
type Options struct {
	Input  domain.ScheduleInput
	Output string // text | json
	Header bool
}

// ParseArgs registers and parses all flags and builds the schedule input.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var years, months int
	prepay := monthMap{}
	resets := monthMap{}

	fs.Float64Var(&opt.Input.Principal, "principal", 0, "loan amount [*]")
	fs.Float64Var(&opt.Input.AnnualRatePercent, "rate", 0, "annual interest rate in percent, e.g. 8.5 [*]")
	fs.IntVar(&years, "years", 0, "tenure in years")
	fs.IntVar(&months, "months", 0, "tenure in months (overrides --years)")
	fs.Float64Var(&opt.Input.YearlyHikePercent, "hike", 0, "EMI increase in percent at the start of every year after the first [0]")
	fs.Var(prepay, "prepay", "one-off prepayments as month=amount, comma separated or repeated")
	fs.Var(resets, "float", "floating rate resets as month=rate, comma separated or repeated")
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text output [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	opt.Header = !noHeader

	switch {
	case months > 0:
		opt.Input.TenureMonths = months
	case years > 0:
		opt.Input.TenureMonths = years * 12
	default:
		return opt, errors.New("provide --years or --months")
	}
	if len(prepay) > 0 {
		opt.Input.Prepayments = prepay
	}
	if len(resets) > 0 {
		opt.Input.FloatingRateChanges = resets
	}
	if opt.Output != "text" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}

// monthMap parses "month=value" pairs into a sparse per-month map.
type monthMap map[int]float64

func (m monthMap) String() string {
	months := make([]int, 0, len(m))
	for month := range m {
		months = append(months, month)
	}
	sort.Ints(months)

	parts := make([]string, 0, len(months))
	for _, month := range months {
		parts = append(parts, fmt.Sprintf("%d=%g", month, m[month]))
	}
	return strings.Join(parts, ",")
}

func (m monthMap) Set(v string) error {
	for _, pair := range strings.Split(v, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected month=value, got %q", pair)
		}
		month, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil || month < 1 {
			return fmt.Errorf("invalid month %q", key)
		}
		amount, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("invalid value for month %d: %q", month, value)
		}
		m[month] = amount
	}
	return nil
}
