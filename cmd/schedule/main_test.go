package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"strings"
	"testing"

	"emi-planner/domain"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestParseArgs_Overrides(t *testing.T) {
	o := mustParse(t,
		"--principal", "2500000",
		"--rate", "8.5",
		"--years", "20",
		"--prepay", "24=100000,36=50000",
		"--prepay", "48=1000",
		"--float", "37=9.1",
	)
	if o.Input.TenureMonths != 240 {
		t.Errorf("want 240 months, got %d", o.Input.TenureMonths)
	}
	if len(o.Input.Prepayments) != 3 || o.Input.Prepayments[36] != 50000 {
		t.Errorf("bad prepayments %v", o.Input.Prepayments)
	}
	if o.Input.FloatingRateChanges[37] != 9.1 {
		t.Errorf("bad floating changes %v", o.Input.FloatingRateChanges)
	}
	if !o.Header || o.Output != "text" {
		t.Errorf("bad output defaults %+v", o)
	}
}

func TestParseArgs_MonthsOverridesYears(t *testing.T) {
	o := mustParse(t, "--principal", "1000", "--rate", "10", "--years", "2", "--months", "7")
	if o.Input.TenureMonths != 7 {
		t.Errorf("want 7 months, got %d", o.Input.TenureMonths)
	}
	if o.Input.Prepayments != nil || o.Input.FloatingRateChanges != nil {
		t.Errorf("expected no override maps, got %+v", o.Input)
	}
}

func TestParseArgs_Errors(t *testing.T) {
	cases := [][]string{
		{"--principal", "1000", "--rate", "10"},
		{"--principal", "1000", "--rate", "10", "--years", "1", "--prepay", "x=1"},
		{"--principal", "1000", "--rate", "10", "--years", "1", "--prepay", "0=1"},
		{"--principal", "1000", "--rate", "10", "--years", "1", "--float", "3"},
		{"--principal", "1000", "--rate", "10", "--years", "1", "--output", "csv"},
	}
	for _, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestMonthMapString(t *testing.T) {
	m := monthMap{12: 1000, 3: 50.5}
	if got := m.String(); got != "3=50.5,12=1000" {
		t.Errorf("got %q", got)
	}
}

func TestRun_Text(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--principal", "100000", "--rate", "12", "--months", "12"}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "8884.88") {
		t.Errorf("expected EMI in output:\n%s", out)
	}
	if !strings.Contains(out, "months 12") {
		t.Errorf("expected summary line:\n%s", out)
	}
	if strings.Contains(out, "residual") {
		t.Errorf("unexpected residual line:\n%s", out)
	}
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{
		"--principal", "100000", "--rate", "12", "--months", "12",
		"--prepay", "1=50000", "--output", "json",
	}, &stdout, &stderr)

	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	var result domain.ScheduleResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if len(result.Rows) >= 12 || result.Rows[len(result.Rows)-1].OutstandingBalance != 0 {
		t.Errorf("expected early payoff, got %d rows", len(result.Rows))
	}
}

func TestRun_InvalidInput(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"--principal", "100000", "--rate", "0", "--months", "12"}, &stdout, &stderr)

	if code != 2 {
		t.Errorf("want exit 2, got %d", code)
	}
	if !strings.Contains(stderr.String(), "annual_rate_percent") {
		t.Errorf("expected field in error, got %q", stderr.String())
	}
}
