// Command schedule prints a loan repayment schedule.
//
//	schedule --principal 2500000 --rate 8.5 --years 20 --hike 5 --prepay 24=100000 --float 37=9.1
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"emi-planner/amortization"
	"emi-planner/domain"
	"emi-planner/repository"
	"emi-planner/service"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("schedule", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opt, err := ParseArgs(fs, argv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	// Same limits as the HTTP API; nothing is stored or cached here.
	loanService := service.NewLoanService(repository.NewPlanRepositoryMemory(), repository.NewMemoryCache())
	if err := loanService.ValidateSchedule(opt.Input); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	result := amortization.Round(amortization.GenerateSchedule(opt.Input))

	switch opt.Output {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		err = enc.Encode(result)
	default:
		err = writeText(stdout, result, opt.Header)
	}
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func writeText(w io.Writer, result domain.ScheduleResult, header bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if header {
		fmt.Fprintln(tw, "month\temi\tprincipal\tinterest\tprepayment\tbalance\t")
	}
	for _, row := range result.Rows {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			row.Month, row.EMI, row.PrincipalComponent, row.InterestComponent,
			row.Prepayment, row.OutstandingBalance)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nmonthly EMI %.2f, total interest %.2f, principal paid %.2f, months %d\n",
		result.MonthlyEMI, result.TotalInterest, result.TotalPrincipalPaid, result.Months())
	if err != nil {
		return err
	}
	if !result.PaidOff() {
		_, err = fmt.Fprintf(w, "residual balance %.2f at end of tenure\n", result.ResidualBalance())
	}
	return err
}
