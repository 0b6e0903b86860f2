package main

import (
	"fmt"
	"log/slog"
	"os"

	cmdcheck "billing-perf/command/check"
	cmdrun "billing-perf/command/run"
)

// One-shot batch ETL for billing-coordinator performance reporting.
// Usage:
//
//	billing-perf run   [-config config.yml] [-db export.xlsx] [-coordinators ref.xlsx] [-out output]
//	billing-perf check [-config config.yml] [-db export.xlsx] [-coordinators ref.xlsx]
//
// Loads the workflow ticket export and the coordinator lookup, cleans and
// joins them, classifies incidents, scores coordinators, and writes a
// multi-sheet xlsx report for dashboards.
func main() {
	args := os.Args
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "run":
			if err := cmdrun.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "check":
			if err := cmdcheck.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: billing-perf run [-config <path>] [-db <xlsx>] [-coordinators <xlsx>] [-out <dir>] | check [-config <path>] [-db <xlsx>] [-coordinators <xlsx>]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml)")
	os.Exit(2)
}
