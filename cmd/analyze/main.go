package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"tabstat/internal"
	"tabstat/internal/config"
	"tabstat/internal/processor"
)

func main() {
	// .env is optional; real environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := internal.NewLogger(internal.ParseLevel(cfg.LogLevel))
	proc := processor.New(logger)

	if err := run(proc, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(proc *processor.Processor, cfg *config.Config) error {
	if err := proc.LoadData(cfg.InputPath); err != nil {
		return err
	}
	if err := proc.ComputeStatistics(); err != nil {
		return err
	}

	report, err := proc.GetStatistics()
	if err != nil {
		return err
	}
	fmt.Println("Computed Statistics:")
	for _, entry := range report.Entries {
		fmt.Printf("  %s: mean=%g median=%g modes=%v\n",
			entry.Column, entry.Mean, entry.Median, entry.Modes)
	}

	if err := proc.VisualizeData(cfg.PlotPath); err != nil {
		return err
	}
	return proc.ExportStatistics(cfg.StatsPath)
}
