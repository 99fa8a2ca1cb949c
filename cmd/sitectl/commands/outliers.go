package commands

import (
	"flag"
	"fmt"
	"os"

	"iscol-site/internal/registration"
)

// OutliersCommand reports unusual registrations from the raw CSV export.
func OutliersCommand(args []string) {
	fs := flag.NewFlagSet("outliers", flag.ExitOnError)
	csvPath := fs.String("csv", "iscol-registration.csv", "Path to the registration CSV")
	fs.Parse(args)

	f, err := os.Open(*csvPath)
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", *csvPath, err)
		os.Exit(1)
	}
	defer f.Close()

	records, err := registration.LoadCSV(f)
	if err != nil {
		fmt.Printf("Failed to load registrations: %v\n", err)
		os.Exit(1)
	}

	out := registration.FindOutliers(records)
	registration.WriteOutlierReport(os.Stdout, out)
}
