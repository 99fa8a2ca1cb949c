package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"iscol-site/internal/database"
	"iscol-site/internal/db"
	"iscol-site/internal/registration"
	"iscol-site/internal/repositories"
	"iscol-site/migrations"
)

// RegistrationCommand cleans and analyzes the registration CSV export. The
// cleaned records are written next to the input; with -db they are also
// imported into Postgres.
func RegistrationCommand(args []string) {
	fs := flag.NewFlagSet("registration", flag.ExitOnError)
	csvPath := fs.String("csv", "iscol-registration.csv", "Path to the registration CSV")
	topN := fs.Int("top", 20, "Number of affiliations in the ranking")
	dbURL := fs.String("db", "", "Postgres URL to import cleaned records into (optional)")
	fs.Parse(args)

	f, err := os.Open(*csvPath)
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", *csvPath, err)
		os.Exit(1)
	}

	records, err := registration.LoadCSV(f)
	f.Close()
	if err != nil {
		fmt.Printf("Failed to load registrations: %v\n", err)
		os.Exit(1)
	}

	clean := registration.Clean(records)
	stats := registration.Compute(clean, *topN)
	registration.WriteReport(os.Stdout, stats)

	cleanedPath := strings.TrimSuffix(*csvPath, ".csv") + "_cleaned.csv"
	out, err := os.Create(cleanedPath)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", cleanedPath, err)
		os.Exit(1)
	}
	if err := registration.WriteCleanedCSV(out, clean); err != nil {
		out.Close()
		fmt.Printf("Failed to write cleaned CSV: %v\n", err)
		os.Exit(1)
	}
	out.Close()
	fmt.Printf("\nCleaned data saved to: %s\n", cleanedPath)

	if *dbURL != "" {
		importRegistrations(*dbURL, clean)
	}
}

func importRegistrations(url string, clean registration.CleanResult) {
	ctx := context.Background()

	pool, err := db.Connect(ctx, url)
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.RunMigrations(ctx); err != nil {
		fmt.Printf("Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	repo := repositories.NewRegistrationRepository(pool)
	stored, err := repo.ImportAll(ctx, clean.Records)
	if err != nil {
		fmt.Printf("Import failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d registrations into Postgres\n", stored)
}
