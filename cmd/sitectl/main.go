package main

import (
	"fmt"
	"os"

	"iscol-site/cmd/sitectl/commands"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		commands.ValidateCommand(os.Args[2:])
	case "posters":
		commands.PostersCommand(os.Args[2:])
	case "registration":
		commands.RegistrationCommand(os.Args[2:])
	case "outliers":
		commands.OutliersCommand(os.Args[2:])
	case "token":
		commands.TokenCommand(os.Args[2:])
	case "version":
		fmt.Printf("sitectl version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sitectl - ISCOL site authoring and analysis CLI

USAGE:
    sitectl <command> [options]

COMMANDS:
    validate      Check a page against the navigation contract (dead links, section order, headings)
    posters       Generate the posters page from the accepted-posters CSV
    registration  Clean and analyze the registration CSV (optionally import into Postgres)
    outliers      Report unusual registrations (duplicates, bad emails, timing extremes)
    token         Mint an admin token for the operational endpoints
    version       Print version information
    help          Show this help message

EXAMPLES:
    # Validate the embedded page (or any HTML file)
    sitectl validate
    sitectl validate -file static/index.html

    # Generate posters.html from the CSV export
    sitectl posters -csv assets/posters.csv -out static/posters.html

    # Analyze registrations and write the cleaned CSV
    sitectl registration -csv iscol-registration.csv

    # Import cleaned registrations into Postgres
    sitectl registration -csv iscol-registration.csv -db postgres://localhost/iscol

    # Find registration outliers
    sitectl outliers -csv iscol-registration.csv`)
}
