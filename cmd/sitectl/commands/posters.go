package commands

import (
	"flag"
	"fmt"
	"os"

	"iscol-site/internal/posters"
)

// PostersCommand generates the posters page from the accepted-posters CSV.
func PostersCommand(args []string) {
	fs := flag.NewFlagSet("posters", flag.ExitOnError)
	csvPath := fs.String("csv", "assets/posters.csv", "Path to the posters CSV")
	outPath := fs.String("out", "static/posters.html", "Output HTML file")
	fs.Parse(args)

	f, err := os.Open(*csvPath)
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", *csvPath, err)
		os.Exit(1)
	}
	defer f.Close()

	list, err := posters.LoadCSV(f)
	if err != nil {
		fmt.Printf("Failed to load posters: %v\n", err)
		os.Exit(1)
	}

	for _, session := range posters.BySession(list) {
		fmt.Printf("  Session %d: %d posters\n", session.ID, len(session.Posters))
	}

	out, err := os.Create(*outPath)
	if err != nil {
		fmt.Printf("Failed to create %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	defer out.Close()

	if err := posters.Render(out, list); err != nil {
		fmt.Printf("Failed to render posters page: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s (%d posters)\n", *outPath, len(list))
}
