package commands

import (
	"flag"
	"fmt"
	"os"

	"iscol-site/internal/site"
	"iscol-site/static"
)

// ValidateCommand checks a page against the navigation contract. With no
// -file flag it validates the embedded document the server would serve.
func ValidateCommand(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	file := fs.String("file", "", "HTML file to validate (default: embedded index.html)")
	linksOnly := fs.Bool("links-only", false, "Check only that navigation links resolve (for secondary pages)")
	fs.Parse(args)

	var page *site.Page
	var err error

	if *file == "" {
		f, openErr := static.FS.Open("index.html")
		if openErr != nil {
			fmt.Printf("Failed to open embedded index.html: %v\n", openErr)
			os.Exit(1)
		}
		defer f.Close()
		page, err = site.Parse(f)
	} else {
		f, openErr := os.Open(*file)
		if openErr != nil {
			fmt.Printf("Failed to open %s: %v\n", *file, openErr)
			os.Exit(1)
		}
		defer f.Close()
		page, err = site.Parse(f)
	}

	if err != nil {
		fmt.Printf("Parse failed: %v\n", err)
		os.Exit(1)
	}

	if *linksOnly {
		if err := page.CheckLinks(); err != nil {
			fmt.Printf("Link check failed:\n%v\n", err)
			os.Exit(1)
		}
		fmt.Println("All navigation links resolve")
		return
	}

	defects := page.Validate()
	if len(defects) > 0 {
		fmt.Printf("Found %d defect(s):\n", len(defects))
		for _, defect := range defects {
			fmt.Printf("  - %v\n", defect)
		}
		os.Exit(1)
	}

	fmt.Printf("Page valid: %d sections, %d navigation links\n", len(page.Sections), len(page.NavLinks))
}
