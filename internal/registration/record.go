// Package registration cleans and analyzes the registration form CSV export:
// deduplication, affiliation normalization, attendance statistics and an
// outlier report for the organizing committee.
package registration

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// Record is one row of the registration form export.
type Record struct {
	Timestamp    time.Time // zero when the raw value did not parse
	RawTimestamp string
	FullName     string
	Email        string
	Affiliation  string   // raw form input
	Affiliations []string // normalized, set by Clean
	Attending    string
	Role         string
	Paper        string
	Driving      string
}

const notSpecified = "Not specified"

// Column names of the registration form export.
const (
	colTimestamp   = "Timestamp"
	colFullName    = "Full Name"
	colEmail       = "Email Address"
	colAffiliation = "Affiliation (University/Company)"
	colAttending   = "Are you attending ISCOL 2025?"
	colRole        = "I identify as a:"
	colPaper       = "Did you submit a paper to ISCOL?"
	colDriving     = "Will you be driving a car?"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// timestampLayouts covers the formats the form export has been seen to use.
var timestampLayouts = []string{
	"2006/01/02 3:04:05 PM MST-7",
	"2006/01/02 3:04:05 PM MST",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// LoadCSV reads the raw registration export without cleaning it; the outlier
// report wants the data exactly as submitted.
func LoadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading registration CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colFullName, colEmail} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("registration CSV missing column %q", required)
		}
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading registration CSV line %d: %w", line, err)
		}

		raw := field(row, colTimestamp)
		records = append(records, Record{
			Timestamp:    parseTimestamp(raw),
			RawTimestamp: raw,
			FullName:     field(row, colFullName),
			Email:        field(row, colEmail),
			Affiliation:  field(row, colAffiliation),
			Attending:    orNotSpecified(field(row, colAttending)),
			Role:         orNotSpecified(field(row, colRole)),
			Paper:        orNotSpecified(field(row, colPaper)),
			Driving:      orNotSpecified(field(row, colDriving)),
		})
	}

	return records, nil
}

func orNotSpecified(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// CleanEmail lowercases and validates an email address; invalid addresses
// come back empty.
func CleanEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if emailPattern.MatchString(email) {
		return email
	}
	return ""
}

// CleanResult is the deduplicated, normalized registration set.
type CleanResult struct {
	Records           []Record
	TotalLoaded       int
	DuplicatesRemoved int
}

// Clean validates emails, removes duplicate registrations by email (keeping
// the first) and normalizes affiliations.
func Clean(records []Record) CleanResult {
	result := CleanResult{TotalLoaded: len(records)}

	seen := make(map[string]bool)
	for _, rec := range records {
		rec.Email = CleanEmail(rec.Email)
		if rec.Email != "" {
			if seen[rec.Email] {
				result.DuplicatesRemoved++
				continue
			}
			seen[rec.Email] = true
		}
		rec.Affiliations = NormalizeAffiliation(rec.Affiliation)
		result.Records = append(result.Records, rec)
	}

	return result
}

// WriteCleanedCSV writes the cleaned records, with normalized affiliations
// joined into one column, mirroring the raw export's layout.
func WriteCleanedCSV(w io.Writer, clean CleanResult) error {
	writer := csv.NewWriter(w)

	header := []string{colTimestamp, colFullName, colEmail, colAffiliation,
		"Affiliation (Normalized)", colAttending, colRole, colPaper, colDriving}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing cleaned CSV header: %w", err)
	}

	for _, rec := range clean.Records {
		row := []string{
			rec.RawTimestamp,
			rec.FullName,
			rec.Email,
			rec.Affiliation,
			strings.Join(rec.Affiliations, ", "),
			rec.Attending,
			rec.Role,
			rec.Paper,
			rec.Driving,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing cleaned CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
