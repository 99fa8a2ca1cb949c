package registration

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"
)

// Outliers collects the unusual registrations the committee reviews by hand:
// bad emails, duplicate people, name variations, international attendees,
// one-of-a-kind roles and timing extremes. It runs over the raw export, not
// the cleaned set, because the defects are the point.
type Outliers struct {
	InvalidEmails     []Record
	UnusualEmails     []string // valid but containing "..", "--" or "__"
	PhoneAffiliations []Record // numeric-only affiliation field
	Duplicates        []DuplicateGroup
	NameVariations    []NameGroup
	International     []Record
	RareRoles         []Record // roles used exactly once
	EarlyBirds        []Record // first registrations with valid timestamps
	LastMinute        []Record // last registrations with valid timestamps
	WeekendCount      int
}

// DuplicateGroup is one person registered more than once under the same email.
type DuplicateGroup struct {
	Email   string
	Records []Record
}

// NameGroup is a set of registrations whose names collapse to the same key.
type NameGroup struct {
	Key     string
	Records []Record
}

var (
	numericOnlyPattern = regexp.MustCompile(`^\d+$`)
	nonWordPattern     = regexp.MustCompile(`[^\w]`)
)

// internationalKeywords flag affiliations outside the local community.
var internationalKeywords = []string{
	"harvard", "stanford", "miami", "zurich", "upenn", "pennsylvania",
	"mcgill", "mila", "usf", "south florida", "kempner",
}

// commonRoles are excluded from the one-of-a-kind role listing even when a
// spelling of them appears only once.
var commonRoles = map[string]bool{
	"Graduate student":    true,
	"Industry researcher": true,
	"Faculty member":      true,
}

const timingExtremes = 5

// FindOutliers scans the raw registration records.
func FindOutliers(records []Record) *Outliers {
	out := &Outliers{}

	emailGroups := make(map[string][]Record)
	nameGroups := make(map[string][]Record)
	roleCounts := make(map[string]int)

	for _, rec := range records {
		email := strings.ToLower(strings.TrimSpace(rec.Email))
		switch {
		case email == "":
			// empty field, nothing to flag
		case !emailPattern.MatchString(email):
			out.InvalidEmails = append(out.InvalidEmails, rec)
		case strings.Contains(email, "..") || strings.Contains(email, "--") || strings.Contains(email, "__"):
			out.UnusualEmails = append(out.UnusualEmails, email)
		}
		if email != "" {
			emailGroups[email] = append(emailGroups[email], rec)
		}

		if numericOnlyPattern.MatchString(rec.Affiliation) {
			out.PhoneAffiliations = append(out.PhoneAffiliations, rec)
		}

		nameKey := nonWordPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(rec.FullName)), "")
		if nameKey != "" {
			nameGroups[nameKey] = append(nameGroups[nameKey], rec)
		}

		affiliation := strings.ToLower(rec.Affiliation)
		for _, keyword := range internationalKeywords {
			if strings.Contains(affiliation, keyword) {
				out.International = append(out.International, rec)
				break
			}
		}

		if rec.Role != notSpecified {
			roleCounts[rec.Role]++
		}

		if !rec.Timestamp.IsZero() {
			switch rec.Timestamp.Weekday() {
			case time.Saturday, time.Sunday:
				out.WeekendCount++
			}
		}
	}

	for email, group := range emailGroups {
		if len(group) > 1 {
			out.Duplicates = append(out.Duplicates, DuplicateGroup{Email: email, Records: group})
		}
	}
	sort.Slice(out.Duplicates, func(i, j int) bool {
		if len(out.Duplicates[i].Records) != len(out.Duplicates[j].Records) {
			return len(out.Duplicates[i].Records) > len(out.Duplicates[j].Records)
		}
		return out.Duplicates[i].Email < out.Duplicates[j].Email
	})

	for key, group := range nameGroups {
		if len(group) > 1 && !sameEmail(group) {
			out.NameVariations = append(out.NameVariations, NameGroup{Key: key, Records: group})
		}
	}
	sort.Slice(out.NameVariations, func(i, j int) bool {
		return out.NameVariations[i].Key < out.NameVariations[j].Key
	})

	for _, rec := range records {
		if roleCounts[rec.Role] == 1 && !commonRoles[rec.Role] {
			out.RareRoles = append(out.RareRoles, rec)
		}
	}
	// Longest role descriptions first; they tend to be the interesting ones.
	sort.Slice(out.RareRoles, func(i, j int) bool {
		if len(out.RareRoles[i].Role) != len(out.RareRoles[j].Role) {
			return len(out.RareRoles[i].Role) > len(out.RareRoles[j].Role)
		}
		return out.RareRoles[i].Role < out.RareRoles[j].Role
	})

	timed := withTimestamps(records)
	sort.Slice(timed, func(i, j int) bool { return timed[i].Timestamp.Before(timed[j].Timestamp) })
	// Both lists are reported even when they overlap on small exports.
	n := timingExtremes
	if len(timed) < n {
		n = len(timed)
	}
	out.EarlyBirds = timed[:n]
	out.LastMinute = timed[len(timed)-n:]

	return out
}

func sameEmail(records []Record) bool {
	first := strings.ToLower(strings.TrimSpace(records[0].Email))
	for _, rec := range records[1:] {
		if strings.ToLower(strings.TrimSpace(rec.Email)) != first {
			return false
		}
	}
	return true
}

func withTimestamps(records []Record) []Record {
	var timed []Record
	for _, rec := range records {
		if !rec.Timestamp.IsZero() {
			timed = append(timed, rec)
		}
	}
	return timed
}

// WriteOutlierReport renders the findings as plain text.
func WriteOutlierReport(w io.Writer, out *Outliers) {
	banner(w, "REGISTRATION OUTLIERS & INTERESTING FINDINGS")
	fmt.Fprintln(w)

	banner(w, "EMAIL ANOMALIES")
	fmt.Fprintf(w, "Invalid emails: %d\n", len(out.InvalidEmails))
	for _, rec := range out.InvalidEmails {
		fmt.Fprintf(w, "  - %s: %s\n", rec.FullName, rec.Email)
		fmt.Fprintf(w, "    Affiliation: %s\n", rec.Affiliation)
	}
	if len(out.UnusualEmails) > 0 {
		fmt.Fprintf(w, "Unusual email patterns: %s\n", strings.Join(out.UnusualEmails, ", "))
	}
	if len(out.PhoneAffiliations) > 0 {
		fmt.Fprintln(w, "Phone numbers in affiliation field:")
		for _, rec := range out.PhoneAffiliations {
			fmt.Fprintf(w, "  - %s: %s\n", rec.FullName, rec.Affiliation)
		}
	}
	fmt.Fprintln(w)

	banner(w, "DUPLICATE REGISTRATIONS (Same Person, Multiple Times)")
	fmt.Fprintf(w, "Found %d people who registered multiple times\n", len(out.Duplicates))
	for i, group := range out.Duplicates {
		if i >= 10 {
			break
		}
		fmt.Fprintf(w, "  %s (%d registrations):\n", group.Email, len(group.Records))
		for _, rec := range group.Records {
			fmt.Fprintf(w, "    - %s - %s (attending: %s)\n", rec.RawTimestamp, rec.FullName, rec.Attending)
		}
	}
	fmt.Fprintln(w)

	banner(w, "POTENTIAL NAME VARIATIONS")
	fmt.Fprintf(w, "Found %d potential duplicate names\n", len(out.NameVariations))
	for i, group := range out.NameVariations {
		if i >= 5 {
			break
		}
		fmt.Fprintln(w, "  Variations:")
		for _, rec := range group.Records {
			fmt.Fprintf(w, "    - %s (%s)\n", rec.FullName, rec.Email)
		}
	}
	fmt.Fprintln(w)

	banner(w, "INTERNATIONAL & REMOTE ATTENDEES")
	fmt.Fprintf(w, "%d international attendees detected:\n", len(out.International))
	for _, rec := range out.International {
		fmt.Fprintf(w, "  [%s] %s\n", rec.Attending, rec.FullName)
		fmt.Fprintf(w, "      From: %s\n", rec.Affiliation)
	}
	fmt.Fprintln(w)

	banner(w, "UNIQUE & INTERESTING ROLES")
	for i, rec := range out.RareRoles {
		if i >= 15 {
			break
		}
		fmt.Fprintf(w, "  - %q\n", rec.Role)
		fmt.Fprintf(w, "    -> %s from %s\n", rec.FullName, rec.Affiliation)
	}
	fmt.Fprintln(w)

	banner(w, "REGISTRATION TIMING OUTLIERS")
	fmt.Fprintln(w, "First early birds:")
	for _, rec := range out.EarlyBirds {
		fmt.Fprintf(w, "  %s - %s\n", rec.Timestamp.Format("2006-01-02 15:04"), rec.FullName)
	}
	fmt.Fprintln(w, "Last-minute registrations:")
	for _, rec := range out.LastMinute {
		fmt.Fprintf(w, "  %s - %s\n", rec.Timestamp.Format("2006-01-02 15:04"), rec.FullName)
	}
	fmt.Fprintf(w, "Weekend registrations: %d\n", out.WeekendCount)
}
