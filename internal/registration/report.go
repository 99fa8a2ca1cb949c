package registration

import (
	"fmt"
	"io"
	"strings"
)

const bannerWidth = 80

func banner(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", bannerWidth))
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

// WriteReport renders the committee's registration summary as plain text.
func WriteReport(w io.Writer, stats *Stats) {
	banner(w, "REGISTRATION DATA ANALYSIS")
	fmt.Fprintf(w, "Total records loaded: %d\n", stats.TotalRegistrations+stats.DuplicatesRemoved)
	fmt.Fprintf(w, "Duplicates removed (by email): %d\n", stats.DuplicatesRemoved)
	fmt.Fprintf(w, "Unique registrations: %d\n", stats.TotalRegistrations)
	fmt.Fprintf(w, "Records with valid email: %d\n", stats.ValidEmails)
	fmt.Fprintf(w, "Records with affiliation: %d\n", stats.WithAffiliation)
	fmt.Fprintln(w)

	banner(w, "ATTENDANCE STATUS")
	for _, item := range rank(stats.Attendance, 0) {
		fmt.Fprintf(w, "  %-40s : %3d\n", item.Name, item.Count)
	}
	fmt.Fprintf(w, "Expected attendees: %d (%.1f%%)\n", stats.Confirmed, percent(stats.Confirmed, stats.TotalRegistrations))
	fmt.Fprintln(w)

	banner(w, fmt.Sprintf("TOP %d AFFILIATIONS (Confirmed Attendees)", len(stats.TopAffiliations)))
	for i, item := range stats.TopAffiliations {
		fmt.Fprintf(w, "%2d. %-40s : %3d attendees\n", i+1, item.Name, item.Count)
	}
	fmt.Fprintln(w)

	banner(w, "PARTICIPANT ROLES (Confirmed Attendees)")
	for _, item := range rank(stats.Roles, 0) {
		fmt.Fprintf(w, "  %-40s : %3d (%5.1f%%)\n", item.Name, item.Count, percent(item.Count, stats.Confirmed))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Role Categories:")
	fmt.Fprintf(w, "  Academic: %d (%.1f%%)\n", stats.AcademicCount, percent(stats.AcademicCount, stats.Confirmed))
	fmt.Fprintf(w, "  Industry: %d (%.1f%%)\n", stats.IndustryCount, percent(stats.IndustryCount, stats.Confirmed))
	fmt.Fprintf(w, "  Other:    %d (%.1f%%)\n", stats.OtherRoles, percent(stats.OtherRoles, stats.Confirmed))
	fmt.Fprintln(w)

	banner(w, "PAPER SUBMISSIONS (Confirmed Attendees)")
	for _, item := range rank(stats.Papers, 0) {
		fmt.Fprintf(w, "  %-40s : %3d\n", item.Name, item.Count)
	}
	fmt.Fprintf(w, "Paper submitters: %d (%.1f%% of attendees)\n", stats.PaperSubmitters, percent(stats.PaperSubmitters, stats.Confirmed))
	fmt.Fprintln(w)

	banner(w, "DRIVING STATUS (Confirmed Attendees)")
	for _, item := range rank(stats.Driving, 0) {
		fmt.Fprintf(w, "  %-40s : %3d\n", item.Name, item.Count)
	}
	fmt.Fprintln(w)

	banner(w, "ORGANIZATION TYPES (Confirmed Attendees)")
	orgTotal := stats.UniversityCount + stats.CompanyCount + stats.OtherOrgCount
	fmt.Fprintf(w, "  Universities: %d (%.1f%%)\n", stats.UniversityCount, percent(stats.UniversityCount, orgTotal))
	fmt.Fprintf(w, "  Industry:     %d (%.1f%%)\n", stats.CompanyCount, percent(stats.CompanyCount, orgTotal))
	fmt.Fprintf(w, "  Other/Mixed:  %d (%.1f%%)\n", stats.OtherOrgCount, percent(stats.OtherOrgCount, orgTotal))
	fmt.Fprintln(w, "Note: Counts include multiple affiliations per person, so totals may exceed unique attendee count.")
	fmt.Fprintln(w)

	banner(w, "REGISTRATION TIMELINE")
	if !stats.FirstRegistration.IsZero() {
		fmt.Fprintf(w, "First registration: %s\n", stats.FirstRegistration.Format("2006-01-02"))
		fmt.Fprintf(w, "Last registration:  %s\n", stats.LastRegistration.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "Invalid timestamps: %d\n", stats.InvalidTimestamps)
	fmt.Fprintln(w)

	banner(w, "SUMMARY STATISTICS")
	fmt.Fprintf(w, "Total registrations:        %d\n", stats.TotalRegistrations)
	fmt.Fprintf(w, "Confirmed attendees:        %d\n", stats.Confirmed)
	fmt.Fprintf(w, "Maybe attending:            %d\n", stats.Attendance["Maybe, not sure yet"])
	fmt.Fprintf(w, "Not attending:              %d\n", stats.Attendance["No"])
	fmt.Fprintf(w, "Unique affiliations:        %d\n", stats.UniqueAffiliations)
	fmt.Fprintf(w, "Paper submitters:           %d\n", stats.PaperSubmitters)
	fmt.Fprintf(w, "Driving to event:           %d\n", stats.Driving["Yes"])
	fmt.Fprintf(w, "Academic participants:      %d\n", stats.AcademicCount)
	fmt.Fprintf(w, "Industry participants:      %d\n", stats.IndustryCount)
}
