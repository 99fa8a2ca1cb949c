package registration

import (
	"sort"
	"time"
)

// academicRoles and industryRoles bucket the form's free-text roles; anything
// else is counted as "other".
var academicRoles = map[string]bool{
	"Graduate student": true, "Student (BA/BSc)": true, "Faculty member": true,
	"PhD student": true, "PhD Student": true, "Post-doc": true,
	"MSc student": true, "M.Sc. Student": true, "MSc Graduate": true,
	"Msc student": true, "MSc Student in CS": true, "M.S.c Student": true,
	"MS Student": true,
}

var industryRoles = map[string]bool{
	"Industry researcher": true, "Industry engineer": true, "Industry member": true,
	"Data Executive": true, "Principal Engineering Lead": true, "Product Manager": true,
	"Industry NLP Product Manager": true,
}

var universities = map[string]bool{
	"Bar Ilan University": true, "Ben Gurion University": true, "Hebrew University": true,
	"Technion": true, "Tel Aviv University": true, "Weizmann Institute": true,
	"Ariel University": true, "Reichman University": true, "University of Haifa": true,
	"Haifa University": true,
}

var companies = map[string]bool{
	"Google": true, "Microsoft": true, "IBM": true, "Amazon": true, "AI21": true,
	"ai2": true, "Intel": true, "Salesforce": true, "Walmart": true, "Gong": true,
	"Wix": true, "Bold": true, "OriginAI": true, "Genesys": true,
	"Second Nature": true, "GE Healthcare": true, "Arm": true, "Nexxen": true,
}

// CountItem is a name with its occurrence count, for ranked listings.
type CountItem struct {
	Name  string
	Count int
}

// Stats summarizes a cleaned registration set. Per-affiliation counts are
// exploded: a person with two affiliations counts once for each.
type Stats struct {
	TotalRegistrations int
	DuplicatesRemoved  int
	ValidEmails        int
	WithAffiliation    int

	Attendance map[string]int
	Confirmed  int // attending == "Yes"

	TopAffiliations    []CountItem // confirmed attendees only
	UniqueAffiliations int

	Roles         map[string]int
	AcademicCount int
	IndustryCount int
	OtherRoles    int

	Papers          map[string]int
	PaperSubmitters int

	Driving map[string]int

	UniversityCount int
	CompanyCount    int
	OtherOrgCount   int

	FirstRegistration time.Time
	LastRegistration  time.Time
	InvalidTimestamps int
}

// Compute derives the registration statistics from a cleaned set. topN caps
// the affiliation ranking (the committee's reports use 20).
func Compute(clean CleanResult, topN int) *Stats {
	stats := &Stats{
		TotalRegistrations: len(clean.Records),
		DuplicatesRemoved:  clean.DuplicatesRemoved,
		Attendance:         make(map[string]int),
		Roles:              make(map[string]int),
		Papers:             make(map[string]int),
		Driving:            make(map[string]int),
	}

	var attending []Record
	for _, rec := range clean.Records {
		if rec.Email != "" {
			stats.ValidEmails++
		}
		if HasAffiliation(rec.Affiliations) {
			stats.WithAffiliation++
		}
		stats.Attendance[rec.Attending]++
		if rec.Attending == "Yes" {
			attending = append(attending, rec)
		}
	}
	stats.Confirmed = len(attending)

	affiliationCounts := make(map[string]int)
	for _, rec := range attending {
		stats.Roles[rec.Role]++
		stats.Papers[rec.Paper]++
		stats.Driving[rec.Driving]++

		switch {
		case academicRoles[rec.Role]:
			stats.AcademicCount++
		case industryRoles[rec.Role]:
			stats.IndustryCount++
		default:
			stats.OtherRoles++
		}

		for _, affiliation := range rec.Affiliations {
			affiliationCounts[affiliation]++
			switch {
			case universities[affiliation]:
				stats.UniversityCount++
			case companies[affiliation]:
				stats.CompanyCount++
			default:
				stats.OtherOrgCount++
			}
		}

		if rec.Timestamp.IsZero() {
			stats.InvalidTimestamps++
			continue
		}
		if stats.FirstRegistration.IsZero() || rec.Timestamp.Before(stats.FirstRegistration) {
			stats.FirstRegistration = rec.Timestamp
		}
		if rec.Timestamp.After(stats.LastRegistration) {
			stats.LastRegistration = rec.Timestamp
		}
	}

	stats.PaperSubmitters = stats.Papers["Yes"]
	stats.UniqueAffiliations = len(affiliationCounts)
	stats.TopAffiliations = rank(affiliationCounts, topN)

	return stats
}

// rank sorts counts descending, breaking ties by name for stable output.
func rank(counts map[string]int, topN int) []CountItem {
	items := make([]CountItem, 0, len(counts))
	for name, count := range counts {
		items = append(items, CountItem{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Name < items[j].Name
	})
	if topN > 0 && len(items) > topN {
		items = items[:topN]
	}
	return items
}
