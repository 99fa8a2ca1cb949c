package registration

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// affiliationMapping folds the form's free-text affiliation variations into
// canonical names. Matching is substring-based in both directions, the same
// loose matching the committee's original cleanup used.
type affiliationMapping struct {
	canonical  string
	variations []string
}

var affiliationMappings = []affiliationMapping{
	{"ai2", []string{"ai2"}},
	{"AI21", []string{"ai21", "ai21 labs"}},
	{"Amazon", []string{"amazon"}},
	{"Ariel University", []string{"ariel", "ariel university"}},
	{"Bar Ilan University", []string{"bar ilan", "bar-ilan", "biu", "bar ilan university", "bar-ilan university",
		"bar illan university", "bar ilan /"}},
	{"Ben Gurion University", []string{"ben gurion", "ben-gurion", "bgu", "ben gurion university",
		"ben-gurion university", "ben gurion university of the negev"}},
	{"Bold", []string{"bold", "bold.ai", "bold ai"}},
	{"Dicta", []string{"dicta", "dicta: israel center for text analysis"}},
	{"GE Healthcare", []string{"ge healthcare", "ge health"}},
	{"Genesys", []string{"genesys"}},
	{"Gong", []string{"gong", "gong io", "gong.io"}},
	{"Google", []string{"google", "google research"}},
	{"Hebrew University", []string{"hebrew university", "huji", "the hebrew university",
		"the hebrew university of jerusalem", "hebrew university of jerusalem"}},
	{"IBM", []string{"ibm", "ibm r", "ibm research", "ibm resaerch", "ibm research - isrl"}},
	{"IDF", []string{"idf"}},
	{"Intel", []string{"intel"}},
	{"Microsoft", []string{"microsoft"}},
	{"Nexxen", []string{"nexxen"}},
	{"OriginAI", []string{"originai"}},
	{"Reichman University", []string{"reichman", "reichman university", "reichmann university"}},
	{"Rival Security", []string{"rival security", "rival"}},
	{"Salesforce", []string{"salesforce", "salesforce.com"}},
	{"Second Nature", []string{"second nature", "second nature ai"}},
	{"Sheba AI Center", []string{"sheba", "sheba ai center", "sheba medical center", "arc sheba ai center"}},
	{"Technion", []string{"technion", "technion - israel institute of technology",
		"technion- israel institute for technology"}},
	{"Tel Aviv University", []string{"tau", "tel aviv university"}},
	{"Walmart", []string{"walmart", "walmart (aspectiva)", "walmart aspectiva"}},
	{"Weizmann Institute", []string{"weizmann", "weizmann institute", "weizmann institute of science"}},
	{"Wix", []string{"wix", "wix.com"}},
}

var titleCaser = cases.Title(language.English)

// NormalizeAffiliation maps a raw affiliation field to one or more canonical
// names. People list multiple affiliations separated by commas, slashes or
// "and"; a bare email address is matched by its domain.
func NormalizeAffiliation(raw string) []string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "-" {
		return []string{notSpecified}
	}

	// An email address in the affiliation field: match on the domain.
	if strings.Contains(raw, "@") && emailPattern.MatchString(raw) {
		raw = raw[strings.Index(raw, "@")+1:]
	}

	parts := []string{raw}
	for _, sep := range []string{",", "/", " and ", "&"} {
		if strings.Contains(raw, sep) {
			parts = strings.Split(raw, sep)
			break
		}
	}

	var normalized []string
	appendUnique := func(name string) {
		for _, existing := range normalized {
			if existing == name {
				return
			}
		}
		normalized = append(normalized, name)
	}

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		matched := false
		for _, m := range affiliationMappings {
			for _, variation := range m.variations {
				if strings.Contains(part, variation) || strings.Contains(variation, part) {
					appendUnique(m.canonical)
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}

		if !matched {
			appendUnique(titleCaser.String(part))
		}
	}

	if len(normalized) == 0 {
		return []string{notSpecified}
	}
	return normalized
}

// HasAffiliation reports whether a record names at least one real
// affiliation.
func HasAffiliation(affiliations []string) bool {
	return len(affiliations) > 0 && !(len(affiliations) == 1 && affiliations[0] == notSpecified)
}
