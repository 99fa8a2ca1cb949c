package site

// Placeholder is the literal marker for section content that is not yet finalized.
// A section with no body text must carry this marker so the navigation contract
// is never broken by missing content.
const Placeholder = "TBD"

// SectionOrder is the canonical section order of the site. The main document
// must contain exactly these sections, in this order, and the navigation bar
// must link to each of them in the same order.
var SectionOrder = []string{"home", "cfp", "program", "posters", "faq"}

// Section is a named, anchor-addressable block of content within the page.
// Its identity is the anchor id used by navigation links.
type Section struct {
	ID      string
	Heading string
	Body    string
}

// NavLink is a reference from the navigation bar to a section anchor. Page is
// empty for in-page links and holds the document path for links into another
// page (e.g. "./index.html#cfp" from a secondary page).
type NavLink struct {
	Label  string
	Target string // anchor id, without the leading '#'
	Page   string
}

// Page is the parsed document: ordered sections, navigation links and
// stylesheet references.
type Page struct {
	Title       string
	Sections    []Section
	NavLinks    []NavLink
	Stylesheets []string
}

// Section returns the section with the given anchor id, if present.
func (p *Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIDs returns the anchor ids of all sections in document order.
func (p *Page) SectionIDs() []string {
	ids := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		ids[i] = s.ID
	}
	return ids
}
