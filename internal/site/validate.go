package site

import (
	"errors"
	"fmt"
)

// Validate checks the navigation contract of the main document and returns
// one error per authoring defect:
//
//   - the sections must be exactly SectionOrder, in that order
//   - every navigation link must target an existing section anchor
//   - the navigation bar must carry exactly one link per section, in
//     section order
//   - every section must have a heading
//   - a section with no body text must carry the placeholder marker
func (p *Page) Validate() []error {
	var defects []error

	ids := p.SectionIDs()
	if len(ids) != len(SectionOrder) {
		defects = append(defects, fmt.Errorf("expected %d sections, found %d (%v)", len(SectionOrder), len(ids), ids))
	} else {
		for i, want := range SectionOrder {
			if ids[i] != want {
				defects = append(defects, fmt.Errorf("section %d: expected anchor %q, found %q", i, want, ids[i]))
			}
		}
	}

	anchors := make(map[string]bool, len(ids))
	for _, id := range ids {
		anchors[id] = true
	}
	for _, link := range p.NavLinks {
		if !anchors[link.Target] {
			defects = append(defects, fmt.Errorf("navigation link %q targets missing anchor %q", link.Label, link.Target))
		}
	}

	if len(p.NavLinks) != len(SectionOrder) {
		defects = append(defects, fmt.Errorf("expected %d navigation links, found %d", len(SectionOrder), len(p.NavLinks)))
	} else {
		for i, want := range SectionOrder {
			if p.NavLinks[i].Target != want {
				defects = append(defects, fmt.Errorf("navigation link %d: expected target %q, found %q", i, want, p.NavLinks[i].Target))
			}
		}
	}

	for _, s := range p.Sections {
		if s.Heading == "" {
			defects = append(defects, fmt.Errorf("section %q has no heading", s.ID))
		}
		if s.Body == "" {
			defects = append(defects, fmt.Errorf("section %q has no content and no %q marker", s.ID, Placeholder))
		}
	}

	return defects
}

// CheckLinks verifies only the link-target invariant: every navigation link
// resolves to an existing section anchor. Used for secondary pages that do
// not carry the full section set.
func (p *Page) CheckLinks() error {
	anchors := make(map[string]bool, len(p.Sections))
	for _, s := range p.Sections {
		anchors[s.ID] = true
	}
	var defects []error
	for _, link := range p.NavLinks {
		if link.Page != "" {
			continue
		}
		if !anchors[link.Target] {
			defects = append(defects, fmt.Errorf("navigation link %q targets missing anchor %q", link.Label, link.Target))
		}
	}
	return errors.Join(defects...)
}
