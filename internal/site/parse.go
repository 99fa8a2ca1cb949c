package site

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse reads an HTML document and extracts its title, sections, navigation
// links and stylesheet references. Sections are <section> elements carrying
// an id attribute; navigation links are anchors inside the first <nav>
// element.
func Parse(r io.Reader) (*Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	page := &Page{Title: findTitle(doc)}

	if nav := findElement(doc, atom.Nav); nav != nil {
		collectNavLinks(nav, &page.NavLinks)
	}
	collectSections(doc, &page.Sections)
	collectStylesheets(doc, &page.Stylesheets)

	return page, nil
}

// findTitle extracts the <title> text.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.Title {
		if n.FirstChild != nil {
			return strings.TrimSpace(n.FirstChild.Data)
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// findElement returns the first element with the given tag, depth-first.
func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collectNavLinks gathers anchors under the navigation element. Targets are
// reduced to their fragment, so both "#cfp" and "./index.html#cfp" resolve to
// the section id "cfp". Anchors without a fragment are not section links and
// are skipped.
func collectNavLinks(n *html.Node, links *[]NavLink) {
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		href := attr(n, "href")
		if idx := strings.Index(href, "#"); idx != -1 {
			*links = append(*links, NavLink{
				Label:  collectText(n),
				Target: href[idx+1:],
				Page:   href[:idx],
			})
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectNavLinks(c, links)
	}
}

// collectSections gathers <section> elements carrying an id attribute, in
// document order.
func collectSections(n *html.Node, sections *[]Section) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Section {
		if id := attr(n, "id"); id != "" {
			*sections = append(*sections, Section{
				ID:      id,
				Heading: findHeading(n),
				Body:    sectionBody(n),
			})
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectSections(c, sections)
	}
}

// collectStylesheets gathers href values of <link rel="stylesheet"> elements.
func collectStylesheets(n *html.Node, refs *[]string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Link {
		if strings.EqualFold(attr(n, "rel"), "stylesheet") {
			if href := attr(n, "href"); href != "" {
				*refs = append(*refs, href)
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectStylesheets(c, refs)
	}
}

func isHeading(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

// findHeading returns the text of the first heading element under n.
func findHeading(n *html.Node) string {
	if isHeading(n) {
		return collectText(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if h := findHeading(c); h != "" {
			return h
		}
	}
	return ""
}

// sectionBody returns the section's text content excluding its first heading.
func sectionBody(n *html.Node) string {
	var b strings.Builder
	headingSkipped := false

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if isHeading(n) && !headingSkipped {
			headingSkipped = true
			return
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(b.String()), " ")
}

// collectText returns the concatenated text content of a node.
func collectText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
