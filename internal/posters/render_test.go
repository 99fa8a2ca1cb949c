package posters

import (
	"bytes"
	"strings"
	"testing"

	"iscol-site/internal/site"
)

func TestRender(t *testing.T) {
	posters := []Poster{
		{Title: "Parsing Hebrew with Small Models", Authors: "Dana Levi, Yoav Katz", Session: 1},
		{Title: "Prompting <Strategies> for NER & RE", Authors: "Rina Gold", Session: 3},
	}

	var buf bytes.Buffer
	if err := Render(&buf, posters); err != nil {
		t.Fatalf("failed to render posters page: %v", err)
	}
	body := buf.String()

	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("expected HTML5 doctype")
	}
	if !strings.Contains(body, "Parsing Hebrew with Small Models") {
		t.Error("expected poster title in output")
	}
	// The template engine must escape raw CSV content.
	if !strings.Contains(body, "Prompting &lt;Strategies&gt; for NER &amp; RE") {
		t.Error("expected escaped poster title in output")
	}
	if strings.Contains(body, "<Strategies>") {
		t.Error("raw markup from CSV leaked into output")
	}
	for _, time := range SessionTimes {
		if !strings.Contains(body, time) {
			t.Errorf("expected session time %q in output", time)
		}
	}
}

func TestRenderedPageLinksBackToMainDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil); err != nil {
		t.Fatalf("failed to render posters page: %v", err)
	}

	page, err := site.Parse(&buf)
	if err != nil {
		t.Fatalf("failed to parse rendered page: %v", err)
	}

	if _, ok := page.Section("posters"); !ok {
		t.Error("expected a posters section")
	}
	if err := page.CheckLinks(); err != nil {
		t.Errorf("rendered page has dead in-page links: %v", err)
	}

	// Every navigation link on the generated page leads back into the main
	// document's sections.
	for _, link := range page.NavLinks {
		if link.Page == "" {
			continue
		}
		found := false
		for _, id := range site.SectionOrder {
			if link.Target == id {
				found = true
			}
		}
		if !found {
			t.Errorf("nav link %q targets unknown main-page anchor %q", link.Label, link.Target)
		}
	}
}
