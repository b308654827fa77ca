package panels

import (
	"testing"

	"github.com/mgale/docsurf/internal/site"
)

func testSections() []site.Section {
	return []site.Section{
		{
			Title: "Getting Started",
			Pages: []site.Page{
				{Slug: "install", Title: "Installation", Body: "install body"},
				{Slug: "config", Title: "Configuration", Body: "config body"},
			},
		},
		{
			Title: "Basics",
			Pages: []site.Page{
				{Slug: "routing", Title: "Routing", Body: "routing body"},
			},
		},
	}
}

func TestSidebarStartsOnFirstPage(t *testing.T) {
	s := NewSidebar(testSections())

	p := s.Selected()
	if p == nil || p.Slug != "install" {
		t.Fatalf("Selected() = %+v, want install", p)
	}
	if got := s.VisiblePageCount(); got != 3 {
		t.Errorf("VisiblePageCount() = %d, want 3", got)
	}
}

func TestSidebarCursorSkipsHeadings(t *testing.T) {
	s := NewSidebar(testSections())

	// Moving past the last page of a section lands on the first page of
	// the next one, never on the heading row.
	s = s.CursorDown()
	if p := s.Selected(); p == nil || p.Slug != "config" {
		t.Fatalf("after one down: Selected() = %+v, want config", p)
	}
	s = s.CursorDown()
	if p := s.Selected(); p == nil || p.Slug != "routing" {
		t.Fatalf("after two down: Selected() = %+v, want routing", p)
	}

	// At the bottom, down stays put.
	s = s.CursorDown()
	if p := s.Selected(); p == nil || p.Slug != "routing" {
		t.Fatalf("at bottom: Selected() = %+v, want routing", p)
	}

	s = s.CursorUp()
	if p := s.Selected(); p == nil || p.Slug != "config" {
		t.Fatalf("after up: Selected() = %+v, want config", p)
	}
}

func TestSidebarHomeEnd(t *testing.T) {
	s := NewSidebar(testSections())

	s = s.CursorEnd()
	if p := s.Selected(); p == nil || p.Slug != "routing" {
		t.Fatalf("CursorEnd: Selected() = %+v, want routing", p)
	}

	s = s.CursorHome()
	if p := s.Selected(); p == nil || p.Slug != "install" {
		t.Fatalf("CursorHome: Selected() = %+v, want install", p)
	}
}

func TestSidebarFilter(t *testing.T) {
	s := NewSidebar(testSections())

	s = s.SetFilter("rout")
	if got := s.VisiblePageCount(); got != 1 {
		t.Fatalf("VisiblePageCount() = %d with filter, want 1", got)
	}
	if p := s.Selected(); p == nil || p.Slug != "routing" {
		t.Fatalf("Selected() = %+v with filter, want routing", p)
	}

	// Matching is case-insensitive.
	s = s.SetFilter("CONFIG")
	if p := s.Selected(); p == nil || p.Slug != "config" {
		t.Fatalf("Selected() = %+v with upper-case filter, want config", p)
	}

	// Clearing restores every page.
	s = s.SetFilter("")
	if got := s.VisiblePageCount(); got != 3 {
		t.Errorf("VisiblePageCount() = %d after clear, want 3", got)
	}
}

func TestSidebarFilterNoMatches(t *testing.T) {
	s := NewSidebar(testSections())

	s = s.SetFilter("zzz")
	if got := s.VisiblePageCount(); got != 0 {
		t.Fatalf("VisiblePageCount() = %d, want 0", got)
	}
	if p := s.Selected(); p != nil {
		t.Fatalf("Selected() = %+v with no matches, want nil", p)
	}

	// Navigation on an empty tree must not panic.
	s = s.CursorDown()
	s = s.CursorUp()
	s = s.CursorHome()
	s = s.CursorEnd()
	if p := s.Selected(); p != nil {
		t.Fatalf("Selected() = %+v after moves on empty tree, want nil", p)
	}
}

func TestSidebarEmptySections(t *testing.T) {
	s := NewSidebar(nil)

	if p := s.Selected(); p != nil {
		t.Fatalf("Selected() = %+v for empty sidebar, want nil", p)
	}
	if got := s.VisiblePageCount(); got != 0 {
		t.Errorf("VisiblePageCount() = %d, want 0", got)
	}
}
