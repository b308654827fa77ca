package panels

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mgale/docsurf/internal/site"
)

func longPage(lines int) site.Page {
	var b strings.Builder
	for i := 0; i < lines; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	return site.Page{
		Slug:  "long",
		Title: "Long Page",
		Body:  strings.TrimRight(b.String(), "\n"),
	}
}

func TestPageViewEmpty(t *testing.T) {
	v := NewPageView()

	if p := v.Page(); p != nil {
		t.Errorf("Page() = %+v, want nil", p)
	}
	out := v.View(40, 12, true)
	if !strings.Contains(out, "Select a page") {
		t.Error("empty viewer does not show the placeholder")
	}
}

func TestPageViewSetPageResetsScroll(t *testing.T) {
	v := NewPageView()
	v.SetPage(longPage(50))
	v.ScrollPageDown()

	v.SetPage(longPage(30))

	if got := v.ScrollOffset(); got != 0 {
		t.Errorf("ScrollOffset() = %d after SetPage, want 0", got)
	}
}

func TestPageViewScrollUpAfterBottom(t *testing.T) {
	v := NewPageView()
	v.SetPage(longPage(50))

	v.ScrollBottom()
	bottom := v.View(40, 12, true)
	if !strings.Contains(bottom, "line 49") {
		t.Fatal("view after ScrollBottom does not show the last line")
	}

	v.ScrollUp()
	above := v.View(40, 12, true)

	if above == bottom {
		t.Error("view did not change on the first ScrollUp after ScrollBottom")
	}
	if strings.Contains(above, "line 49") {
		t.Error("last line still visible after scrolling up from the bottom")
	}
}

func TestPageViewScrollClampPersists(t *testing.T) {
	v := NewPageView()
	v.SetPage(longPage(50))

	for i := 0; i < 200; i++ {
		v.ScrollDown()
	}
	v.View(40, 12, true)

	// 50 lines in a 10-line viewport leaves offsets 0..40.
	if got := v.ScrollOffset(); got != 40 {
		t.Errorf("ScrollOffset() = %d after render, want 40", got)
	}
}

func TestPageViewScrollUpStopsAtTop(t *testing.T) {
	v := NewPageView()
	v.SetPage(longPage(50))

	v.ScrollUp()
	v.ScrollPageUp()

	if got := v.ScrollOffset(); got != 0 {
		t.Errorf("ScrollOffset() = %d, want 0", got)
	}
}

func TestPageViewShortPageNeverScrolls(t *testing.T) {
	v := NewPageView()
	v.SetPage(longPage(3))

	v.ScrollBottom()
	v.View(40, 12, true)

	if got := v.ScrollOffset(); got != 0 {
		t.Errorf("ScrollOffset() = %d for a page shorter than the viewport, want 0", got)
	}
}
