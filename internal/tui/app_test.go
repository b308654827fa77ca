package tui

import (
	"errors"
	"testing"

	"github.com/mgale/docsurf/internal/config"
	"github.com/mgale/docsurf/internal/site"
	"github.com/mgale/docsurf/internal/tui/panels"
)

func testBundle() *site.Bundle {
	return &site.Bundle{
		Site: site.Site{Name: "Testfw", Tagline: "testing"},
		Sections: []site.Section{
			{Title: "Basics", Pages: []site.Page{
				{Slug: "intro", Title: "Introduction", Body: "intro body"},
				{Slug: "usage", Title: "Usage", Body: "usage body"},
			}},
		},
		Examples: []site.Example{
			{Key: "routing", Label: "Routing", Code: "code a"},
			{Key: "middleware", Label: "Middleware", Code: "code b"},
		},
		Benchmarks: []site.Benchmark{
			{Key: "plaintext", Label: "Plaintext"},
			{Key: "json", Label: "JSON"},
		},
	}
}

func TestNewAppStartScreen(t *testing.T) {
	cfg := config.Default()
	m := NewApp(cfg, testBundle())
	if m.screen != ScreenHome {
		t.Errorf("screen = %v, want home", m.screen)
	}

	cfg = config.Default()
	cfg.Viewer.Start = config.ScreenDocs
	m = NewApp(cfg, testBundle())
	if m.screen != ScreenDocs {
		t.Errorf("screen = %v, want docs", m.screen)
	}
}

func TestNewAppDecksStartOnFirstCategory(t *testing.T) {
	m := NewApp(config.Default(), testBundle())

	if got := m.examples.ActiveKey(); got != "routing" {
		t.Errorf("examples ActiveKey() = %q, want %q", got, "routing")
	}
	if got := m.benchmarks.ActiveKey(); got != "plaintext" {
		t.Errorf("benchmarks ActiveKey() = %q, want %q", got, "plaintext")
	}
}

func TestPageSelectedOpensPage(t *testing.T) {
	m := NewApp(config.Default(), testBundle())
	m.screen = ScreenDocs

	page := *m.bundle.FindPage("usage")
	model, _ := m.Update(panels.PageSelectedMsg{Page: page})
	m = model.(App)

	if m.docsFocus != focusPage {
		t.Errorf("docsFocus = %d after page select, want %d", m.docsFocus, focusPage)
	}
	if p := m.pageView.Page(); p == nil || p.Slug != "usage" {
		t.Errorf("pageView.Page() = %+v, want usage", p)
	}
}

func TestBundleReloadResetsDeckState(t *testing.T) {
	m := NewApp(config.Default(), testBundle())
	m.examples = m.examples.Select("middleware")
	m.benchmarks = m.benchmarks.Select("json")

	model, _ := m.Update(bundleReloadedMsg{bundle: testBundle()})
	m = model.(App)

	// A reload behaves like a fresh page load: everything back to the
	// first category.
	if got := m.examples.ActiveKey(); got != "routing" {
		t.Errorf("examples ActiveKey() = %q after reload, want %q", got, "routing")
	}
	if got := m.benchmarks.ActiveKey(); got != "plaintext" {
		t.Errorf("benchmarks ActiveKey() = %q after reload, want %q", got, "plaintext")
	}
	if !m.toast.Active {
		t.Error("expected a toast after reload")
	}
}

func TestBundleReloadKeepsOpenPage(t *testing.T) {
	m := NewApp(config.Default(), testBundle())
	m.screen = ScreenDocs
	page := *m.bundle.FindPage("usage")
	model, _ := m.Update(panels.PageSelectedMsg{Page: page})
	m = model.(App)

	model, _ = m.Update(bundleReloadedMsg{bundle: testBundle()})
	m = model.(App)

	if p := m.pageView.Page(); p == nil || p.Slug != "usage" {
		t.Errorf("pageView.Page() = %+v after reload, want usage", p)
	}
}

func TestBundleReloadDropsVanishedPage(t *testing.T) {
	m := NewApp(config.Default(), testBundle())
	m.screen = ScreenDocs
	page := *m.bundle.FindPage("usage")
	model, _ := m.Update(panels.PageSelectedMsg{Page: page})
	m = model.(App)

	smaller := testBundle()
	smaller.Sections[0].Pages = smaller.Sections[0].Pages[:1] // drops usage
	model, _ = m.Update(bundleReloadedMsg{bundle: smaller})
	m = model.(App)

	if p := m.pageView.Page(); p != nil {
		t.Errorf("pageView.Page() = %+v after page vanished, want nil", p)
	}
	if m.docsFocus != focusSidebar {
		t.Errorf("docsFocus = %d after page vanished, want sidebar", m.docsFocus)
	}
}

func TestErrMsgShowsErrorToast(t *testing.T) {
	m := NewApp(config.Default(), testBundle())

	model, _ := m.Update(errMsg{err: errors.New("boom")})
	m = model.(App)

	if !m.toast.Active {
		t.Fatal("expected an active toast")
	}
	if !m.toast.IsError {
		t.Error("expected an error toast")
	}
}
