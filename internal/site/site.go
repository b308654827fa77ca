// Package site models the static documentation content docsurf browses:
// site metadata, the hierarchical sidebar, pre-rendered pages, and the
// example and benchmark groups shown on the home screen.
//
// Content is authored as TOML definition files plus plain-text page files.
// A default bundle is compiled into the binary; a directory with the same
// layout can override it at startup.
package site

// Site holds the top-level site metadata from site.toml.
type Site struct {
	Name    string `toml:"name"`
	Tagline string `toml:"tagline"`
	BaseURL string `toml:"base_url"`
	RepoURL string `toml:"repo_url"`
}

// Section is one sidebar heading with its ordered pages.
type Section struct {
	Title string `toml:"title"`
	Pages []Page `toml:"page"`
}

// Page is one documentation page. Body is the pre-rendered text content,
// filled in from File when the bundle is loaded.
type Page struct {
	Slug  string `toml:"slug"`
	Title string `toml:"title"`
	File  string `toml:"file"`
	Body  string `toml:"-"`
}

// Example is one category in the home-screen example switcher.
type Example struct {
	Key   string `toml:"key"`
	Label string `toml:"label"`
	Code  string `toml:"code"`
}

// Benchmark is one panel in the home-screen benchmark switcher.
type Benchmark struct {
	Key     string            `toml:"key"`
	Label   string            `toml:"label"`
	Results []BenchmarkResult `toml:"result"`
}

// BenchmarkResult is one framework's score within a benchmark panel.
type BenchmarkResult struct {
	Framework string `toml:"framework"`
	RPS       int    `toml:"rps"`
	Latency   string `toml:"latency"`
}

// Bundle is a fully loaded content set.
type Bundle struct {
	Site       Site
	Sections   []Section
	Examples   []Example
	Benchmarks []Benchmark
}

// FindPage returns the page with the given slug, or nil.
func (b *Bundle) FindPage(slug string) *Page {
	for si := range b.Sections {
		for pi := range b.Sections[si].Pages {
			if b.Sections[si].Pages[pi].Slug == slug {
				return &b.Sections[si].Pages[pi]
			}
		}
	}
	return nil
}

// PageCount returns the total number of pages across all sections.
func (b *Bundle) PageCount() int {
	n := 0
	for _, s := range b.Sections {
		n += len(s.Pages)
	}
	return n
}
