package site

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Definition file names expected at the root of a content tree.
const (
	siteFile       = "site.toml"
	sidebarFile    = "sidebar.toml"
	examplesFile   = "examples.toml"
	benchmarksFile = "benchmarks.toml"
)

// Load parses a full content bundle out of fsys. Page bodies are read
// eagerly so the TUI never touches the filesystem after startup.
func Load(fsys fs.FS) (*Bundle, error) {
	b := &Bundle{}

	if err := unmarshalFile(fsys, siteFile, &b.Site); err != nil {
		return nil, err
	}

	var sidebar struct {
		Sections []Section `toml:"section"`
	}
	if err := unmarshalFile(fsys, sidebarFile, &sidebar); err != nil {
		return nil, err
	}
	b.Sections = sidebar.Sections

	var examples struct {
		Examples []Example `toml:"example"`
	}
	if err := unmarshalFile(fsys, examplesFile, &examples); err != nil {
		return nil, err
	}
	b.Examples = examples.Examples

	var benchmarks struct {
		Benchmarks []Benchmark `toml:"benchmark"`
	}
	if err := unmarshalFile(fsys, benchmarksFile, &benchmarks); err != nil {
		return nil, err
	}
	b.Benchmarks = benchmarks.Benchmarks

	if err := b.validate(); err != nil {
		return nil, err
	}

	// Pull in the page bodies referenced by the sidebar.
	for si := range b.Sections {
		for pi := range b.Sections[si].Pages {
			p := &b.Sections[si].Pages[pi]
			data, err := fs.ReadFile(fsys, p.File)
			if err != nil {
				return nil, &MissingFileError{File: p.File, Err: err}
			}
			p.Body = strings.TrimRight(string(data), "\n")
		}
	}

	return b, nil
}

// LoadDir loads a bundle from a directory on disk.
func LoadDir(path string) (*Bundle, error) {
	return Load(os.DirFS(path))
}

// LoadDefault loads the bundle compiled into the binary.
func LoadDefault() (*Bundle, error) {
	return Load(defaultContent())
}

// unmarshalFile reads and decodes one TOML definition file.
func unmarshalFile(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &MissingFileError{File: name, Err: err}
		}
		return err
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return &ParseError{File: name, Err: err}
	}
	return nil
}

// validate rejects authored mistakes that would make navigation ambiguous.
// Runtime lookups stay forgiving (an unknown key is a no-op); authoring
// errors surface here, at load time.
func (b *Bundle) validate() error {
	slugs := make(map[string]bool)
	for _, s := range b.Sections {
		if s.Title == "" {
			return &ParseError{File: sidebarFile, Reason: "section with empty title"}
		}
		for _, p := range s.Pages {
			if p.Slug == "" {
				return &ParseError{File: sidebarFile, Reason: "page with empty slug in section " + s.Title}
			}
			if slugs[p.Slug] {
				return &ParseError{File: sidebarFile, Reason: "duplicate page slug " + p.Slug}
			}
			slugs[p.Slug] = true
			if p.File == "" {
				return &ParseError{File: sidebarFile, Reason: "page " + p.Slug + " has no content file"}
			}
		}
	}

	if err := uniqueKeys(examplesFile, exampleKeys(b.Examples)); err != nil {
		return err
	}
	if err := uniqueKeys(benchmarksFile, benchmarkKeys(b.Benchmarks)); err != nil {
		return err
	}

	for _, bench := range b.Benchmarks {
		for _, r := range bench.Results {
			if r.RPS < 0 {
				return &ParseError{File: benchmarksFile, Reason: "negative rps for " + r.Framework + " in " + bench.Key}
			}
		}
	}
	return nil
}

func uniqueKeys(file string, keys []string) error {
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == "" {
			return &ParseError{File: file, Reason: "entry with empty key"}
		}
		if seen[k] {
			return &ParseError{File: file, Reason: "duplicate key " + k}
		}
		seen[k] = true
	}
	return nil
}

func exampleKeys(examples []Example) []string {
	keys := make([]string, len(examples))
	for i, e := range examples {
		keys[i] = e.Key
	}
	return keys
}

func benchmarkKeys(benchmarks []Benchmark) []string {
	keys := make([]string, len(benchmarks))
	for i, b := range benchmarks {
		keys[i] = b.Key
	}
	return keys
}
