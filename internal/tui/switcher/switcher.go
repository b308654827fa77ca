// Package switcher holds the active-category state shared by the home
// screen decks. A Switcher pairs an ordered group of selectors with an
// ordered group of content panels; at most one of each is active at a
// time, and selecting a category key moves the active flag in both
// groups together.
package switcher

// Selector is one clickable category choice.
type Selector struct {
	Key    string
	Label  string
	Active bool
}

// Panel is the content block shown for one category.
type Panel struct {
	Key     string
	Content string
	Active  bool
}

// Switcher tracks which selector/panel pair is active. Instances are
// independent: two switchers never share state.
type Switcher struct {
	selectors []Selector
	panels    []Panel
}

// New builds a switcher over the given groups. The first selector and
// first panel start active. The input slices are copied, so callers may
// reuse them. Empty groups are valid and produce an inert switcher.
func New(selectors []Selector, panels []Panel) *Switcher {
	s := &Switcher{
		selectors: make([]Selector, len(selectors)),
		panels:    make([]Panel, len(panels)),
	}
	copy(s.selectors, selectors)
	copy(s.panels, panels)

	for i := range s.selectors {
		s.selectors[i].Active = i == 0
	}
	for i := range s.panels {
		s.panels[i].Active = i == 0
	}
	return s
}

// Select activates the selector and panel whose key equals key. Every
// other active flag is cleared first, so at most one per group remains
// set afterwards. A key with no match on one side leaves that side with
// nothing active; this is not an error.
func (s *Switcher) Select(key string) {
	for i := range s.selectors {
		s.selectors[i].Active = s.selectors[i].Key == key
	}
	for i := range s.panels {
		s.panels[i].Active = s.panels[i].Key == key
	}
}

// SelectIndex activates the selector/panel pair at position i in the
// selector order. Out-of-range indexes are ignored.
func (s *Switcher) SelectIndex(i int) {
	if i < 0 || i >= len(s.selectors) {
		return
	}
	s.Select(s.selectors[i].Key)
}

// Next activates the category after the current one, wrapping to the
// first past the end.
func (s *Switcher) Next() {
	s.step(1)
}

// Prev activates the category before the current one, wrapping to the
// last before the start.
func (s *Switcher) Prev() {
	s.step(-1)
}

func (s *Switcher) step(delta int) {
	n := len(s.selectors)
	if n == 0 {
		return
	}
	cur := s.activeIndex()
	if cur < 0 {
		// Nothing active, recover to the first category.
		s.Select(s.selectors[0].Key)
		return
	}
	s.Select(s.selectors[(cur+delta+n)%n].Key)
}

func (s *Switcher) activeIndex() int {
	for i := range s.selectors {
		if s.selectors[i].Active {
			return i
		}
	}
	return -1
}

// ActiveKey returns the active selector's key, or "" when none is
// active.
func (s *Switcher) ActiveKey() string {
	if i := s.activeIndex(); i >= 0 {
		return s.selectors[i].Key
	}
	return ""
}

// ActivePanel returns a copy of the active panel, or nil when no panel
// is active.
func (s *Switcher) ActivePanel() *Panel {
	for i := range s.panels {
		if s.panels[i].Active {
			p := s.panels[i]
			return &p
		}
	}
	return nil
}

// Selectors returns a copy of the selector group in order.
func (s *Switcher) Selectors() []Selector {
	out := make([]Selector, len(s.selectors))
	copy(out, s.selectors)
	return out
}

// Panels returns a copy of the panel group in order.
func (s *Switcher) Panels() []Panel {
	out := make([]Panel, len(s.panels))
	copy(out, s.panels)
	return out
}

// Len reports the number of selectors.
func (s *Switcher) Len() int {
	return len(s.selectors)
}
