// Package session owns the mutable browsing state: the group index,
// per-bucket page cursors, the read-state store and the category
// filter. Every user action is a synchronous method on Session; there
// are no ambient globals and no partial mutations on failure.
package session

import (
	"github.com/cmagno/acervo/internal/group"
	"github.com/cmagno/acervo/internal/page"
	"github.com/cmagno/acervo/internal/progress"
	"github.com/cmagno/acervo/internal/record"
)

// Session composes the index, cursors, progress and filter into the
// view model the presentation layer consumes.
type Session struct {
	idx      *group.Index
	cursors  *page.Cursors
	prog     *progress.Store
	selected map[string]bool // category filter; transient, never persisted
}

// New creates a session around an existing progress store (usually
// preloaded from the local cache). Progress outlives ingestions.
func New(prog *progress.Store, pageSize int) *Session {
	if prog == nil {
		prog = progress.NewStore()
	}
	return &Session{
		cursors:  page.NewCursors(pageSize),
		prog:     prog,
		selected: make(map[string]bool),
	}
}

// Ingest replaces the group index with one built from the given
// records. Cursors and the category filter reset; the progress store
// is deliberately kept, so read-state survives re-uploads wherever
// record keys coincide.
func (s *Session) Ingest(records []record.Record) {
	s.idx = group.Build(records)
	s.cursors.Reset()
	s.selected = make(map[string]bool)
}

// HasData reports whether a table has been ingested.
func (s *Session) HasData() bool {
	return s.idx != nil
}

// Index exposes the current group index (nil before first ingest).
func (s *Session) Index() *group.Index {
	return s.idx
}

// Progress exposes the read-state store.
func (s *Session) Progress() *progress.Store {
	return s.prog
}

// Categories returns every category label in index order.
func (s *Session) Categories() []string {
	if s.idx == nil {
		return nil
	}
	return s.idx.CategoryNames()
}

// SetFilter replaces the selected-category set. Unknown labels are
// kept; they simply match nothing.
func (s *Session) SetFilter(categories []string) {
	s.selected = make(map[string]bool, len(categories))
	for _, c := range categories {
		s.selected[c] = true
	}
}

// ToggleCategory flips one category in the filter selection.
func (s *Session) ToggleCategory(name string) {
	if s.selected[name] {
		delete(s.selected, name)
	} else {
		s.selected[name] = true
	}
}

// Selected reports whether a category is in the filter.
func (s *Session) Selected(name string) bool {
	return s.selected[name]
}

// SelectionEmpty reports whether no category is selected. The UI shows
// a hint instead of records in that case, mirroring the original flow.
func (s *Session) SelectionEmpty() bool {
	return len(s.selected) == 0
}

// ToggleRead sets the read flag for a record key. Explicit command
// from the presentation layer; no implicit two-way binding.
func (s *Session) ToggleRead(key string, read bool) {
	s.prog.Set(key, read)
}

// RevealMore advances the page cursor of one bucket.
func (s *Session) RevealMore(category, concept string) {
	b := page.Bucket{Category: category, Concept: concept}
	total := s.bucketTotal(category, concept)
	s.cursors.Advance(b, total)
}

func (s *Session) bucketTotal(category, concept string) int {
	if s.idx == nil {
		return 0
	}
	cat := s.idx.Category(category)
	if cat == nil {
		return 0
	}
	for _, conc := range cat.Concepts {
		if conc.Name == concept {
			return len(conc.Records)
		}
	}
	return 0
}
