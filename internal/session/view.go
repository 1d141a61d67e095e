package session

import (
	"github.com/cmagno/acervo/internal/page"
	"github.com/cmagno/acervo/internal/record"
)

// RecordView is one renderable record: the raw fields plus derived
// key, read badge and resolved links.
type RecordView struct {
	record.Record
	Key     string
	Read    bool
	LinkURL string
	DOIURL  string
}

// ConceptView is one bucket with only its currently revealed records.
type ConceptView struct {
	Name    string
	Records []RecordView
	Shown   int
	Total   int
	HasMore bool
}

// CategoryView groups the concept views of one selected category.
type CategoryView struct {
	Name     string
	Concepts []ConceptView
}

// View assembles the renderable structure for the selected categories,
// in index order. Rendering a record registers its key in the progress
// store (unread by default), so exports cover everything displayed.
func (s *Session) View() []CategoryView {
	if s.idx == nil || s.SelectionEmpty() {
		return nil
	}

	var out []CategoryView
	for _, cat := range s.idx.Categories {
		if !s.selected[cat.Name] {
			continue
		}
		cv := CategoryView{Name: cat.Name}
		for _, conc := range cat.Concepts {
			b := page.Bucket{Category: cat.Name, Concept: conc.Name}
			total := len(conc.Records)
			shown := s.cursors.Visible(b, total)

			view := ConceptView{
				Name:    conc.Name,
				Shown:   shown,
				Total:   total,
				HasMore: !s.cursors.Exhausted(b, total),
			}
			for _, r := range conc.Records[:shown] {
				key := r.Key()
				links := record.ResolveLinks(r.TituloArtigo, r.LinkAcesso, r.DOI)
				view.Records = append(view.Records, RecordView{
					Record:  r,
					Key:     key,
					Read:    s.prog.GetOrInsert(key),
					LinkURL: links.LinkURL,
					DOIURL:  links.DOIURL,
				})
			}
			cv.Concepts = append(cv.Concepts, view)
		}
		out = append(out, cv)
	}
	return out
}
