// Package group builds the two-level category → concept index the
// browsing UI walks. The index is rebuilt in full on every ingestion
// and immutable afterwards.
package group

import (
	"sort"

	"github.com/cmagno/acervo/internal/record"
)

// Index is the ordered category → concept → records structure.
// Category and concept iteration order is part of the contract:
// lexicographic ascending, established once by the stable sort below.
type Index struct {
	Categories []Category
}

// Category is one top-level group with its concepts in order.
type Category struct {
	Name     string
	Concepts []Concept
}

// Concept is one (category, concept) bucket with its records in order.
type Concept struct {
	Name    string
	Records []record.Record
}

// Build sorts records by (categoria, conceito, id_registro,
// ano_publicacao) ascending and partitions the sorted stream by
// first-seen category, then first-seen concept. All keys compare as
// strings, so a numeric-looking concept "10" sorts before "2".
// Deterministic: same input, same index.
func Build(records []record.Record) *Index {
	sorted := make([]record.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Categoria != b.Categoria {
			return a.Categoria < b.Categoria
		}
		if a.Conceito != b.Conceito {
			return a.Conceito < b.Conceito
		}
		if a.IDRegistro != b.IDRegistro {
			return a.IDRegistro < b.IDRegistro
		}
		return a.AnoPublicacao < b.AnoPublicacao
	})

	idx := &Index{}
	for _, r := range sorted {
		if len(idx.Categories) == 0 || idx.Categories[len(idx.Categories)-1].Name != r.Categoria {
			idx.Categories = append(idx.Categories, Category{Name: r.Categoria})
		}
		cat := &idx.Categories[len(idx.Categories)-1]
		if len(cat.Concepts) == 0 || cat.Concepts[len(cat.Concepts)-1].Name != r.Conceito {
			cat.Concepts = append(cat.Concepts, Concept{Name: r.Conceito})
		}
		conc := &cat.Concepts[len(cat.Concepts)-1]
		conc.Records = append(conc.Records, r)
	}
	return idx
}

// CategoryNames returns the category labels in index order.
func (idx *Index) CategoryNames() []string {
	names := make([]string, len(idx.Categories))
	for i, c := range idx.Categories {
		names[i] = c.Name
	}
	return names
}

// Category looks up a category by name. Returns nil when absent.
func (idx *Index) Category(name string) *Category {
	for i := range idx.Categories {
		if idx.Categories[i].Name == name {
			return &idx.Categories[i]
		}
	}
	return nil
}

// RecordCount returns the total number of records in the index.
func (idx *Index) RecordCount() int {
	n := 0
	for _, c := range idx.Categories {
		for _, conc := range c.Concepts {
			n += len(conc.Records)
		}
	}
	return n
}
