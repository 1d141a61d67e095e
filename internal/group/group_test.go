package group

import (
	"reflect"
	"testing"

	"github.com/cmagno/acervo/internal/record"
)

func rec(id, ano, cat, conc string, pos int) record.Record {
	return record.Record{
		IDRegistro:    id,
		AnoPublicacao: ano,
		Categoria:     cat,
		Conceito:      conc,
		Position:      pos,
	}
}

func TestBuildOrdering(t *testing.T) {
	records := []record.Record{
		rec("3", "2020", "B", "y", 0),
		rec("1", "2019", "A", "x", 1),
		rec("2", "2021", "A", "x", 2),
		rec("1", "2018", "A", "w", 3),
		rec("9", "2017", "B", "z", 4),
	}

	idx := Build(records)

	if got := idx.CategoryNames(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("categories = %v, want [A B]", got)
	}
	a := idx.Category("A")
	if len(a.Concepts) != 2 || a.Concepts[0].Name != "w" || a.Concepts[1].Name != "x" {
		t.Fatalf("concepts of A = %+v, want [w x]", a.Concepts)
	}
	x := a.Concepts[1]
	if len(x.Records) != 2 || x.Records[0].IDRegistro != "1" || x.Records[1].IDRegistro != "2" {
		t.Errorf("records of A/x out of order: %+v", x.Records)
	}
}

func TestBuildDeterministic(t *testing.T) {
	records := []record.Record{
		rec("2", "2020", "cat", "c1", 0),
		rec("1", "2021", "cat", "c2", 1),
		rec("1", "2019", "cat", "c1", 2),
	}
	first := Build(records)
	second := Build(records)
	if !reflect.DeepEqual(first, second) {
		t.Error("two builds of the same input differ")
	}
}

func TestBuildSortWithinBucket(t *testing.T) {
	// Same id_registro twice; ano breaks the tie.
	records := []record.Record{
		rec("5", "2022", "c", "k", 0),
		rec("5", "2019", "c", "k", 1),
		rec("4", "2030", "c", "k", 2),
	}
	idx := Build(records)
	got := idx.Categories[0].Concepts[0].Records
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if prev.IDRegistro > cur.IDRegistro ||
			(prev.IDRegistro == cur.IDRegistro && prev.AnoPublicacao > cur.AnoPublicacao) {
			t.Errorf("bucket not sorted at %d: %+v before %+v", i, prev, cur)
		}
	}
	if got[0].IDRegistro != "4" {
		t.Errorf("first record = %q, want 4", got[0].IDRegistro)
	}
	if got[1].AnoPublicacao != "2019" {
		t.Errorf("tie not broken by year: %+v", got[1])
	}
}

func TestBuildNumericLabelsSortLexicographically(t *testing.T) {
	records := []record.Record{
		rec("1", "", "cat", "2", 0),
		rec("1", "", "cat", "10", 1),
	}
	idx := Build(records)
	concepts := idx.Categories[0].Concepts
	if concepts[0].Name != "10" || concepts[1].Name != "2" {
		t.Errorf("concept order = [%s %s], want [10 2] (string compare)", concepts[0].Name, concepts[1].Name)
	}
}

func TestBuildStableForEqualKeys(t *testing.T) {
	// Records identical in all four sort keys keep input order.
	a := rec("1", "2020", "c", "k", 0)
	b := rec("1", "2020", "c", "k", 1)
	idx := Build([]record.Record{a, b})
	got := idx.Categories[0].Concepts[0].Records
	if got[0].Position != 0 || got[1].Position != 1 {
		t.Errorf("stable sort violated: positions %d, %d", got[0].Position, got[1].Position)
	}
}

func TestBuildEmpty(t *testing.T) {
	idx := Build(nil)
	if len(idx.Categories) != 0 {
		t.Errorf("expected empty index, got %d categories", len(idx.Categories))
	}
	if idx.RecordCount() != 0 {
		t.Errorf("RecordCount = %d, want 0", idx.RecordCount())
	}
	if idx.Category("x") != nil {
		t.Error("lookup on empty index should return nil")
	}
}

func TestRecordCount(t *testing.T) {
	idx := Build([]record.Record{
		rec("1", "", "a", "x", 0),
		rec("2", "", "a", "y", 1),
		rec("3", "", "b", "x", 2),
	})
	if idx.RecordCount() != 3 {
		t.Errorf("RecordCount = %d, want 3", idx.RecordCount())
	}
}
