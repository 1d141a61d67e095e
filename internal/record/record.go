// Package record defines the bibliographic record type, its stable
// identity scheme, and access-link resolution.
package record

import "fmt"

// Record is one row of the ingested table. All fields are kept as
// strings; numeric-looking values (years, registry IDs) are coerced to
// their string form once at ingestion so comparisons stay deterministic.
type Record struct {
	IDRegistro     string
	IDExtracao     string
	TituloArtigo   string
	AreaPublicacao string
	Periodico      string
	AnoPublicacao  string
	Autoria        string
	LinkAcesso     string
	DOI            string
	Categoria      string
	Conceito       string
	Descricao      string

	// Position is the row offset in the unmodified input. It never
	// changes after ingestion and only feeds Key; display order comes
	// from the group index.
	Position int
}

// Key derives the stable identity string for a record. Two records
// collide only if they share id_registro, conceito AND original row
// position, which the input format guarantees cannot happen.
//
// The key embeds the original row position, so re-uploading the same
// data with rows reordered yields different keys. Known fragility,
// kept for compatibility with existing progress files.
func Key(idRegistro, conceito string, position int) string {
	return fmt.Sprintf("k::%s-%s::%d", idRegistro, conceito, position)
}

// Key returns the record's identity string.
func (r Record) Key() string {
	return Key(r.IDRegistro, r.Conceito, r.Position)
}
