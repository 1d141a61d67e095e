// Package ingest loads the bibliographic table from a spreadsheet and
// normalizes it into records. Validation is column-presence only: a
// table missing any required column is rejected wholesale, reporting
// every missing name at once.
package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cmagno/acervo/internal/record"
)

// RequiredColumns are the twelve column names every input table must
// carry. Order matches the original file convention; matching is by
// name, not position, and extra columns are ignored.
var RequiredColumns = []string{
	"id_registro", "id_extracao", "titulo_artigo", "area_publicacao",
	"periodico", "ano_publicacao", "autoria", "link_acesso",
	"doi", "categoria", "conceito", "descricao",
}

// MissingColumnsError reports every required column absent from the
// header, in RequiredColumns order.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}

// FromRows converts a raw table into records. The header row names the
// columns; data rows shorter than the header are padded with empty
// strings. Each record receives its row offset as the position index.
func FromRows(header []string, rows [][]string) ([]record.Record, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	records := make([]record.Record, 0, len(rows))
	for pos, row := range rows {
		cell := func(name string) string {
			i := cols[name]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		records = append(records, record.Record{
			IDRegistro:     cell("id_registro"),
			IDExtracao:     cell("id_extracao"),
			TituloArtigo:   cell("titulo_artigo"),
			AreaPublicacao: cell("area_publicacao"),
			Periodico:      cell("periodico"),
			AnoPublicacao:  cell("ano_publicacao"),
			Autoria:        cell("autoria"),
			LinkAcesso:     cell("link_acesso"),
			DOI:            cell("doi"),
			Categoria:      cell("categoria"),
			Conceito:       cell("conceito"),
			Descricao:      cell("descricao"),
			Position:       pos,
		})
	}
	return records, nil
}

// ReadFile loads records from an .xlsx file on disk.
func ReadFile(path string) ([]record.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()
	return fromWorkbook(f)
}

// Read loads records from .xlsx bytes, fully buffered.
func Read(r io.Reader) ([]record.Record, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}
	defer f.Close()
	return fromWorkbook(f)
}

// fromWorkbook pulls the first sheet, treating row one as the header.
func fromWorkbook(f *excelize.File) ([]record.Record, error) {
	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &MissingColumnsError{Columns: append([]string(nil), RequiredColumns...)}
	}
	return FromRows(rows[0], rows[1:])
}
