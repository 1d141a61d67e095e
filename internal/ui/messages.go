// Package ui provides the Bubble Tea TUI for acervo.
package ui

import "github.com/cmagno/acervo/internal/record"

// TableLoaded is sent when a spreadsheet has been read and validated.
// The session is only mutated in Update, after this arrives.
type TableLoaded struct {
	Path    string
	Records []record.Record
	Err     error
}

// ProgressFileLoaded is sent with the raw bytes of a progress file to
// merge. Parsing and merging happen in Update.
type ProgressFileLoaded struct {
	Path string
	Data []byte
	Err  error
}

// ProgressExported is sent when a progress file has been written.
type ProgressExported struct {
	Path string
	Err  error
}

// ProgressFlushed is sent when the read-state cache has been saved.
// Wrote is false when the flush was coalesced by the rate limiter.
type ProgressFlushed struct {
	Wrote bool
	Err   error
}
