package progress

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestGetOrInsertRegistersUnread(t *testing.T) {
	s := NewStore()
	if s.GetOrInsert("k::1-a::0") {
		t.Error("fresh key reported as read")
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1 after first lookup", s.Len())
	}
	s.Set("k::1-a::0", true)
	if !s.GetOrInsert("k::1-a::0") {
		t.Error("read flag lost after Set")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	s := NewStore()
	s.Set("k::1-a::0", true)
	s.Set("k::2-b::1", false)

	data, err := s.Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	other := NewStore()
	n, err := other.ImportMerge(data)
	if err != nil {
		t.Fatalf("ImportMerge failed: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d keys, want 2", n)
	}
	if !reflect.DeepEqual(other.Snapshot(), s.Snapshot()) {
		t.Errorf("round trip lost data: %v vs %v", other.Snapshot(), s.Snapshot())
	}
}

func TestImportMergeOverwrites(t *testing.T) {
	s := FromMap(map[string]bool{"a": true, "b": false})

	n, err := s.ImportMerge([]byte(`{"b": true, "c": true}`))
	if err != nil {
		t.Fatalf("ImportMerge failed: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d keys, want 2", n)
	}
	want := map[string]bool{"a": true, "b": true, "c": true}
	if got := s.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("merge result = %v, want %v", got, want)
	}
}

func TestImportMergeNonObject(t *testing.T) {
	s := FromMap(map[string]bool{"a": true})
	before := s.Snapshot()

	_, err := s.ImportMerge([]byte(`[1, 2, 3]`))
	if !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected ErrMalformedPayload, got %v", err)
	}
	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("store mutated on rejected import")
	}
}

func TestImportMergeInvalidJSON(t *testing.T) {
	s := NewStore()
	_, err := s.ImportMerge([]byte(`{not json`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrMalformedPayload) {
		t.Error("parse failure should not be reported as a malformed payload")
	}
	if s.Len() != 0 {
		t.Errorf("store mutated on parse failure: %v", s.Snapshot())
	}
}

func TestImportMergeTruthyCoercion(t *testing.T) {
	s := NewStore()
	blob := `{
		"null": null, "false": false, "zero": 0, "empty": "",
		"true": true, "one": 1, "str": "yes", "arr": [], "obj": {}
	}`
	if _, err := s.ImportMerge([]byte(blob)); err != nil {
		t.Fatalf("ImportMerge failed: %v", err)
	}
	want := map[string]bool{
		"null": false, "false": false, "zero": false, "empty": false,
		"true": true, "one": true, "str": true, "arr": true, "obj": true,
	}
	if got := s.Snapshot(); !reflect.DeepEqual(got, want) {
		t.Errorf("coercion = %v, want %v", got, want)
	}
}

func TestExportEmptyStore(t *testing.T) {
	data, err := NewStore().Export()
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Errorf("empty export = %q, want {}", data)
	}
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2026, 8, 23, 14, 5, 9, 0, time.UTC)
	got := ExportFilename(ts)
	want := "progresso_leitura_23_08_2026-14_05.json"
	if got != want {
		t.Errorf("ExportFilename = %q, want %q", got, want)
	}
}
