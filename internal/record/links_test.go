package record

import "testing"

func TestResolveLinksFallback(t *testing.T) {
	links := ResolveLinks("Foo Bar", "not-a-url", "")
	want := "https://scholar.google.com/scholar?q=Foo+Bar"
	if links.LinkURL != want {
		t.Errorf("LinkURL = %q, want %q", links.LinkURL, want)
	}
	if links.DOIURL != want {
		t.Errorf("DOIURL = %q, want %q", links.DOIURL, want)
	}
}

func TestResolveLinksVerbatim(t *testing.T) {
	links := ResolveLinks("Foo Bar", "https://example.com/x", "http://doi.org/10.1/abc")
	if links.LinkURL != "https://example.com/x" {
		t.Errorf("LinkURL = %q, want the stored URL unchanged", links.LinkURL)
	}
	if links.DOIURL != "http://doi.org/10.1/abc" {
		t.Errorf("DOIURL = %q, want the stored URL unchanged", links.DOIURL)
	}
}

func TestResolveLinksIndependent(t *testing.T) {
	// A valid link must not rescue a malformed DOI, and vice versa.
	links := ResolveLinks("Título", "https://example.com/a", "10.1234/xyz")
	if links.LinkURL != "https://example.com/a" {
		t.Errorf("LinkURL = %q", links.LinkURL)
	}
	if links.DOIURL == links.LinkURL {
		t.Error("DOIURL should have fallen back, not reused LinkURL")
	}
	if links.DOIURL != ScholarURL("Título") {
		t.Errorf("DOIURL = %q, want scholar fallback", links.DOIURL)
	}
}

func TestResolveLinksCaseInsensitivePrefix(t *testing.T) {
	links := ResolveLinks("x", "HTTPS://Example.com/Y", "")
	if links.LinkURL != "HTTPS://Example.com/Y" {
		t.Errorf("LinkURL = %q, prefix check must be case-insensitive", links.LinkURL)
	}
}

func TestScholarURLEmptyTitle(t *testing.T) {
	if got, want := ScholarURL(""), "https://scholar.google.com/scholar?q="; got != want {
		t.Errorf("ScholarURL(\"\") = %q, want %q", got, want)
	}
}

func TestScholarURLSpecialChars(t *testing.T) {
	got := ScholarURL("a&b=c")
	want := "https://scholar.google.com/scholar?q=a%26b%3Dc"
	if got != want {
		t.Errorf("ScholarURL = %q, want %q", got, want)
	}
}
