package pdfdoc

import "testing"

func doc(pages ...string) *Document {
	return &Document{pages: pages}
}

func TestCountWords(t *testing.T) {
	d := doc("one two three", "four five", "six")
	n, err := d.CountWords(nil)
	if err != nil {
		t.Fatal(err)
	}
	if n != 6 {
		t.Errorf("expected 6 words, got %d", n)
	}
}

func TestCountWordsIgnoresPages(t *testing.T) {
	d := doc("title page", "one two", "three", "appendix words here")
	n, err := d.CountWords([]string{"1", ">3"})
	if err != nil {
		t.Fatal(err)
	}
	// Page 1 and everything after page 3 are excluded.
	if n != 3 {
		t.Errorf("expected 3 words, got %d", n)
	}
}

func TestCountWordsBadRule(t *testing.T) {
	if _, err := doc("x").CountWords([]string{"abc"}); err == nil {
		t.Error("expected error for malformed page rule")
	}
	if _, err := doc("x").CountWords([]string{">abc"}); err == nil {
		t.Error("expected error for malformed range rule")
	}
}

func TestReferencesPage(t *testing.T) {
	d := doc(
		"Introduction\nSome text.",
		"More text.\nReferences\n[1] A paper.",
		"Appendix",
	)
	if got := d.ReferencesPage(); got != 2 {
		t.Errorf("expected references on page 2, got %d", got)
	}
}

func TestReferencesPageTakesLast(t *testing.T) {
	d := doc("References\nearly mention", "body", "BIBLIOGRAPHY\n[1]")
	if got := d.ReferencesPage(); got != 3 {
		t.Errorf("expected last heading page 3, got %d", got)
	}
}

func TestReferencesPageAbsent(t *testing.T) {
	d := doc("no headings here", "references are cited inline here")
	// An inline mention is not a standalone heading.
	if got := d.ReferencesPage(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestNPages(t *testing.T) {
	if got := doc("a", "b").NPages(); got != 2 {
		t.Errorf("expected 2 pages, got %d", got)
	}
}
