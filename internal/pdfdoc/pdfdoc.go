// Package pdfdoc extracts word counts from report PDFs that accompany
// student projects.
package pdfdoc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dslipak/pdf"
)

// referencesPattern matches a standalone bibliography heading on its own
// line, in any case.
var referencesPattern = regexp.MustCompile(`(?im)^\s*(references|bibliography)\s*$`)

// Document is one opened PDF with its extracted per-page text.
type Document struct {
	pages []string
}

// Open reads a PDF and extracts the plain text of every page. Pages whose
// text cannot be decoded become empty strings rather than failing the
// whole document.
func Open(path string) (*Document, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	doc := &Document{pages: make([]string, 0, r.NumPage())}
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			doc.pages = append(doc.pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		doc.pages = append(doc.pages, text)
	}
	return doc, nil
}

// NPages returns the page count.
func (d *Document) NPages() int { return len(d.pages) }

// CountWords counts the words on all pages not excluded by the ignore
// rules. Each rule is either a 1-based page number ("3") or an open range
// (">10" excludes every page after page 10).
func (d *Document) CountWords(ignore []string) (int, error) {
	skip, err := ignoredPages(ignore, len(d.pages))
	if err != nil {
		return 0, err
	}
	n := 0
	for i, text := range d.pages {
		if skip[i+1] {
			continue
		}
		n += len(strings.Fields(text))
	}
	return n, nil
}

// ReferencesPage returns the 1-based number of the last page carrying a
// standalone references or bibliography heading, or 0 when no page does.
// Reports conventionally put nothing but appendices after it, so callers
// pass ">N" to CountWords to stop counting there.
func (d *Document) ReferencesPage() int {
	last := 0
	for i, text := range d.pages {
		if referencesPattern.MatchString(text) {
			last = i + 1
		}
	}
	return last
}

// ignoredPages expands the ignore rules into a page-number set.
func ignoredPages(rules []string, nPages int) (map[int]bool, error) {
	skip := make(map[int]bool)
	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if after, ok := strings.CutPrefix(rule, ">"); ok {
			from, err := strconv.Atoi(strings.TrimSpace(after))
			if err != nil {
				return nil, fmt.Errorf("bad page rule %q: %w", rule, err)
			}
			for p := from + 1; p <= nPages; p++ {
				skip[p] = true
			}
			continue
		}
		p, err := strconv.Atoi(rule)
		if err != nil {
			return nil, fmt.Errorf("bad page rule %q: %w", rule, err)
		}
		skip[p] = true
	}
	return skip, nil
}
