package analyzer

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const mainSource = `"""Top."""

# because of rounding
def add(a, b):
    return a + b
`

const notebookSource = `{
  "nbformat": 4,
  "cells": [
    {"cell_type": "code", "source": "def sub(a, b):\n    return a - b\n"},
    {"cell_type": "markdown", "source": "# Title\n\nHello world."}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func sampleProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "main.py", mainSource)
	writeFile(t, dir, "notes.ipynb", notebookSource)
	writeFile(t, dir, "README.md", "# readme\n")
	writeFile(t, dir, "data.txt", "1,2,3\n")
	writeFile(t, dir, "bad.py", "def broken(:\n")
	return dir
}

func stats(t *testing.T, dir string, opts Options) *ProjectRecord {
	t.Helper()
	record, err := New(dir, opts).Stats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return record
}

func TestStatsEmptyDirectory(t *testing.T) {
	record := stats(t, t.TempDir(), Options{})
	if !reflect.DeepEqual(record, &ProjectRecord{}) {
		t.Errorf("expected all-zero record for empty directory, got %+v", record)
	}
}

func TestStatsMissingRoot(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope"), Options{}).Stats(context.Background()); err == nil {
		t.Error("expected error for missing root")
	}
}

func TestStatsRootMustBeDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file.txt", "x")
	if _, err := New(filepath.Join(dir, "file.txt"), Options{}).Stats(context.Background()); err == nil {
		t.Error("expected error for file root")
	}
}

func TestStatsFileCounts(t *testing.T) {
	record := stats(t, sampleProject(t), Options{})
	if record.NFilesTotal != 5 {
		t.Errorf("expected 5 files, got %d", record.NFilesTotal)
	}
	if record.NFilesPy != 2 {
		t.Errorf("expected 2 python files, got %d", record.NFilesPy)
	}
	if record.NFilesIpynb != 1 {
		t.Errorf("expected 1 notebook, got %d", record.NFilesIpynb)
	}
	if record.NFilesMd != 1 {
		t.Errorf("expected 1 markdown file, got %d", record.NFilesMd)
	}
}

func TestStatsPoolsFileAndCellUnits(t *testing.T) {
	record := stats(t, sampleProject(t), Options{})
	// add from main.py and sub from the notebook code cell share one pool.
	if record.NFunctions != 2 {
		t.Errorf("expected 2 functions, got %d", record.NFunctions)
	}
	if record.MccabeTotal != 2 {
		t.Errorf("expected mccabe total 2, got %d", record.MccabeTotal)
	}
	if record.MccabeMean != 1 {
		t.Errorf("expected mccabe mean 1, got %v", record.MccabeMean)
	}
}

func TestStatsCommentsAndDocstrings(t *testing.T) {
	record := stats(t, sampleProject(t), Options{})
	if record.CommentsCount != 1 {
		t.Errorf("expected 1 comment, got %d", record.CommentsCount)
	}
	// "because of rounding" is a rationale comment.
	if record.CommentsWhyOrWhatTotal != 1 {
		t.Errorf("expected why total 1, got %d", record.CommentsWhyOrWhatTotal)
	}
	if record.DocstringsCount != 1 {
		t.Errorf("expected 1 docstring, got %d", record.DocstringsCount)
	}
}

func TestStatsNotebookCells(t *testing.T) {
	record := stats(t, sampleProject(t), Options{})
	if record.NCellsTotal != 2 || record.NCellsCode != 1 || record.NCellsMarkdown != 1 {
		t.Errorf("unexpected cell counts: %d total, %d code, %d markdown",
			record.NCellsTotal, record.NCellsCode, record.NCellsMarkdown)
	}
	// "# Title\n\nHello world." has 4 whitespace-separated words.
	if record.MarkdownWordsTotal != 4 {
		t.Errorf("expected 4 markdown words, got %d", record.MarkdownWordsTotal)
	}
}

func TestStatsMarkdownFilesNotAnalyzed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "Plenty of words in this file.\n")
	record := stats(t, dir, Options{})
	if record.NFilesMd != 1 {
		t.Errorf("expected 1 markdown file, got %d", record.NFilesMd)
	}
	if record.MarkdownWordsTotal != 0 {
		t.Errorf("expected markdown file content to be ignored, got %d words", record.MarkdownWordsTotal)
	}
}

func TestStatsInvalidFileContainment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.py", mainSource)
	base := stats(t, dir, Options{})

	writeFile(t, dir, "bad.py", "def broken(:\n")
	withBad := stats(t, dir, Options{})

	// The broken file changes the file count and nothing else.
	if withBad.NFilesPy != base.NFilesPy+1 {
		t.Errorf("expected py count to grow by 1")
	}
	if withBad.NChar != base.NChar {
		t.Errorf("expected n_char unchanged, got %d vs %d", withBad.NChar, base.NChar)
	}
	if withBad.MccabeTotal != base.MccabeTotal {
		t.Errorf("expected mccabe total unchanged")
	}
}

func TestStatsRatioSamples(t *testing.T) {
	record := stats(t, sampleProject(t), Options{})
	// Both valid units declare only snake-case names.
	if record.NamesSnakeCaseRatio != 1 {
		t.Errorf("expected snake ratio 1, got %v", record.NamesSnakeCaseRatio)
	}
	if record.NamesPascalCaseRatio != 0 {
		t.Errorf("expected pascal ratio 0, got %v", record.NamesPascalCaseRatio)
	}
}

func TestStatsIgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.py", mainSource)
	writeFile(t, dir, "venv/lib/site.py", mainSource)
	record := stats(t, dir, Options{Ignore: []string{"venv/"}})
	if record.NFilesPy != 1 {
		t.Errorf("expected ignored tree to be skipped, got %d python files", record.NFilesPy)
	}
}

func TestStatsDeterministic(t *testing.T) {
	dir := sampleProject(t)
	first := stats(t, dir, Options{Workers: 4})
	for i := 0; i < 5; i++ {
		if next := stats(t, dir, Options{Workers: 4}); !reflect.DeepEqual(first, next) {
			t.Fatalf("records differ between runs:\n%+v\n%+v", first, next)
		}
	}
}

func TestStatsGitMetadata(t *testing.T) {
	record := stats(t, sampleProject(t), Options{})
	if record.IsRepo || record.NCommits != 0 {
		t.Errorf("expected non-repo metadata, got %+v", record)
	}
}

func TestFieldsOrderStable(t *testing.T) {
	fields := (&ProjectRecord{}).Fields()
	if len(fields) != 93 {
		t.Fatalf("expected 93 fields, got %d", len(fields))
	}
	if fields[0].Name != "is_repo" {
		t.Errorf("expected first field is_repo, got %s", fields[0].Name)
	}
	if fields[len(fields)-1].Name != "markdown_misspelled_total" {
		t.Errorf("expected last field markdown_misspelled_total, got %s", fields[len(fields)-1].Name)
	}
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			t.Errorf("duplicate field %s", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestDistReduce(t *testing.T) {
	var d dist
	d.add(3, 1, 2)
	total, mean, median := d.reduce()
	if total != 6 || mean != 2 || median != 2 {
		t.Errorf("expected (6, 2, 2), got (%v, %v, %v)", total, mean, median)
	}

	var even dist
	even.add(4, 1, 3, 2)
	if _, _, median := even.reduce(); median != 2.5 {
		t.Errorf("expected median 2.5, got %v", median)
	}

	var empty dist
	if total, mean, median := empty.reduce(); total != 0 || mean != 0 || median != 0 {
		t.Errorf("expected zero reduction for empty dist")
	}
}
