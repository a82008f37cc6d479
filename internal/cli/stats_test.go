package cli

import (
	"strings"
	"testing"

	"github.com/teachnology/codelytics/internal/analyzer"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{true, "true"},
		{0, "0"},
		{42, "42"},
		{1.5, "1.5"},
		{2.0, "2"},
		{0.3333333333333333, "0.3333333333333333"},
	}
	for _, c := range cases {
		if got := formatValue(c.value); got != c.want {
			t.Errorf("formatValue(%v): expected %q, got %q", c.value, c.want, got)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	record := &analyzer.ProjectRecord{NFilesTotal: 3, MccabeMean: 1.5}
	if err := writeCSV(&sb, record); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and value rows, got %d lines", len(lines))
	}
	header := strings.Split(lines[0], ",")
	values := strings.Split(lines[1], ",")
	if len(header) != 93 || len(values) != 93 {
		t.Errorf("expected 93 columns, got %d header / %d values", len(header), len(values))
	}
	if header[0] != "is_repo" || values[0] != "false" {
		t.Errorf("unexpected first column: %s=%s", header[0], values[0])
	}
}

func TestWriteJSON(t *testing.T) {
	var sb strings.Builder
	if err := writeJSON(&sb, &analyzer.ProjectRecord{NFilesPy: 2}); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.Contains(out, `"n_files_py": 2`) {
		t.Errorf("expected n_files_py in output, got %s", out)
	}
	if !strings.Contains(out, `"names_snake_case_ratio": 0`) {
		t.Errorf("expected zero-filled ratio field in output, got %s", out)
	}
}
