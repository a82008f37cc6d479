// Package notebook decomposes Jupyter notebooks (nbformat 4) into cells.
package notebook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Cell types as they appear in the notebook JSON.
const (
	CellCode     = "code"
	CellMarkdown = "markdown"
	CellRaw      = "raw"
)

// Cell is one notebook cell with its merged source text.
type Cell struct {
	Type   string
	Source string
}

// Notebook holds the ordered cell list of one parsed notebook.
type Notebook struct {
	Cells []Cell
}

// rawNotebook mirrors the subset of the nbformat 4 schema the engine
// needs. The source field may be a single string or a list of lines.
type rawNotebook struct {
	NBFormat int       `json:"nbformat"`
	Cells    []rawCell `json:"cells"`
}

type rawCell struct {
	CellType string     `json:"cell_type"`
	Source   cellSource `json:"source"`
}

type cellSource string

func (s *cellSource) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*s = cellSource(single)
		return nil
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("cell source is neither string nor string list")
	}
	*s = cellSource(strings.Join(lines, ""))
	return nil
}

// Read parses raw notebook bytes. Malformed JSON or a pre-4 nbformat is a
// parse error; callers treat that as an invalid file, not a fatal one.
func Read(data []byte) (*Notebook, error) {
	var raw rawNotebook
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode notebook: %w", err)
	}
	if raw.NBFormat != 0 && raw.NBFormat < 4 {
		return nil, fmt.Errorf("unsupported nbformat %d", raw.NBFormat)
	}
	if raw.Cells == nil {
		return nil, fmt.Errorf("notebook has no cell list")
	}
	nb := &Notebook{Cells: make([]Cell, 0, len(raw.Cells))}
	for _, c := range raw.Cells {
		nb.Cells = append(nb.Cells, Cell{Type: c.CellType, Source: string(c.Source)})
	}
	return nb, nil
}

// NCells counts cells, optionally filtered by type. An empty cellType
// counts every cell.
func (nb *Notebook) NCells(cellType string) int {
	if cellType == "" {
		return len(nb.Cells)
	}
	n := 0
	for _, c := range nb.Cells {
		if c.Type == cellType {
			n++
		}
	}
	return n
}

// CellsOf returns the non-blank cells of the given type in notebook order.
func (nb *Notebook) CellsOf(cellType string) []Cell {
	var out []Cell
	for _, c := range nb.Cells {
		if c.Type == cellType && strings.TrimSpace(c.Source) != "" {
			out = append(out, c)
		}
	}
	return out
}
