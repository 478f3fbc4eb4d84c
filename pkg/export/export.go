package export

import (
	"fmt"
	"strings"
)

// Table is an ordered grid of string cells with a header row.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Renderer turns a Table into a downloadable document.
type Renderer interface {
	Render(table Table) ([]byte, error)
	ContentType() string
	Extension() string
}

// ForFormat returns the renderer registered for format, matched
// case-insensitively.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "csv":
		return CSV{}, nil
	case "pdf":
		return PDF{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

func (t Table) validate() error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table requires at least one column")
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	return nil
}
