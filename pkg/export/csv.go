package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// CSV renders tables as comma separated values.
type CSV struct{}

func (CSV) ContentType() string { return "text/csv" }

func (CSV) Extension() string { return "csv" }

// Render writes the header row followed by every table row.
func (CSV) Render(table Table) ([]byte, error) {
	if err := table.validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(table.Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
