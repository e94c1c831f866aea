// Package convert turns a trail CSV blob into coordinate-free records.
package convert

import (
	"fmt"
	"strings"

	"github.com/woozymasta/trails/internal/source"
	"github.com/woozymasta/trails/internal/trail"
)

// Convert parses the whole CSV text. Unlike the coordinate merge there is no
// per-row recovery: the first bad row fails the conversion.
func Convert(data string) ([]trail.Attributes, error) {
	rows, err := source.ReadCSV(strings.NewReader(strings.TrimSpace(data)))
	if err != nil {
		return nil, err
	}

	out := make([]trail.Attributes, 0, len(rows))
	for i, row := range rows {
		a, err := trail.FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out = append(out, a)
	}

	return out, nil
}
