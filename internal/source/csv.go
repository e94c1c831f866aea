// Package source reads the tabular and coordinate inputs of the converters.
package source

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrMissingField is returned when a row has no value for a requested column.
var ErrMissingField = errors.New("missing field")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Row is one data line keyed by the header names.
type Row map[string]string

// Field returns the named column or ErrMissingField.
func (r Row) Field(name string) (string, error) {
	v, ok := r[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrMissingField, name)
	}
	return v, nil
}

// ReadCSV parses a header line followed by data lines. Short lines simply lack
// the trailing keys; extra values without a header are dropped. An input with
// no header yields no rows.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(skipBOM(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	rows := make([]Row, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows), err)
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i >= len(rec) {
				break
			}
			row[name] = rec[i]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f)
}

// skipBOM drops a leading UTF-8 byte order mark left by spreadsheet exports.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == string(utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
