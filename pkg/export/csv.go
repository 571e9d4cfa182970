package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrymomot/formcatalog/core/catalog"
)

// ErrInvalidSheet is returned by ReadCSV for malformed input.
var ErrInvalidSheet = errors.New("invalid translation sheet")

// CSVHeader is the first row of every sheet.
func CSVHeader() []string {
	header := []string{"key"}
	for _, l := range catalog.Locales() {
		header = append(header, string(l))
	}
	return header
}

// WriteCSV writes one row per leaf: the key path followed by the five texts.
func WriteCSV(w io.Writer, c *catalog.Catalog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader()); err != nil {
		return fmt.Errorf("export: write csv: %w", err)
	}
	for _, rec := range c.Records() {
		row := append([]string{rec.Path}, rec.Text.Values()...)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: write csv: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a sheet produced by WriteCSV. The header must match
// CSVHeader exactly; key paths must be non-empty and unique.
func ReadCSV(r io.Reader) ([]catalog.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader())

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidSheet)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSheet, err)
	}
	if !slices.Equal(header, CSVHeader()) {
		return nil, fmt.Errorf("%w: unexpected header %v", ErrInvalidSheet, header)
	}

	var out []catalog.Record
	seen := make(map[string]struct{})
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSheet, err)
		}

		path := row[0]
		if path == "" {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: empty key on line %d", ErrInvalidSheet, line)
		}
		if _, dup := seen[path]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidSheet, path)
		}
		seen[path] = struct{}{}

		out = append(out, catalog.Record{
			Path: path,
			Text: catalog.Entry(row[1], row[2], row[3], row[4], row[5]),
		})
	}
	return out, nil
}
