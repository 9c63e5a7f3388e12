// Package csvutil exports encoded corpora as CSV, one row per variant.
package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	csvlib "github.com/jszwec/csvutil"

	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var _ diffmark.Exporter = (*Exporter)(nil)

// Row is one CSV record: a variant of base together with its pattern.
type Row struct {
	Base    string `csv:"base"`
	Variant string `csv:"variant"`
	Pattern string `csv:"pattern"`
}

// Exporter writes encoded entries as CSV rows with a base,variant,pattern
// header. Variants are reconstructed from the patterns.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the header followed by one row per pattern. Entries without
// patterns produce no rows.
func (x *Exporter) Export(w io.Writer, entries []diffmark.EncodedEntry) error {
	cw := csv.NewWriter(w)
	enc := csvlib.NewEncoder(cw)
	if err := enc.EncodeHeader(Row{}); err != nil {
		return err
	}

	for _, e := range entries {
		decoded, err := e.Decode()
		if err != nil {
			return err
		}
		for i, p := range e.Patterns {
			if err := enc.Encode(Row{Base: e.Base, Variant: decoded.Variants[i], Pattern: p}); err != nil {
				return fmt.Errorf("entry %q: %w", e.Base, err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// Import reads rows written by Export and regroups consecutive rows sharing a
// base into encoded entries. The variant column is ignored.
func Import(r io.Reader) ([]diffmark.EncodedEntry, error) {
	dec, err := csvlib.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	var entries []diffmark.EncodedEntry
	for {
		var row Row
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if n := len(entries); n > 0 && entries[n-1].Base == row.Base {
			entries[n-1].Patterns = append(entries[n-1].Patterns, row.Pattern)
			continue
		}
		entries = append(entries, diffmark.EncodedEntry{Base: row.Base, Patterns: []string{row.Pattern}})
	}

	return entries, nil
}
