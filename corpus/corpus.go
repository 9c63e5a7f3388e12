// Package corpus reads and writes word corpora in the slash-separated line
// format: one entry per line, the base word first, then its variants.
//
//	play/played/playing/plays
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var (
	_ diffmark.EntryReader = (*Reader)(nil)
	_ diffmark.EntryWriter = (*Writer)(nil)
)

// maxLineSize is the maximum size for a single corpus line (1MB).
const maxLineSize = 1024 * 1024

// Reader parses corpus text into entries.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read returns every entry in r. Blank lines are skipped and a trailing
// carriage return is stripped from each line.
func (c *Reader) Read(r io.Reader) ([]diffmark.Entry, error) {
	var entries []diffmark.Entry
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, diffmark.Separator)
		entries = append(entries, diffmark.Entry{Base: fields[0], Variants: fields[1:]})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
	}

	return entries, nil
}

// Writer serializes entries as corpus text.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write writes one line per entry.
func (c *Writer) Write(w io.Writer, entries []diffmark.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		bw.WriteString(e.Base)
		for _, v := range e.Variants {
			bw.WriteString(diffmark.Separator)
			bw.WriteString(v)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
