package mock

import (
	"io"

	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var (
	_ diffmark.EntryReader  = (*EntryReader)(nil)
	_ diffmark.EntryWriter  = (*EntryWriter)(nil)
	_ diffmark.EncodedStore = (*EncodedStore)(nil)
	_ diffmark.Exporter     = (*Exporter)(nil)
)

// EntryReader is a mock implementation of diffmark.EntryReader.
type EntryReader struct {
	ReadFn func(r io.Reader) ([]diffmark.Entry, error)
}

func (m *EntryReader) Read(r io.Reader) ([]diffmark.Entry, error) {
	return m.ReadFn(r)
}

// EntryWriter is a mock implementation of diffmark.EntryWriter.
type EntryWriter struct {
	WriteFn func(w io.Writer, entries []diffmark.Entry) error
}

func (m *EntryWriter) Write(w io.Writer, entries []diffmark.Entry) error {
	return m.WriteFn(w, entries)
}

// EncodedStore is a mock implementation of diffmark.EncodedStore.
type EncodedStore struct {
	SaveFn func(path string, entries []diffmark.EncodedEntry) error
	LoadFn func(path string) ([]diffmark.EncodedEntry, error)
}

func (m *EncodedStore) Save(path string, entries []diffmark.EncodedEntry) error {
	return m.SaveFn(path, entries)
}

func (m *EncodedStore) Load(path string) ([]diffmark.EncodedEntry, error) {
	return m.LoadFn(path)
}

// Exporter is a mock implementation of diffmark.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, entries []diffmark.EncodedEntry) error
}

func (m *Exporter) Export(w io.Writer, entries []diffmark.EncodedEntry) error {
	return m.ExportFn(w, entries)
}
