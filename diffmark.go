// Package diffmark encodes the transformation of a base string into a related
// string as a compact textual pattern, and reconstructs the related string by
// applying the pattern to the base.
//
// A corpus of word forms can then be stored as one base word per entry plus a
// short pattern per variant:
//
//	play/played/playing  =>  play/ed/ing
//
// Diff generates patterns, Mark applies them and Validate checks their
// syntax. All three are pure functions and safe for concurrent use.
package diffmark

import (
	"context"
	"fmt"
	"io"
)

// Separator delimits the base word and its variants in corpus text.
const Separator = "/"

// Entry is one corpus line: a base word and its variants.
type Entry struct {
	Base     string
	Variants []string
}

// Size returns the number of bytes the entry occupies in corpus form.
func (e Entry) Size() int {
	n := len(e.Base)
	for _, v := range e.Variants {
		n += 1 + len(v)
	}
	return n
}

// EncodedEntry is an Entry whose variants are stored as patterns against the
// base word.
type EncodedEntry struct {
	Base     string   `json:"base"`
	Patterns []string `json:"patterns"`
}

// Size returns the number of bytes the entry occupies in corpus form.
func (e EncodedEntry) Size() int {
	n := len(e.Base)
	for _, p := range e.Patterns {
		n += 1 + len(p)
	}
	return n
}

// EncodeEntry computes one pattern per variant of e.
func EncodeEntry(e Entry) EncodedEntry {
	patterns := make([]string, len(e.Variants))
	for i, v := range e.Variants {
		patterns[i] = Diff(e.Base, v)
	}
	return EncodedEntry{Base: e.Base, Patterns: patterns}
}

// Decode reconstructs the variants of e. It fails on the first pattern that
// is not well formed.
func (e EncodedEntry) Decode() (Entry, error) {
	variants := make([]string, len(e.Patterns))
	for i, p := range e.Patterns {
		v, err := Mark(e.Base, p)
		if err != nil {
			return Entry{}, &EntryError{Base: e.Base, Index: i, Err: err}
		}
		variants[i] = v
	}
	return Entry{Base: e.Base, Variants: variants}, nil
}

// EntryError reports a pattern of an encoded entry that could not be applied.
type EntryError struct {
	Base  string
	Index int // position of the pattern within the entry
	Err   error
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %q pattern %d: %v", e.Base, e.Index, e.Err)
}

// Unwrap returns the underlying syntax error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// EntryReader parses corpus text into entries.
type EntryReader interface {
	// Read returns every entry in r, in order.
	Read(r io.Reader) ([]Entry, error)
}

// EntryWriter serializes entries back into corpus text.
type EntryWriter interface {
	Write(w io.Writer, entries []Entry) error
}

// Encoder turns entries into encoded entries, preserving order.
type Encoder interface {
	Encode(ctx context.Context, entries []Entry) ([]EncodedEntry, error)
}

// EncodedStore persists encoded entries at a path.
type EncodedStore interface {
	Save(path string, entries []EncodedEntry) error
	Load(path string) ([]EncodedEntry, error)
}

// Exporter writes encoded entries in a tabular format.
type Exporter interface {
	Export(w io.Writer, entries []EncodedEntry) error
}

// Renderer prints encoded entries together with their reconstructed words.
type Renderer interface {
	Render(w io.Writer, entries []EncodedEntry) error
}

// Viewer displays encoded entries interactively and blocks until the user
// exits.
type Viewer interface {
	View(ctx context.Context, entries []EncodedEntry) error
}

// Clipboard provides access to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}
