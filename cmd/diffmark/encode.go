package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/diffmark"
	"github.com/fwojciec/diffmark/csvutil"
	"github.com/fwojciec/diffmark/fs"
	"github.com/fwojciec/diffmark/sqlite"
)

// Compile-time interface verification.
var _ diffmark.Encoder = (*EncodeRunner)(nil)

// EncodeRunner encodes entries on a bounded number of goroutines.
type EncodeRunner struct {
	Workers int // 0 means one per CPU
}

// Encode computes the patterns of every entry. Results keep input order.
func (r *EncodeRunner) Encode(ctx context.Context, entries []diffmark.Entry) ([]diffmark.EncodedEntry, error) {
	results := make([]diffmark.EncodedEntry, len(entries))

	workers := r.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	if workers <= 1 {
		for i, e := range entries {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			results[i] = diffmark.EncodeEntry(e)
		}
		return results, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range entries {
		entry := entries[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = diffmark.EncodeEntry(entry)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) runEncode(ctx context.Context, args []string) error {
	flags := a.flagSet("encode")
	jsonlPath := flags.String("o", "", "Write encoded entries as JSON lines to `file`")
	csvPath := flags.String("csv", "", "Export encoded entries as CSV to `file`")
	dbPath := flags.String("db", "", "Store encoded entries in the SQLite database `file`")
	workers := flags.Int("workers", a.Config.Workers, "Number of parallel encoders")
	cacheDir := flags.String("cache", a.Config.CacheDir, "Cache encoded corpora in `dir` (empty disables)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	entries, err := a.readCorpus(flags.Arg(0))
	if err != nil {
		return err
	}

	var encoder diffmark.Encoder = &EncodeRunner{Workers: *workers}
	if *cacheDir != "" {
		encoder = fs.NewEncoder(encoder, *cacheDir)
	}

	encoded, err := encoder.Encode(ctx, entries)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	written := false
	if *jsonlPath != "" {
		if err := a.Store.Save(*jsonlPath, encoded); err != nil {
			return fmt.Errorf("saving %s: %w", *jsonlPath, err)
		}
		written = true
	}
	if *csvPath != "" {
		if err := a.exportCSV(*csvPath, encoded); err != nil {
			return err
		}
		written = true
	}
	if *dbPath != "" {
		if err := saveDB(ctx, *dbPath, encoded); err != nil {
			return err
		}
		written = true
	}
	if !written {
		if err := writeEncoded(a.Output, encoded); err != nil {
			return err
		}
	}

	a.printSummary(entries, encoded)
	return nil
}

func (a *App) exportCSV(path string, entries []diffmark.EncodedEntry) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := a.Exporter.Export(f, entries); err != nil {
		return fmt.Errorf("exporting %s: %w", path, err)
	}
	return nil
}

func saveDB(ctx context.Context, path string, entries []diffmark.EncodedEntry) error {
	store, err := sqlite.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Save(ctx, entries)
}

// readCorpus reads entries from path, or from stdin when path is empty or
// "-". Entries longer than the configured maximum are dropped with a warning.
func (a *App) readCorpus(path string) ([]diffmark.Entry, error) {
	var r io.Reader = a.Stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	entries, err := a.Reader.Read(r)
	if err != nil {
		return nil, err
	}

	var kept []diffmark.Entry
	for _, e := range entries {
		if !a.Config.Admits(e) {
			fmt.Fprintf(a.ErrOutput, "warning: skipping entry %q: longer than %d bytes\n", e.Base, a.Config.MaxLength)
			continue
		}
		kept = append(kept, e)
	}
	if len(kept) == 0 {
		return nil, ErrNoEntries
	}
	return kept, nil
}

// loadEncoded reads encoded entries from a JSON lines, CSV or SQLite file,
// chosen by extension.
func (a *App) loadEncoded(ctx context.Context, path string) ([]diffmark.EncodedEntry, error) {
	var (
		entries []diffmark.EncodedEntry
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		entries, err = importCSV(path)
	case ".db", ".sqlite":
		entries, err = loadDB(ctx, path)
	default:
		entries, err = a.Store.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

func importCSV(path string) ([]diffmark.EncodedEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return csvutil.Import(f)
}

func loadDB(ctx context.Context, path string) ([]diffmark.EncodedEntry, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	store, err := sqlite.NewStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.Load(ctx)
}

func (a *App) runDecode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: decode ENCODED", ErrUsage)
	}

	encoded, err := a.loadEncoded(ctx, args[0])
	if err != nil {
		return err
	}

	entries := make([]diffmark.Entry, len(encoded))
	for i, e := range encoded {
		entry, err := e.Decode()
		if err != nil {
			return err
		}
		entries[i] = entry
	}
	return a.Writer.Write(a.Output, entries)
}

func (a *App) runLookup(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: lookup DB BASE", ErrUsage)
	}
	if _, err := os.Stat(args[0]); err != nil {
		return err
	}

	store, err := sqlite.NewStore(args[0])
	if err != nil {
		return err
	}
	defer store.Close()

	variants, err := store.Variants(ctx, args[1])
	if err != nil {
		return fmt.Errorf("%s: %w", args[1], err)
	}
	for _, v := range variants {
		fmt.Fprintln(a.Output, v)
	}
	return nil
}

func (a *App) runDemo(ctx context.Context, args []string) error {
	flags := a.flagSet("demo")
	theme := flags.String("theme", "", "Color theme (dark, light)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	var entries []diffmark.Entry
	if flags.NArg() == 0 {
		entries = demoEntries
	} else {
		var err error
		if entries, err = a.readCorpus(flags.Arg(0)); err != nil {
			return err
		}
	}

	encoded, err := (&EncodeRunner{Workers: a.Config.Workers}).Encode(ctx, entries)
	if err != nil {
		return err
	}

	renderer, err := a.renderer(*theme)
	if err != nil {
		return err
	}
	return renderer.Render(a.Output, encoded)
}

func (a *App) runView(ctx context.Context, args []string) error {
	flags := a.flagSet("view")
	theme := flags.String("theme", "", "Color theme (dark, light)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return fmt.Errorf("%w: view CORPUS|ENCODED.jsonl", ErrUsage)
	}
	path := flags.Arg(0)

	var encoded []diffmark.EncodedEntry
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".csv", ".db", ".sqlite":
		var err error
		if encoded, err = a.loadEncoded(ctx, path); err != nil {
			return err
		}
	default:
		entries, err := a.readCorpus(path)
		if err != nil {
			return err
		}
		if encoded, err = (&EncodeRunner{Workers: a.Config.Workers}).Encode(ctx, entries); err != nil {
			return err
		}
	}

	viewer, err := a.viewer(*theme)
	if err != nil {
		return err
	}
	return viewer.View(ctx, encoded)
}

// writeEncoded prints entries in corpus form with patterns in place of
// variants.
func writeEncoded(w io.Writer, entries []diffmark.EncodedEntry) error {
	for _, e := range entries {
		fields := append([]string{e.Base}, e.Patterns...)
		if _, err := fmt.Fprintln(w, strings.Join(fields, diffmark.Separator)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) printSummary(entries []diffmark.Entry, encoded []diffmark.EncodedEntry) {
	var before, after int
	for _, e := range entries {
		before += e.Size()
	}
	for _, e := range encoded {
		after += e.Size()
	}
	fmt.Fprintf(a.ErrOutput, "encoded %s entries: %s -> %s\n",
		humanize.Comma(int64(len(entries))),
		humanize.Bytes(uint64(before)),
		humanize.Bytes(uint64(after)))
}

var demoEntries = []diffmark.Entry{
	{Base: "play", Variants: []string{"played", "playing", "plays", "playground", "replay"}},
	{Base: "yes", Variants: []string{"yes, sir", "year", "eyes"}},
	{Base: "A B C D", Variants: []string{"A B X D", "X B C D", "A B C"}},
	{Base: "ok", Variants: []string{"ok\n", "okay", "ok+"}},
}
