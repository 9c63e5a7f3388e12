package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/fwojciec/diffmark"
)

// ErrMismatch is returned by check when a pattern does not reproduce its
// variant.
var ErrMismatch = errors.New("round trip mismatch")

// mismatch describes one variant that did not survive encoding.
type mismatch struct {
	base    string
	variant string
	pattern string
	got     string
	err     error
}

func (m mismatch) String() string {
	if m.err != nil {
		return fmt.Sprintf("%q -> %q: pattern %q: %v", m.base, m.variant, m.pattern, m.err)
	}
	return fmt.Sprintf("%q -> %q: pattern %q gives %q", m.base, m.variant, m.pattern, m.got)
}

func (a *App) runCheck(ctx context.Context, args []string) error {
	flags := a.flagSet("check")
	workers := flags.Int("workers", a.Config.Workers, "Number of parallel encoders")
	if err := flags.Parse(args); err != nil {
		return err
	}

	entries, err := a.readCorpus(flags.Arg(0))
	if err != nil {
		return err
	}

	encoded, err := (&EncodeRunner{Workers: *workers}).Encode(ctx, entries)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	mismatches := roundTrip(entries, encoded)
	for _, m := range mismatches {
		fmt.Fprintf(a.Output, "mismatch: %s\n", m)
	}

	var variants, before, after int
	for i, e := range entries {
		variants += len(e.Variants)
		before += e.Size()
		after += encoded[i].Size()
	}
	fmt.Fprintf(a.Output, "%s entries, %s variants, %s mismatches\n",
		humanize.Comma(int64(len(entries))),
		humanize.Comma(int64(variants)),
		humanize.Comma(int64(len(mismatches))))
	fmt.Fprintf(a.Output, "corpus %s, encoded %s (%s)\n",
		humanize.Bytes(uint64(before)),
		humanize.Bytes(uint64(after)),
		ratio(after, before))

	if len(mismatches) > 0 {
		return fmt.Errorf("%d variants: %w", len(mismatches), ErrMismatch)
	}
	return nil
}

// roundTrip applies every pattern to its base and collects the variants
// that come out different.
func roundTrip(entries []diffmark.Entry, encoded []diffmark.EncodedEntry) []mismatch {
	var out []mismatch
	for i, e := range entries {
		for j, want := range e.Variants {
			pattern := encoded[i].Patterns[j]
			got, err := diffmark.Mark(e.Base, pattern)
			if err != nil || got != want {
				out = append(out, mismatch{base: e.Base, variant: want, pattern: pattern, got: got, err: err})
			}
		}
	}
	return out
}

func ratio(after, before int) string {
	if before == 0 {
		return "n/a"
	}
	return humanize.FormatFloat("#.#", 100*float64(after)/float64(before)) + "%"
}
