package mock

import (
	"context"

	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var _ diffmark.Encoder = (*Encoder)(nil)

// Encoder is a mock implementation of diffmark.Encoder.
type Encoder struct {
	EncodeFn func(ctx context.Context, entries []diffmark.Entry) ([]diffmark.EncodedEntry, error)
}

func (e *Encoder) Encode(ctx context.Context, entries []diffmark.Entry) ([]diffmark.EncodedEntry, error) {
	return e.EncodeFn(ctx, entries)
}
