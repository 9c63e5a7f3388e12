package fs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/diffmark"
)

// Compile-time interface verification.
var _ diffmark.Encoder = (*Encoder)(nil)

// cacheVersion is mixed into every key so that cached results from an older
// pattern generator are not reused.
const cacheVersion = "diffmark-v1"

// Encoder wraps an Encoder with file-based caching keyed by the input entries.
type Encoder struct {
	inner    diffmark.Encoder
	cacheDir string
}

// NewEncoder creates a new caching encoder.
func NewEncoder(inner diffmark.Encoder, cacheDir string) *Encoder {
	return &Encoder{
		inner:    inner,
		cacheDir: cacheDir,
	}
}

// Encode returns a cached result or delegates to the inner encoder.
func (e *Encoder) Encode(ctx context.Context, entries []diffmark.Entry) ([]diffmark.EncodedEntry, error) {
	hash := e.hashInput(entries)

	if cached, err := e.loadFromCache(hash); err == nil && len(cached) == len(entries) {
		return cached, nil
	}

	result, err := e.inner.Encode(ctx, entries)
	if err != nil {
		return nil, err
	}

	// Best-effort.
	_ = e.saveToCache(hash, result)

	return result, nil
}

func (e *Encoder) hashInput(entries []diffmark.Entry) string {
	h := sha256.New()
	h.Write([]byte(cacheVersion))
	_ = json.NewEncoder(h).Encode(entries)
	return hex.EncodeToString(h.Sum(nil))
}

func (e *Encoder) cachePath(hash string) string {
	return filepath.Join(e.cacheDir, hash+".json")
}

func (e *Encoder) loadFromCache(hash string) ([]diffmark.EncodedEntry, error) {
	data, err := os.ReadFile(e.cachePath(hash))
	if err != nil {
		return nil, err
	}

	var result []diffmark.EncodedEntry
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}

func (e *Encoder) saveToCache(hash string, result []diffmark.EncodedEntry) error {
	if err := os.MkdirAll(e.cacheDir, 0o755); err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return os.WriteFile(e.cachePath(hash), data, 0o644)
}
