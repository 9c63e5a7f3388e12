package diffmark

import "runtime"

// Config holds user settings for the command line tools.
type Config struct {
	Theme     string `yaml:"theme"`      // "dark" or "light"
	Workers   int    `yaml:"workers"`    // parallel encoders; 0 means one per CPU
	MaxLength int    `yaml:"max_length"` // longest word encoded; 0 disables the bound
	CacheDir  string `yaml:"cache_dir"`  // encode cache; empty disables caching
}

// DefaultMaxLength bounds word length so the cubic substring search stays
// fast on corpus-scale input.
const DefaultMaxLength = 256

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Theme:     "dark",
		Workers:   runtime.NumCPU(),
		MaxLength: DefaultMaxLength,
	}
}

// Admits reports whether e is within the configured length bound.
func (c Config) Admits(e Entry) bool {
	if c.MaxLength <= 0 {
		return true
	}
	if len(e.Base) > c.MaxLength {
		return false
	}
	for _, v := range e.Variants {
		if len(v) > c.MaxLength {
			return false
		}
	}
	return true
}
