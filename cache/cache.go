// Package cache provides syllable-split caching implementations.
package cache

// SyllableCache is the interface for caching syllable splits of words.
type SyllableCache interface {
	// Get retrieves a cached split. Returns nil and false if not found or expired.
	Get(key string) ([]string, bool)

	// Set stores a split in the cache.
	Set(key string, syllables []string) error
}
