package gibberify

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	hash := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(hash[:])
}

// CacheKey generates a syllable-cache key from a word hash and the
// hyphenation locale.
func CacheKey(hash, locale string) string {
	return hash + ":" + locale
}

// CacheKeyExtended generates a key that also names the oracle. Use it when
// several oracles (patterns, different models) share one cache, since they
// split the same word differently.
func CacheKeyExtended(hash, locale, oracle string) string {
	return hash + ":" + locale + ":" + oracle
}
