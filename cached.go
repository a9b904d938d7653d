package gibberify

import (
	"context"
	"log/slog"
)

// SyllableCache is the interface for caching syllable splits.
// It mirrors cache.SyllableCache so that package need not import this one.
type SyllableCache interface {
	Get(key string) ([]string, bool)
	Set(key string, syllables []string) error
}

// CachedHyphenator serves splits from a SyllableCache and only asks the
// wrapped oracle about words it has not seen.
type CachedHyphenator struct {
	hyphenator        Hyphenator
	cache             SyllableCache
	oracle            string
	parallelThreshold int
	logger            *slog.Logger
}

// CachedOption configures a CachedHyphenator.
type CachedOption func(*CachedHyphenator)

// WithOracleName namespaces cache keys by oracle, for caches shared by
// oracles that split differently.
func WithOracleName(name string) CachedOption {
	return func(h *CachedHyphenator) {
		h.oracle = name
	}
}

// WithParallelThreshold sets the minimum number of words for which cache
// lookups run concurrently.
func WithParallelThreshold(n int) CachedOption {
	return func(h *CachedHyphenator) {
		h.parallelThreshold = n
	}
}

// WithCacheLogger sets the logger used to report cache write failures.
func WithCacheLogger(l *slog.Logger) CachedOption {
	return func(h *CachedHyphenator) {
		h.logger = l
	}
}

// NewCachedHyphenator wraps h with cache.
func NewCachedHyphenator(h Hyphenator, cache SyllableCache, opts ...CachedOption) *CachedHyphenator {
	c := &CachedHyphenator{
		hyphenator:        h,
		cache:             cache,
		parallelThreshold: 5,
		logger:            slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Hyphenate implements Hyphenator.
func (h *CachedHyphenator) Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error) {
	if h.cache == nil {
		return h.hyphenator.Hyphenate(ctx, req)
	}

	keyOf := func(word string) string {
		if h.oracle != "" {
			return CacheKeyExtended(HashText(word), req.Locale, h.oracle)
		}
		return CacheKey(HashText(word), req.Locale)
	}

	var (
		splits map[string][]string
		misses []string
	)
	if len(req.Words) >= h.parallelThreshold {
		splits, misses = ParallelCacheLookup(h.cache, req.Words, keyOf)
	} else {
		splits = make(map[string][]string)
		for _, w := range uniqueStrings(req.Words) {
			if syls, ok := h.cache.Get(keyOf(w)); ok {
				splits[w] = syls
			} else {
				misses = append(misses, w)
			}
		}
	}

	if len(misses) > 0 {
		results, err := h.hyphenator.Hyphenate(ctx, HyphenateRequest{Words: misses, Locale: req.Locale})
		if err != nil {
			return nil, err
		}
		if len(results) != len(misses) {
			return nil, &CountMismatchError{Expected: len(misses), Got: len(results)}
		}
		for i, w := range misses {
			splits[w] = results[i]
			if err := h.cache.Set(keyOf(w), results[i]); err != nil {
				h.logger.Warn("caching syllable split failed",
					slog.String("word", w),
					slog.Any("error", err))
			}
		}
	}

	out := make([][]string, len(req.Words))
	for i, w := range req.Words {
		out[i] = splits[w]
	}
	return out, nil
}

var _ Hyphenator = (*CachedHyphenator)(nil)
