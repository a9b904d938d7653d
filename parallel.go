package gibberify

import (
	"sync"
)

// ParallelCacheLookup looks words up concurrently. keyOf maps a word to
// its cache key. It returns the cached splits keyed by word and the
// distinct misses in first-seen order.
func ParallelCacheLookup(cache SyllableCache, words []string, keyOf func(word string) string) (map[string][]string, []string) {
	if cache == nil || len(words) == 0 {
		return make(map[string][]string), uniqueStrings(words)
	}

	type lookupResult struct {
		word      string
		syllables []string
		found     bool
	}

	unique := uniqueStrings(words)
	results := make(chan lookupResult, len(unique))
	var wg sync.WaitGroup

	for _, word := range unique {
		wg.Add(1)
		go func(w string) {
			defer wg.Done()
			syls, ok := cache.Get(keyOf(w))
			results <- lookupResult{word: w, syllables: syls, found: ok}
		}(word)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	found := make(map[string][]string)
	missed := make(map[string]bool)
	for r := range results {
		if r.found {
			found[r.word] = r.syllables
		} else {
			missed[r.word] = true
		}
	}

	var misses []string
	for _, w := range unique {
		if missed[w] {
			misses = append(misses, w)
		}
	}
	return found, misses
}

// uniqueStrings drops repeats, keeping first-seen order.
func uniqueStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
