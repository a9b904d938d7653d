package gibberify

import (
	"context"
	"strings"

	"github.com/ZaguanLabs/gibberify/hyphen"
)

// DefaultLocale is the hyphenation locale used for every source language.
const DefaultLocale = "it"

// Hyphenator is the interface for hyphenation oracles. For each word it
// returns the syllables that, joined in order, reproduce the word.
type Hyphenator interface {
	Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error)
}

// HyphenateRequest contains the parameters for a hyphenation request.
type HyphenateRequest struct {
	Words  []string
	Locale string
}

// HyphenatorFunc adapts a function to the Hyphenator interface.
type HyphenatorFunc func(ctx context.Context, req HyphenateRequest) ([][]string, error)

// Hyphenate calls f.
func (f HyphenatorFunc) Hyphenate(ctx context.Context, req HyphenateRequest) ([][]string, error) {
	return f(ctx, req)
}

// PatternHyphenator is a local Hyphenator backed by Liang patterns.
type PatternHyphenator struct {
	patterns *hyphen.Patterns
}

// NewPatternHyphenator wraps compiled patterns.
func NewPatternHyphenator(p *hyphen.Patterns) *PatternHyphenator {
	return &PatternHyphenator{patterns: p}
}

// DefaultHyphenator returns the embedded Italian pattern hyphenator.
func DefaultHyphenator() *PatternHyphenator {
	return NewPatternHyphenator(hyphen.Italian())
}

// Hyphenate splits every word with the patterns. It never fails.
func (h *PatternHyphenator) Hyphenate(_ context.Context, req HyphenateRequest) ([][]string, error) {
	splits := make([][]string, len(req.Words))
	for i, w := range req.Words {
		splits[i] = h.patterns.Split(w)
	}
	return splits, nil
}

// repairSplit drops empty syllables and falls back to the whole word when
// the syllables no longer spell it. The second result reports whether the
// oracle output had to be replaced.
func repairSplit(word string, syllables []string) ([]string, bool) {
	kept := syllables[:0:0]
	for _, s := range syllables {
		if s != "" {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 || strings.Join(kept, "") != word {
		return []string{word}, true
	}
	return kept, false
}

// Verify PatternHyphenator implements Hyphenator
var _ Hyphenator = (*PatternHyphenator)(nil)
